package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/user/dto"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type ListRolesUseCase struct {
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewListRolesUseCase(roleRepo user.RoleRepository, logger logger.Interface) *ListRolesUseCase {
	return &ListRolesUseCase{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *ListRolesUseCase) Execute(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, err
	}

	responses := make([]dto.RoleResponse, len(roles))
	for i, r := range roles {
		responses[i] = dto.RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Permissions: r.Permissions,
		}
	}
	return responses, nil
}
