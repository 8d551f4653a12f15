package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/user/dto"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, err
	}

	roles, err := uc.roleRepo.GetByIDs(ctx, u.RoleIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve roles", "error", err, "user_id", id)
		return nil, err
	}

	resp := dto.ToUserResponseWithRoles(u, roles)
	return &resp, nil
}
