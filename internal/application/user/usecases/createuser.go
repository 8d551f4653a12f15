// Package usecases implements the user administration operations.
package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/user/dto"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type CreateUserUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	roles, err := validateRoleIDs(ctx, uc.roleRepo, req.RoleIDs)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(req.Name, req.Email, hash, req.RoleIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if err == user.ErrEmailTaken {
			return nil, errors.NewConflictError("email already in use")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID, "email", u.Email)
	resp := dto.ToUserResponseWithRoles(u, roles)
	return &resp, nil
}

// validateRoleIDs resolves the referenced roles, failing when any is unknown.
func validateRoleIDs(ctx context.Context, repo user.RoleRepository, ids []uint) ([]user.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	roles, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(uniqueIDs(ids)) {
		return nil, errors.NewValidationError("unknown role referenced")
	}
	return roles, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
