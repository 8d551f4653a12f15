package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/user/dto"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/constants"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/patch"
)

type UpdateUserUseCase struct {
	userRepo    user.Repository
	roleRepo    user.RoleRepository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute applies a partial update to a user account. Deactivating an account
// revokes all of its sessions.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	current, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user for update", "error", err, "user_id", id)
		return nil, err
	}

	if req.RoleIDs != nil {
		if _, err := validateRoleIDs(ctx, uc.roleRepo, req.RoleIDs); err != nil {
			return nil, err
		}
	}

	changed, err := patch.Changed(dto.ToUserResponse(current), req)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changed) == 0 {
		return uc.respond(ctx, current)
	}

	if err := uc.userRepo.UpdateFields(ctx, id, changed); err != nil {
		switch err {
		case user.ErrUserNotFound:
			return nil, errors.NewNotFoundError("user not found")
		case user.ErrEmailTaken:
			return nil, errors.NewConflictError("email already in use")
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	if status, ok := changed["status"]; ok && status == constants.UserStatusInactive {
		if err := uc.sessionRepo.DeleteByUserID(ctx, id); err != nil {
			uc.logger.Errorw("failed to revoke sessions for deactivated user", "error", err, "user_id", id)
		}
	}

	updated, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to reload user after update", "error", err, "user_id", id)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", id, "fields", len(changed))
	return uc.respond(ctx, updated)
}

func (uc *UpdateUserUseCase) respond(ctx context.Context, u *user.User) (*dto.UserResponse, error) {
	roles, err := uc.roleRepo.GetByIDs(ctx, u.RoleIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve roles", "error", err, "user_id", u.ID)
		return nil, err
	}
	resp := dto.ToUserResponseWithRoles(u, roles)
	return &resp, nil
}
