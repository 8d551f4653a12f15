package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute removes a user and revokes all of its sessions.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if err == user.ErrUserNotFound {
			return errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", id)
		return err
	}

	if err := uc.sessionRepo.DeleteByUserID(ctx, id); err != nil {
		uc.logger.Errorw("failed to revoke sessions for deleted user", "error", err, "user_id", id)
	}

	uc.logger.Infow("user deleted", "user_id", id)
	return nil
}
