package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute closes a session. An already absent session is not an error: the
// desired end state, no session, is already true.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	err := uc.sessionRepo.Delete(ctx, cmd.SessionID)
	if err != nil {
		if err == user.ErrSessionNotFound {
			return nil
		}
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", cmd.SessionID)
		return err
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)
	return nil
}
