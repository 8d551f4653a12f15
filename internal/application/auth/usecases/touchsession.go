package usecases

import (
	"context"
	"time"

	"github.com/venda-inc/venda/internal/domain/user"
	sharedConfig "github.com/venda-inc/venda/internal/shared/config"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type TouchSessionCommand struct {
	SessionID string
}

type TouchSessionUseCase struct {
	sessionRepo   user.SessionRepository
	sessionConfig sharedConfig.SessionConfig
	logger        logger.Interface
}

func NewTouchSessionUseCase(
	sessionRepo user.SessionRepository,
	sessionConfig sharedConfig.SessionConfig,
	logger logger.Interface,
) *TouchSessionUseCase {
	return &TouchSessionUseCase{
		sessionRepo:   sessionRepo,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

// Execute records activity on a session, pushing its expiry forward. An
// expired session is deleted rather than refreshed; the caller gets a session
// expired error and must log in again.
func (uc *TouchSessionUseCase) Execute(ctx context.Context, cmd TouchSessionCommand) (*user.Session, error) {
	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		if err == user.ErrSessionNotFound {
			return nil, errors.NewSessionExpiredError()
		}
		uc.logger.Errorw("failed to load session", "error", err, "session_id", cmd.SessionID)
		return nil, err
	}

	if session.IsExpired() {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil && err != user.ErrSessionNotFound {
			uc.logger.Errorw("failed to delete expired session", "error", err, "session_id", session.ID)
		}
		return nil, errors.NewSessionExpiredError()
	}

	session.Touch(time.Duration(uc.sessionConfig.MaxAgeHours) * time.Hour)
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to update session activity", "error", err, "session_id", session.ID)
		return nil, err
	}

	return session, nil
}
