package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// SweepSessionsUseCase removes sessions past their expiry. It runs from the
// scheduler on a fixed interval.
type SweepSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewSweepSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *SweepSessionsUseCase {
	return &SweepSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *SweepSessionsUseCase) Execute(ctx context.Context) (int, error) {
	deleted, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}
