package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.clientRepo.Delete(ctx, id); err != nil {
		if err == client.ErrClientNotFound {
			return errors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to delete client", "error", err, "client_id", id)
		return err
	}

	uc.logger.Infow("client deleted", "client_id", id)
	return nil
}
