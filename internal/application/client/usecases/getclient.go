package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		if err == client.ErrClientNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to get client", "error", err, "client_id", id)
		return nil, err
	}

	resp := dto.ToClientResponse(c)
	return &resp, nil
}
