// Package usecases implements the client resource operations.
package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c, err := client.NewClient(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create client", "error", err)
		return nil, err
	}

	uc.logger.Infow("client created", "client_id", c.ID)
	resp := dto.ToClientResponse(c)
	return &resp, nil
}
