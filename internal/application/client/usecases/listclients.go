package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type ListClientsResult struct {
	Clients []dto.ClientResponse
	Total   int64
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, filter query.BaseFilter) (*ListClientsResult, error) {
	clients, total, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, err
	}

	responses := make([]dto.ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = dto.ToClientResponse(c)
	}
	return &ListClientsResult{Clients: responses, Total: total}, nil
}
