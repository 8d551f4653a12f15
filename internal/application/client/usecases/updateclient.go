package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/patch"
)

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Execute applies a partial update. The request is diffed against the stored
// record and only fields whose values actually differ are written; a request
// that changes nothing returns the current record without touching the
// database.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	current, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		if err == client.ErrClientNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to load client for update", "error", err, "client_id", id)
		return nil, err
	}

	changed, err := patch.Changed(dto.ToClientResponse(current), req)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changed) == 0 {
		resp := dto.ToClientResponse(current)
		return &resp, nil
	}

	if err := uc.clientRepo.UpdateFields(ctx, id, changed); err != nil {
		if err == client.ErrClientNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to update client", "error", err, "client_id", id)
		return nil, err
	}

	updated, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to reload client after update", "error", err, "client_id", id)
		return nil, err
	}

	uc.logger.Infow("client updated", "client_id", id, "fields", len(changed))
	resp := dto.ToClientResponse(updated)
	return &resp, nil
}
