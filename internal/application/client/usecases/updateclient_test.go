package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venda-inc/venda/internal/application/client/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type stubClientRepo struct {
	clients      map[uint]*client.Client
	updateCalls  int
	updateFields map[string]any
}

func (r *stubClientRepo) Create(ctx context.Context, c *client.Client) error { return nil }

func (r *stubClientRepo) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, client.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *stubClientRepo) List(ctx context.Context, filter query.BaseFilter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

func (r *stubClientRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	r.updateCalls++
	r.updateFields = fields
	c, ok := r.clients[id]
	if !ok {
		return client.ErrClientNotFound
	}
	if phone, ok := fields["phone"].(string); ok {
		c.Phone = phone
	}
	if name, ok := fields["name"].(string); ok {
		c.Name = name
	}
	return nil
}

func (r *stubClientRepo) Delete(ctx context.Context, id uint) error { return nil }

func fixedClient() *client.Client {
	return &client.Client{
		ID:        3,
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     "555-0001",
		Address:   "Calle 1",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateClient_WritesOnlyChangedFields(t *testing.T) {
	repo := &stubClientRepo{clients: map[uint]*client.Client{3: fixedClient()}}
	uc := NewUpdateClientUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3, dto.UpdateClientRequest{
		Name:  strPtr("Ana"),
		Phone: strPtr("555-0002"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, map[string]any{"phone": "555-0002"}, repo.updateFields,
		"only the differing field reaches the repository")
	assert.Equal(t, "555-0002", resp.Phone)
}

func TestUpdateClient_NoChangesSkipsWrite(t *testing.T) {
	repo := &stubClientRepo{clients: map[uint]*client.Client{3: fixedClient()}}
	uc := NewUpdateClientUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3, dto.UpdateClientRequest{
		Name:  strPtr("Ana"),
		Phone: strPtr("555-0001"),
	})
	require.NoError(t, err)

	assert.Zero(t, repo.updateCalls, "an empty diff must not write")
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "555-0001", resp.Phone)
}

func TestUpdateClient_AbsentFieldsAreNotCompared(t *testing.T) {
	repo := &stubClientRepo{clients: map[uint]*client.Client{3: fixedClient()}}
	uc := NewUpdateClientUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, dto.UpdateClientRequest{})
	require.NoError(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateClient_NotFound(t *testing.T) {
	repo := &stubClientRepo{clients: map[uint]*client.Client{}}
	uc := NewUpdateClientUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 99, dto.UpdateClientRequest{Name: strPtr("x")})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
