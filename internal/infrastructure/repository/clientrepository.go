package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/query"
)

// clientColumns maps API field names to database columns for partial updates
// and sorting.
var clientColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"phone":   "phone",
	"address": "address",
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) client.Repository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	model := clientToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return clientToDomain(&model), nil
}

func (r *ClientRepository) List(ctx context.Context, filter query.BaseFilter) ([]*client.Client, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.ClientModel{})
	db = applySearch(db, filter, "name", "email", "phone")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var clientModels []models.ClientModel
	err := db.Order(orderClause(filter, clientColumns, "id ASC")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&clientModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientToDomain(&clientModels[i])
	}
	return clients, total, nil
}

func (r *ClientRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	updates, err := mapUpdateColumns(fields, clientColumns)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	var model models.ClientModel
	if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to load client for update: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func clientToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func clientToDomain(m *models.ClientModel) *client.Client {
	return &client.Client{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
