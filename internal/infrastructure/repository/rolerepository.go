package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/errors"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) user.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *user.Role) error {
	model := roleToModel(role)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("role name already exists")
		}
		return fmt.Errorf("failed to create role: %w", err)
	}
	role.ID = model.ID
	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	var model models.RoleModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by ID: %w", err)
	}
	return roleToDomain(&model), nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*user.Role, error) {
	var model models.RoleModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return roleToDomain(&model), nil
}

func (r *RoleRepository) GetByIDs(ctx context.Context, ids []uint) ([]user.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var roleModels []models.RoleModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get roles by IDs: %w", err)
	}

	roles := make([]user.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = *roleToDomain(&roleModels[i])
	}
	return roles, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]user.Role, error) {
	var roleModels []models.RoleModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]user.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = *roleToDomain(&roleModels[i])
	}
	return roles, nil
}

func roleToModel(role *user.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: role.Permissions,
	}
}

func roleToDomain(m *models.RoleModel) *user.Role {
	return &user.Role{
		ID:          m.ID,
		Name:        m.Name,
		Permissions: m.Permissions,
	}
}
