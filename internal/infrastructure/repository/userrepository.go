package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/query"
)

var userColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"status":  "status",
	"roleIds": "role_ids",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = model.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) List(ctx context.Context, filter query.BaseFilter) ([]*user.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.UserModel{})
	db = applySearch(db, filter, "name", "email")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	err := db.Order(orderClause(filter, userColumns, "id ASC")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i := range userModels {
		users[i] = userToDomain(&userModels[i])
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	updates, err := mapUpdateColumns(fields, userColumns)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	var model models.UserModel
	if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user for update: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		if errors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Status:       u.Status,
		RoleIDs:      u.RoleIDs,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userToDomain(m *models.UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Status:       m.Status,
		RoleIDs:      m.RoleIDs,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
