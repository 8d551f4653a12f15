package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/query"
)

var supplierColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"phone":   "phone",
	"address": "address",
	"taxId":   "tax_id",
}

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) supplier.Repository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	model := supplierToModel(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	s.ID = model.ID
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (*supplier.Supplier, error) {
	var model models.SupplierModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, supplier.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier by ID: %w", err)
	}
	return supplierToDomain(&model), nil
}

func (r *SupplierRepository) GetByIDs(ctx context.Context, ids []uint) ([]*supplier.Supplier, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var supplierModels []models.SupplierModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&supplierModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get suppliers by IDs: %w", err)
	}

	suppliers := make([]*supplier.Supplier, len(supplierModels))
	for i := range supplierModels {
		suppliers[i] = supplierToDomain(&supplierModels[i])
	}
	return suppliers, nil
}

func (r *SupplierRepository) List(ctx context.Context, filter query.BaseFilter) ([]*supplier.Supplier, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.SupplierModel{})
	db = applySearch(db, filter, "name", "email", "phone", "tax_id")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	var supplierModels []models.SupplierModel
	err := db.Order(orderClause(filter, supplierColumns, "id ASC")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&supplierModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	suppliers := make([]*supplier.Supplier, len(supplierModels))
	for i := range supplierModels {
		suppliers[i] = supplierToDomain(&supplierModels[i])
	}
	return suppliers, total, nil
}

func (r *SupplierRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	updates, err := mapUpdateColumns(fields, supplierColumns)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	var model models.SupplierModel
	if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return supplier.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to load supplier for update: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return supplier.ErrSupplierNotFound
	}
	return nil
}

func supplierToModel(s *supplier.Supplier) *models.SupplierModel {
	return &models.SupplierModel{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		TaxID:     s.TaxID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func supplierToDomain(m *models.SupplierModel) *supplier.Supplier {
	return &supplier.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		TaxID:     m.TaxID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
