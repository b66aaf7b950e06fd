package repository

import (
	"context"
	"errors"
	"net/http"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	FindAll(ctx context.Context, page, limit int) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateImageURL(ctx context.Context, id uuid.UUID, imgURL string) error
}

// InventoryStore exposes the stock operations used inside the order
// placement transaction. Both methods run on the caller's transaction
// handle so reservation and decrement stay inside one commit boundary.
type InventoryStore interface {
	ReserveStock(tx *gorm.DB, productIDs []uuid.UUID) ([]models.Product, error)
	DecrementStock(tx *gorm.DB, productID uuid.UUID, amount int) error
}

// GormProductRepository implements ProductRepository and InventoryStore using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new instance of GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll retrieves products with pagination
func (r *GormProductRepository) FindAll(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Category").
		Offset(offset).
		Limit(limit).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// FindByID retrieves a single product with its category
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update updates an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by id
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateImageURL stores the uploaded image URL for a product
func (r *GormProductRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, imgURL string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("img_url", imgURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReserveStock selects the requested products that currently have stock.
// Missing or out-of-stock ids are dropped, not erred.
func (r *GormProductRepository) ReserveStock(tx *gorm.DB, productIDs []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := tx.
		Where("id IN ? AND stock > 0", productIDs).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementStock decrements a product's stock with a guard that keeps the
// row non-negative under concurrent callers. A decrement that would violate
// the guard returns Conflict for that product.
func (r *GormProductRepository) DecrementStock(tx *gorm.DB, productID uuid.UUID, amount int) error {
	result := tx.
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, amount).
		UpdateColumn("stock", gorm.Expr("stock - ?", amount))
	if result.Error != nil {
		return apperrors.Failed("failed to decrement stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Conflict("insufficient stock")
	}
	return nil
}

// IsConflict reports whether err is the conditional-decrement failure.
func IsConflict(err error) bool {
	var appErr *apperrors.Error
	return errors.As(err, &appErr) && appErr.Code == http.StatusConflict
}
