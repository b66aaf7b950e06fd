package repository

import (
	"context"
	"errors"
	"time"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRepository owns the atomic multi-table write for order placement.
// CreateOrderGraph is the only entry point that writes the order graph, so
// no caller can construct or observe a half-written one.
type OrderRepository interface {
	CreateOrderGraph(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) (*models.Order, []uuid.UUID, error)
	LoadOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db        *gorm.DB
	inventory InventoryStore
}

// NewGormOrderRepository creates a new instance of GormOrderRepository
func NewGormOrderRepository(db *gorm.DB, inventory InventoryStore) *GormOrderRepository {
	return &GormOrderRepository{db: db, inventory: inventory}
}

// CreateOrderGraph creates an Order, its OrderDetails, the product
// association rows and the stock decrements inside a single transaction.
//
// Requested products that are missing, already out of stock, or that lose
// the decrement race are excluded from the order rather than failing it;
// their ids are returned so callers can report what was dropped. The total
// price is computed over the products that were actually reserved. If the
// reserved set ends up empty the whole transaction rolls back with Conflict.
func (r *GormOrderRepository) CreateOrderGraph(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) (*models.Order, []uuid.UUID, error) {
	var placed *models.Order
	var excluded []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("user not found")
			}
			return apperrors.Failed("failed to resolve user", err)
		}

		available, err := r.inventory.ReserveStock(tx, productIDs)
		if err != nil {
			return apperrors.Failed("failed to resolve products", err)
		}
		availableSet := make(map[uuid.UUID]bool, len(available))
		for _, p := range available {
			availableSet[p.ID] = true
		}
		for _, id := range productIDs {
			if !availableSet[id] {
				excluded = append(excluded, id)
			}
		}
		if len(available) == 0 {
			return apperrors.Conflict("no products available")
		}

		// One unit per distinct product. A lost decrement race drops the
		// product from the order instead of aborting it.
		reserved := make([]models.Product, 0, len(available))
		for _, p := range available {
			if err := r.inventory.DecrementStock(tx, p.ID, 1); err != nil {
				if IsConflict(err) {
					excluded = append(excluded, p.ID)
					continue
				}
				return err
			}
			reserved = append(reserved, p)
		}
		if len(reserved) == 0 {
			return apperrors.Conflict("no products available")
		}

		totalPrice := decimal.Zero
		for _, p := range reserved {
			totalPrice = totalPrice.Add(p.Price)
		}

		order := models.Order{
			Date:       time.Now().UTC(),
			TotalPrice: totalPrice,
			UserID:     user.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Failed("failed to create order", err)
		}

		details := models.OrderDetails{
			Price:   totalPrice,
			OrderID: order.ID,
		}
		if err := tx.Create(&details).Error; err != nil {
			return apperrors.Failed("failed to create order details", err)
		}

		if err := tx.Model(&order).UpdateColumn("order_details_id", details.ID).Error; err != nil {
			return apperrors.Failed("failed to link order details", err)
		}

		for _, p := range reserved {
			if err := tx.Exec(
				"INSERT INTO order_details_products (order_details_id, product_id) VALUES (?, ?)",
				details.ID, p.ID,
			).Error; err != nil {
				return apperrors.Failed("failed to associate product", err)
			}
		}

		loaded, err := loadOrder(tx, order.ID)
		if err != nil {
			return apperrors.Failed("failed to reload order", err)
		}
		placed = loaded
		return nil
	})
	if err != nil {
		return nil, nil, apperrors.From(err)
	}
	return placed, excluded, nil
}

// LoadOrder fetches an order with its user, details and products.
func (r *GormOrderRepository) LoadOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := loadOrder(r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Failed("failed to load order", err)
	}
	return order, nil
}

func loadOrder(db *gorm.DB, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := db.
		Preload("User").
		Preload("OrderDetails").
		Preload("OrderDetails.Products").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
