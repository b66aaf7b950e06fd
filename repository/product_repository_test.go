package repository

import (
	"context"
	"net/http"
	"testing"

	apperrors "ecommerce-api/common/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDecrementStock_GuardStopsAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	product := createTestProduct(t, db, "monitor", "10.00", 1)

	require.NoError(t, repo.DecrementStock(db, product.ID, 1))
	assert.Equal(t, 0, currentStock(t, db, product.ID))

	err := repo.DecrementStock(db, product.ID, 1)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, 0, currentStock(t, db, product.ID), "stock must never go negative")
}

func TestDecrementStock_UnknownProductIsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	err := repo.DecrementStock(db, uuid.New(), 1)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestReserveStock_DropsMissingAndOutOfStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	inStock := createTestProduct(t, db, "monitor", "10.00", 3)
	outOfStock := createTestProduct(t, db, "keyboard", "20.00", 0)
	missing := uuid.New()

	products, err := repo.ReserveStock(db, []uuid.UUID{inStock.ID, outOfStock.ID, missing})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inStock.ID, products[0].ID)
}

func TestProductDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateImageURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	product := createTestProduct(t, db, "monitor", "10.00", 3)

	require.NoError(t, repo.UpdateImageURL(context.Background(), product.ID, "https://cdn.example.com/monitor.webp"))

	updated, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/monitor.webp", updated.ImgURL)

	assert.ErrorIs(t, repo.UpdateImageURL(context.Background(), uuid.New(), "x"), gorm.ErrRecordNotFound)
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(apperrors.Conflict("insufficient stock")))
	assert.False(t, IsConflict(apperrors.New(http.StatusNotFound, "missing", nil)))
	assert.False(t, IsConflict(gorm.ErrRecordNotFound))
	assert.False(t, IsConflict(nil))
}
