package services

import (
	"context"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/database"
	"ecommerce-api/models"
	"ecommerce-api/repository"

	"gorm.io/gorm"
)

// CategoryService manages product categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	db           *gorm.DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, db *gorm.DB) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, db: db}
}

// GetCategories retrieves all categories.
func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, *apperrors.Error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Failed("Failed to fetch categories", err)
	}
	return categories, nil
}

// SeedCategories inserts the fixed category set idempotently.
func (s *CategoryService) SeedCategories(ctx context.Context) *apperrors.Error {
	if err := database.SeedCategories(s.db.WithContext(ctx)); err != nil {
		return apperrors.Failed("Failed to seed categories", err)
	}
	return nil
}
