package services

import (
	"context"
	"errors"

	"ecommerce-api/cache"
	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/database"
	"ecommerce-api/models"
	"ecommerce-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Meta     MetaData         `json:"meta"`
}

// CreateProductRequest is the payload for product creation.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=50"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	CategoryID  string          `json:"categoryId" binding:"required,uuid4"`
}

// UpdateProductRequest carries the mutable product fields.
type UpdateProductRequest struct {
	Name        string           `json:"name" binding:"omitempty,max=50"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty"`
}

// ProductService manages the product catalog.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.ProductCache
	db           *gorm.DB
}

// NewProductService creates a new ProductService. The cache may be nil.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, productCache *cache.ProductCache, db *gorm.DB) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        productCache,
		db:           db,
	}
}

// GetProducts retrieves paginated products, served from cache when possible.
func (s *ProductService) GetProducts(ctx context.Context, page, limit int) (*ProductListResponse, *apperrors.Error) {
	var cached ProductListResponse
	if s.cache.GetProductList(ctx, page, limit, &cached) {
		return &cached, nil
	}

	products, total, err := s.productRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, apperrors.Failed("Failed to fetch products", err)
	}
	response := &ProductListResponse{
		Products: products,
		Meta:     buildMeta(page, limit, total),
	}
	s.cache.SetProductList(ctx, page, limit, response)
	return response, nil
}

// GetProduct retrieves a single product.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.Product, *apperrors.Error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid product ID format")
	}
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Failed("Failed to fetch product", err)
	}
	return product, nil
}

// CreateProduct creates a product under an existing category.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, *apperrors.Error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid category ID format")
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, apperrors.Failed("Failed to fetch category", err)
	}
	if req.Price.IsNegative() {
		return nil, apperrors.InvalidArgument("Price cannot be negative")
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperrors.Failed("Failed to create product", err)
	}
	s.cache.Invalidate(ctx)
	return product, nil
}

// UpdateProduct applies the mutable fields of a product.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req *UpdateProductRequest) (*models.Product, *apperrors.Error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid product ID format")
	}
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Failed("Failed to fetch product", err)
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.InvalidArgument("Price cannot be negative")
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperrors.InvalidArgument("Stock cannot be negative")
		}
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperrors.Failed("Failed to update product", err)
	}
	s.cache.Invalidate(ctx)
	return product, nil
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) *apperrors.Error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return apperrors.InvalidArgument("Invalid product ID format")
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return apperrors.Failed("Failed to delete product", err)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// SetProductImage stores the uploaded image URL for a product.
func (s *ProductService) SetProductImage(ctx context.Context, productID string, imgURL string) *apperrors.Error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return apperrors.InvalidArgument("Invalid product ID format")
	}
	if err := s.productRepo.UpdateImageURL(ctx, id, imgURL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return apperrors.Failed("Failed to update product image", err)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// SeedProducts loads the product fixtures, skipping existing names.
func (s *ProductService) SeedProducts(ctx context.Context) *apperrors.Error {
	if err := database.SeedProducts(s.db.WithContext(ctx)); err != nil {
		return apperrors.Failed("Failed to seed products", err)
	}
	s.cache.Invalidate(ctx)
	return nil
}
