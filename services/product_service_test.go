package services

import (
	"context"
	"net/http"
	"testing"

	"ecommerce-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockProductRepo struct {
	products map[uuid.UUID]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (m *mockProductRepo) FindAll(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *models.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) UpdateImageURL(ctx context.Context, id uuid.UUID, imgURL string) error {
	p, ok := m.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ImgURL = imgURL
	return nil
}

type mockCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo(categories ...*models.Category) *mockCategoryRepo {
	m := &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return m
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), newMockCategoryRepo(), nil, nil)

	product, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Name:        "monitor",
		Description: "a monitor",
		Price:       decimal.RequireFromString("10.00"),
		Stock:       5,
		CategoryID:  uuid.NewString(),
	})
	require.NotNil(t, err)
	assert.Nil(t, product)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "monitor"}
	svc := NewProductService(newMockProductRepo(), newMockCategoryRepo(category), nil, nil)

	_, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Name:        "monitor",
		Description: "a monitor",
		Price:       decimal.RequireFromString("-1.00"),
		CategoryID:  category.ID.String(),
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "monitor"}
	repo := newMockProductRepo()
	svc := NewProductService(repo, newMockCategoryRepo(category), nil, nil)

	product, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Name:        "curved monitor",
		Description: "a monitor",
		Price:       decimal.RequireFromString("199.99"),
		Stock:       5,
		CategoryID:  category.ID.String(),
	})
	require.Nil(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, category.ID, product.CategoryID)
	assert.Len(t, repo.products, 1)
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	repo := newMockProductRepo()
	existing := &models.Product{
		ID:          uuid.New(),
		Name:        "monitor",
		Description: "a monitor",
		Price:       decimal.RequireFromString("10.00"),
		Stock:       5,
	}
	repo.products[existing.ID] = existing

	svc := NewProductService(repo, newMockCategoryRepo(), nil, nil)

	newStock := 2
	updated, err := svc.UpdateProduct(context.Background(), existing.ID.String(), &UpdateProductRequest{
		Stock: &newStock,
	})
	require.Nil(t, err)
	assert.Equal(t, 2, updated.Stock)
	assert.Equal(t, "monitor", updated.Name, "unspecified fields keep their value")
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateProduct_NegativeStockRejected(t *testing.T) {
	repo := newMockProductRepo()
	existing := &models.Product{ID: uuid.New(), Name: "monitor", Price: decimal.RequireFromString("10.00"), Stock: 5}
	repo.products[existing.ID] = existing

	svc := NewProductService(repo, newMockCategoryRepo(), nil, nil)

	bad := -1
	_, err := svc.UpdateProduct(context.Background(), existing.ID.String(), &UpdateProductRequest{Stock: &bad})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, 5, repo.products[existing.ID].Stock)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), newMockCategoryRepo(), nil, nil)

	err := svc.DeleteProduct(context.Background(), uuid.NewString())
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestGetProducts_WithoutCache(t *testing.T) {
	repo := newMockProductRepo()
	repo.products[uuid.New()] = &models.Product{ID: uuid.New(), Name: "monitor", Price: decimal.RequireFromString("10.00")}

	svc := NewProductService(repo, newMockCategoryRepo(), nil, nil)

	resp, err := svc.GetProducts(context.Background(), 1, 10)
	require.Nil(t, err)
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, int64(1), resp.Meta.TotalPages)
	assert.False(t, resp.Meta.HasMore)
}

func TestSetProductImage(t *testing.T) {
	repo := newMockProductRepo()
	existing := &models.Product{ID: uuid.New(), Name: "monitor", Price: decimal.RequireFromString("10.00")}
	repo.products[existing.ID] = existing

	svc := NewProductService(repo, newMockCategoryRepo(), nil, nil)

	err := svc.SetProductImage(context.Background(), existing.ID.String(), "https://cdn.example.com/monitor.webp")
	require.Nil(t, err)
	assert.Equal(t, "https://cdn.example.com/monitor.webp", repo.products[existing.ID].ImgURL)
}
