package database

import (
	"fmt"

	"ecommerce-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{"smartphone", "monitor", "keyboard", "mouse"}

type productFixture struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Category    string
}

var productFixtures = []productFixture{
	{"iPhone 15", "The best smartphone in the world", "199.99", 12, "smartphone"},
	{"Samsung Galaxy S23", "The best smartphone in the world", "150.00", 12, "smartphone"},
	{"Motorola Edge 40", "The best smartphone in the world", "179.89", 12, "smartphone"},
	{"Samsung Odyssey G9", "The best monitor in the world", "299.99", 12, "monitor"},
	{"LG UltraGear", "The best monitor in the world", "199.99", 12, "monitor"},
	{"Acer Predator", "The best monitor in the world", "150.00", 12, "monitor"},
	{"Razer BlackWidow V3", "The best keyboard in the world", "99.99", 12, "keyboard"},
	{"Corsair K70", "The best keyboard in the world", "79.99", 12, "keyboard"},
	{"Redragon Superior", "The best keyboard in the world", "49.99", 12, "keyboard"},
	{"Razer Viper", "The best mouse in the world", "49.99", 12, "mouse"},
	{"Logitech G502 Pro", "The best mouse in the world", "39.99", 12, "mouse"},
	{"SteelSeries Rival 3", "The best mouse in the world", "29.99", 12, "mouse"},
}

// SeedCategories inserts the fixed category set, skipping names that already
// exist so the seeder can run on every boot.
func SeedCategories(db *gorm.DB) error {
	for _, name := range categoryNames {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	return nil
}

// SeedProducts inserts the product fixtures, skipping products that already
// exist by name. Categories must be seeded first.
func SeedProducts(db *gorm.DB) error {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	byName := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}

	for _, f := range productFixtures {
		category, ok := byName[f.Category]
		if !ok {
			return fmt.Errorf("seed products: unknown category %q for %q", f.Category, f.Name)
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("name = ?", f.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		if count > 0 {
			continue
		}

		price, err := decimal.NewFromString(f.Price)
		if err != nil {
			return fmt.Errorf("seed products: bad price for %q: %w", f.Name, err)
		}
		product := models.Product{
			Name:        f.Name,
			Description: f.Description,
			Price:       price,
			Stock:       f.Stock,
			CategoryID:  category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}
	return nil
}

// Seed populates categories and products.
func Seed(db *gorm.DB) error {
	if err := SeedCategories(db); err != nil {
		return err
	}
	return SeedProducts(db)
}
