package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Email    string    `gorm:"size:50;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"size:100;not null" json:"-"`
	IsAdmin  bool      `gorm:"not null;default:false" json:"isAdmin"`
	Phone    string    `gorm:"size:20" json:"phone,omitempty"`
	Country  string    `gorm:"size:50" json:"country,omitempty"`
	Address  string    `gorm:"type:text" json:"address,omitempty"`
	City     string    `gorm:"size:50" json:"city,omitempty"`
	Orders   []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:50;not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	ImgURL      string          `gorm:"not null;default:'default-image-url.jpg'" json:"imgUrl"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type Order struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Date           time.Time       `gorm:"not null" json:"date"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderDetailsID *uuid.UUID      `gorm:"type:uuid" json:"orderDetailsId,omitempty"`
	OrderDetails   *OrderDetails   `gorm:"foreignKey:OrderID" json:"orderDetails,omitempty"`
}

type OrderDetails struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"orderId"`
	Products []Product       `gorm:"many2many:order_details_products" json:"products"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (d *OrderDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Migrate runs AutoMigrate for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
		&Order{},
		&OrderDetails{},
	)
}
