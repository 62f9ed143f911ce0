package models

import (
	"strings"
	"time"
)

// Product represents a spare part or repair item in the catalog.
// Price is stored in minor currency units; nil means "price on request".
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Brand       string    `json:"brand" gorm:"type:varchar(100);not null;index"`
	Category    string    `json:"category" gorm:"type:varchar(100);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"imageUrl,omitempty" gorm:"type:varchar(500)"`
	Price       *int64    `json:"price,omitempty"`
	InStock     bool      `json:"inStock" gorm:"not null"`
	CreatedAt   time.Time `json:"-" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`
}

// ProductInput is the payload accepted when creating a product.
type ProductInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Brand       string `json:"brand" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
	Price       *int64 `json:"price" validate:"omitnil,gte=0"`
	InStock     *bool  `json:"inStock"`
}

// Normalize trims surrounding whitespace from the text fields.
func (in *ProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// ToProduct builds a Product without an ID. InStock defaults to true.
func (in ProductInput) ToProduct() Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return Product{
		Name:        in.Name,
		Brand:       in.Brand,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		InStock:     inStock,
	}
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=200"`
	Brand       *string `json:"brand" validate:"omitnil,min=1,max=100"`
	Category    *string `json:"category" validate:"omitnil,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,max=500"`
	Price       *int64  `json:"price" validate:"omitnil,gte=0"`
	InStock     *bool   `json:"inStock"`
}

// Normalize trims surrounding whitespace from every supplied text field.
func (p *ProductPatch) Normalize() {
	for _, s := range []*string{p.Name, p.Brand, p.Category, p.Description, p.ImageURL} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

// IsEmpty reports whether the patch carries no fields.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Brand == nil && p.Category == nil &&
		p.Description == nil && p.ImageURL == nil && p.Price == nil && p.InStock == nil
}

// Apply copies the supplied fields onto product. The ID is never changed.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Price != nil {
		price := *p.Price
		product.Price = &price
	}
	if p.InStock != nil {
		product.InStock = *p.InStock
	}
}
