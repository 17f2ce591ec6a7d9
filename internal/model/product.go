package model

import (
	"fmt"
	"time"
)

// Product represents a cosmetics product in the catalogue, including its
// variants and customer reviews.
type Product struct {
	ID               string           `json:"id" db:"id"`
	Name             string           `json:"name" db:"name"`
	Description      string           `json:"description" db:"description"`
	ShortDescription string           `json:"shortDescription" db:"short_description"`
	Price            float64          `json:"price" db:"price"`
	OriginalPrice    *float64         `json:"originalPrice,omitempty" db:"original_price"`
	Images           []string         `json:"images" db:"images"`
	Category         string           `json:"category" db:"category"`
	Rating           float64          `json:"rating" db:"rating"`
	ReviewCount      int              `json:"reviewCount" db:"review_count"`
	InStock          bool             `json:"inStock" db:"in_stock"`
	StockQuantity    int              `json:"stockQuantity" db:"stock_quantity"`
	SKU              string           `json:"sku" db:"sku"`
	Tags             []string         `json:"tags" db:"tags"`
	IsNew            bool             `json:"isNew" db:"is_new"`
	IsBestSeller     bool             `json:"isBestSeller" db:"is_best_seller"`
	Ingredients      *string          `json:"ingredients,omitempty" db:"ingredients"`
	HowToUse         *string          `json:"howToUse,omitempty" db:"how_to_use"`
	Benefits         []string         `json:"benefits" db:"benefits"`
	Variants         []ProductVariant `json:"variants"`
	Reviews          []ProductReview  `json:"reviews"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
}

// ComparisonPrice returns the price used for range checks and price sorting:
// the original (pre-discount) price when present, otherwise the current price.
func (p *Product) ComparisonPrice() float64 {
	if p.OriginalPrice != nil {
		return *p.OriginalPrice
	}
	return p.Price
}

// OnSale reports whether the product carries a discount reference price.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// Validate checks invariants on a decoded product. An original price below the
// current price would make the sale semantics meaningless, so it is rejected
// at the decode boundary.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: price must not be negative", p.ID)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("product %s: original price %.2f is below price %.2f", p.ID, *p.OriginalPrice, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s: rating %.1f out of range", p.ID, p.Rating)
	}
	return nil
}

// ProductVariant is a purchasable variation of a product. It belongs to
// exactly one product and is deleted with it. A nil price inherits the
// product price.
type ProductVariant struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Price     *float64  `json:"price,omitempty" db:"price"`
	InStock   bool      `json:"inStock" db:"in_stock"`
	SKU       *string   `json:"sku,omitempty" db:"sku"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// EffectivePrice returns the variant price override, or the given product
// price when the variant has none.
func (v *ProductVariant) EffectivePrice(productPrice float64) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return productPrice
}

// ReviewUser carries the public fields of a reviewer.
type ReviewUser struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// ProductReview is a customer review attached to a product.
type ProductReview struct {
	ID        string      `json:"id" db:"id"`
	ProductID string      `json:"productId" db:"product_id"`
	UserID    string      `json:"userId" db:"user_id"`
	Rating    int         `json:"rating" db:"rating"`
	Title     *string     `json:"title,omitempty" db:"title"`
	Comment   *string     `json:"comment,omitempty" db:"comment"`
	Verified  bool        `json:"verified" db:"verified"`
	User      *ReviewUser `json:"user,omitempty"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// Validate checks invariants on a decoded review.
func (r *ProductReview) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("review %s: product id is required", r.ID)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("review %s: rating %d out of range", r.ID, r.Rating)
	}
	return nil
}
