package models

import "time"

// Product is the single source of truth for a stocked item. Stock is only
// mutated through the inventory repository, including the adjustments made
// on behalf of sales and credits.
type Product struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
	CostPrice float64   `json:"cost_price"`
	SalePrice float64   `json:"sale_price"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"min_stock"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// UpdateProductRequest carries a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Code      *string  `json:"code,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Stock     *int     `json:"stock,omitempty"`
	MinStock  *int     `json:"min_stock,omitempty"`
	CostPrice *float64 `json:"cost_price,omitempty"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	ImageURL  *string  `json:"image_url,omitempty"`
}

// StockDelta is one line of a batched stock adjustment. Negative quantities
// consume stock, positive quantities restore it.
type StockDelta struct {
	ProductID string
	Quantity  int
}
