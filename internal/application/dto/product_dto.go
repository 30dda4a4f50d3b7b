package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest masukan untuk membuat produk.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Unit         string `json:"unit" validate:"required,min=1,max=50"`
	SellingPrice string `json:"selling_price"`
	Stock        string `json:"stock"`
}

// UpdateProductRequest masukan untuk memperbarui produk.
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string `json:"unit" validate:"omitempty,min=1,max=50"`
	SellingPrice *string `json:"selling_price"`
	Stock        *string `json:"stock"`
}

// ProductResponse keluaran satu produk.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        decimal.Decimal `json:"stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse daftar produk.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
