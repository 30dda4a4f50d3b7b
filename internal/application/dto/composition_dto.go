package dto

import "github.com/shopspring/decimal"

// CreateCompositionRequest masukan untuk menambah bahan ke resep produk.
type CreateCompositionRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	MaterialID string `json:"material_id" validate:"required"`
	Quantity   string `json:"quantity"`
}

// UpdateCompositionRequest masukan untuk memperbarui takaran resep.
type UpdateCompositionRequest struct {
	MaterialID *string `json:"material_id"`
	Quantity   *string `json:"quantity"`
}

// CompositionResponse keluaran satu baris resep, nama produk dan bahan ikut
// dibawa supaya klien tidak perlu join sendiri.
type CompositionResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CompositionListResponse daftar baris resep.
type CompositionListResponse struct {
	Items []CompositionResponse `json:"items"`
	Total int                   `json:"total"`
}
