package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest masukan untuk membuat bahan baku.
type CreateMaterialRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Unit         string `json:"unit" validate:"required,min=1,max=50"`
	PricePerUnit string `json:"price_per_unit"`
}

// UpdateMaterialRequest masukan untuk memperbarui bahan baku.
type UpdateMaterialRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string `json:"unit" validate:"omitempty,min=1,max=50"`
	PricePerUnit *string `json:"price_per_unit"`
}

// MaterialResponse keluaran satu bahan baku.
type MaterialResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MaterialListResponse daftar bahan baku.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Total int                `json:"total"`
}
