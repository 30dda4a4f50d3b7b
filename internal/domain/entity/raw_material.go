package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial mewakili bahan baku dengan harga beli per satuan.
type RawMaterial struct {
	ID           string
	Name         string
	Unit         string // label satuan beli, mis. "kg", "liter"
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
