package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mewakili produk jadi yang dijual UMKM.
// SellingPrice adalah harga jual saat ini; pembandingnya (harga rekomendasi)
// dihitung oleh engine HPP, bukan disimpan di sini.
type Product struct {
	ID           string
	Name         string
	Unit         string // label satuan jual, mis. "Cup", "Potong"
	SellingPrice decimal.Decimal
	Stock        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
