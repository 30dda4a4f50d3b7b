package entity

import "github.com/shopspring/decimal"

// Composition adalah satu baris komposisi (bill of materials): berapa banyak
// bahan baku yang dipakai untuk memproduksi SATU unit produk.
// Pasangan (ProductID, MaterialID) unik di katalog; keunikan dijaga repository,
// bukan engine biaya.
type Composition struct {
	ID         string
	ProductID  string
	MaterialID string
	Quantity   decimal.Decimal // satuan bahan per satu unit produk, > 0
}
