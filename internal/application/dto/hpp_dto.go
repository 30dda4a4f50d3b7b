package dto

import "github.com/shopspring/decimal"

// HPPRequest parameter query simulasi HPP. Angka diterima sebagai string
// mentah dan dikoersi di usecase, input kacau tidak pernah jadi error.
type HPPRequest struct {
	ProductID     string `query:"product_id" validate:"required"`
	LaborID       string `query:"labor_id"`
	Quantity      string `query:"quantity"`
	LaborHours    string `query:"labor_hours"`
	MarginPercent string `query:"margin_percent"`
}

// HPPMaterialLine rincian kontribusi satu bahan per unit.
type HPPMaterialLine struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// HPPResponse hasil lengkap perhitungan HPP untuk satu produk.
type HPPResponse struct {
	ProductID              string            `json:"product_id"`
	ProductName            string            `json:"product_name"`
	Quantity               decimal.Decimal   `json:"quantity"`
	RawMaterialCostPerUnit decimal.Decimal   `json:"raw_material_cost_per_unit"`
	LaborCostPerUnit       decimal.Decimal   `json:"labor_cost_per_unit"`
	OverheadCostPerUnit    decimal.Decimal   `json:"overhead_cost_per_unit"`
	UnitHPP                decimal.Decimal   `json:"unit_hpp"`
	TotalHPP               decimal.Decimal   `json:"total_hpp"`
	MarginPercent          decimal.Decimal   `json:"margin_percent"`
	RecommendedPrice       decimal.Decimal   `json:"recommended_price"`
	CurrentSellingPrice    decimal.Decimal   `json:"current_selling_price"`
	Underpriced            bool              `json:"underpriced"`
	Materials              []HPPMaterialLine `json:"materials"`
}
