package usecase

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/costing"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// HPPUseCase merangkai snapshot katalog dari repository dan menjalankan
// engine HPP untuk satu skenario produksi.
type HPPUseCase struct {
	products     repository.ProductRepository
	materials    repository.MaterialRepository
	compositions repository.CompositionRepository
	laborRates   repository.LaborRateRepository
	overheads    repository.OverheadRepository
}

// NewHPPUseCase membangun kasus penggunaan.
func NewHPPUseCase(
	products repository.ProductRepository,
	materials repository.MaterialRepository,
	compositions repository.CompositionRepository,
	laborRates repository.LaborRateRepository,
	overheads repository.OverheadRepository,
) *HPPUseCase {
	return &HPPUseCase{
		products:     products,
		materials:    materials,
		compositions: compositions,
		laborRates:   laborRates,
		overheads:    overheads,
	}
}

// Compute menjalankan simulasi HPP. Satu-satunya kegagalan adalah produk
// yang tidak ditemukan; seluruh parameter numerik dikoersi: banyaknya
// produksi kacau jadi 1, jam kerja dan margin kacau jadi 0.
func (uc *HPPUseCase) Compute(in dto.HPPRequest) (*dto.HPPResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	snap, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	sc := costing.Scenario{
		ProductID:     in.ProductID,
		LaborID:       in.LaborID,
		Quantity:      numeric.ParseQuantityOr(in.Quantity, one),
		LaborHours:    numeric.ParseNonNegativeOr(in.LaborHours, decimal.Zero),
		MarginPercent: numeric.ParseNonNegativeOr(in.MarginPercent, decimal.Zero),
	}
	result := costing.Compute(snap, sc)

	materials := make([]dto.HPPMaterialLine, 0, len(result.Materials))
	for _, m := range result.Materials {
		price := decimal.Zero
		if !m.Quantity.IsZero() {
			price = m.Cost.Div(m.Quantity)
		}
		materials = append(materials, dto.HPPMaterialLine{
			MaterialID:   m.MaterialID,
			MaterialName: m.Name,
			Quantity:     m.Quantity,
			PricePerUnit: price,
			Subtotal:     m.Cost,
		})
	}

	return &dto.HPPResponse{
		ProductID:              product.ID,
		ProductName:            product.Name,
		Quantity:               result.Quantity,
		RawMaterialCostPerUnit: result.RawMaterialCostPerUnit,
		LaborCostPerUnit:       result.LaborCostPerUnit,
		OverheadCostPerUnit:    result.OverheadCostPerUnit,
		UnitHPP:                result.UnitHPP,
		TotalHPP:               result.TotalHPP,
		MarginPercent:          sc.MarginPercent,
		RecommendedPrice:       result.RecommendedPrice,
		CurrentSellingPrice:    product.SellingPrice,
		Underpriced:            costing.Underpriced(product.SellingPrice, result.RecommendedPrice),
		Materials:              materials,
	}, nil
}

// snapshot membaca seluruh katalog menjadi potret nilai untuk engine.
func (uc *HPPUseCase) snapshot() (costing.Snapshot, error) {
	var snap costing.Snapshot

	products, err := uc.products.List()
	if err != nil {
		return snap, err
	}
	materials, err := uc.materials.List()
	if err != nil {
		return snap, err
	}
	compositions, err := uc.compositions.List()
	if err != nil {
		return snap, err
	}
	laborRates, err := uc.laborRates.List()
	if err != nil {
		return snap, err
	}
	overheads, err := uc.overheads.List()
	if err != nil {
		return snap, err
	}

	snap.Products = make([]entity.Product, 0, len(products))
	for _, p := range products {
		snap.Products = append(snap.Products, *p)
	}
	snap.Materials = make([]entity.RawMaterial, 0, len(materials))
	for _, m := range materials {
		snap.Materials = append(snap.Materials, *m)
	}
	snap.Compositions = make([]entity.Composition, 0, len(compositions))
	for _, c := range compositions {
		snap.Compositions = append(snap.Compositions, *c)
	}
	snap.LaborRates = make([]entity.LaborRate, 0, len(laborRates))
	for _, l := range laborRates {
		snap.LaborRates = append(snap.LaborRates, *l)
	}
	snap.Overheads = make([]entity.OverheadCost, 0, len(overheads))
	for _, o := range overheads {
		snap.Overheads = append(snap.Overheads, *o)
	}
	return snap, nil
}
