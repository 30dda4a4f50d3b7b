package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/infrastructure/memory"
)

func seededHPPUseCase(t *testing.T) *usecase.HPPUseCase {
	t.Helper()
	stores := memory.NewStores()
	require.NoError(t, stores.Seed())
	return usecase.NewHPPUseCase(
		stores.Products,
		stores.Materials,
		stores.Compositions,
		stores.LaborRates,
		stores.Overheads,
	)
}

func TestHPPUseCase_Compute(t *testing.T) {
	uc := seededHPPUseCase(t)

	// Kopi Premium: bahan 3150, tenaga kerja 20000*8/100, overhead 3.7jt/2200.
	resp, err := uc.Compute(dto.HPPRequest{
		ProductID:     "prd-kopi",
		LaborID:       "lbr-barista",
		Quantity:      "100",
		LaborHours:    "8",
		MarginPercent: "30",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kopi Premium", resp.ProductName)
	assert.Equal(t, "3150", resp.RawMaterialCostPerUnit.String())
	assert.Equal(t, "1600", resp.LaborCostPerUnit.String())
	assert.Equal(t, "1681.82", resp.OverheadCostPerUnit.Round(2).String())
	assert.Equal(t, "6431.82", resp.UnitHPP.Round(2).String())
	assert.Equal(t, "643181.82", resp.TotalHPP.Round(2).String())
	assert.Equal(t, "8361.36", resp.RecommendedPrice.Round(2).String())
	assert.Equal(t, "25000", resp.CurrentSellingPrice.String())
	assert.False(t, resp.Underpriced, "harga jual 25000 di atas rekomendasi")

	// Baris resep urut per ID bahan: Gula (mat-gula) lalu Biji Kopi (mat-kopi).
	require.Len(t, resp.Materials, 2)
	assert.Equal(t, "Gula", resp.Materials[0].MaterialName)
	assert.Equal(t, "150", resp.Materials[0].Subtotal.String())
	assert.Equal(t, "15000", resp.Materials[0].PricePerUnit.String())
	assert.Equal(t, "Biji Kopi", resp.Materials[1].MaterialName)
	assert.Equal(t, "3000", resp.Materials[1].Subtotal.String())
}

func TestHPPUseCase_Compute_KoersiInputKacau(t *testing.T) {
	uc := seededHPPUseCase(t)

	resp, err := uc.Compute(dto.HPPRequest{
		ProductID:     "prd-kopi",
		LaborID:       "lbr-barista",
		Quantity:      "abc",
		LaborHours:    "-5",
		MarginPercent: "ngawur",
	})
	require.NoError(t, err, "input kacau dikoersi, bukan error")

	assert.Equal(t, "1", resp.Quantity.String(), "banyaknya produksi kacau jadi 1")
	assert.True(t, resp.LaborCostPerUnit.IsZero(), "jam kerja negatif jadi 0")
	assert.True(t, resp.MarginPercent.IsZero())
	assert.True(t, resp.RecommendedPrice.Equal(resp.UnitHPP), "margin 0 berarti rekomendasi = HPP")
}

func TestHPPUseCase_Compute_ProdukTidakAda(t *testing.T) {
	uc := seededHPPUseCase(t)

	_, err := uc.Compute(dto.HPPRequest{ProductID: "tidak-ada"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestHPPUseCase_Compute_TarifTidakDikenal(t *testing.T) {
	uc := seededHPPUseCase(t)

	resp, err := uc.Compute(dto.HPPRequest{
		ProductID:  "prd-kopi",
		LaborID:    "hilang",
		Quantity:   "100",
		LaborHours: "8",
	})
	require.NoError(t, err)
	assert.True(t, resp.LaborCostPerUnit.IsZero(), "tarif tidak ditemukan dihargai 0")
}
