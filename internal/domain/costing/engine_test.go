package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/domain/costing"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Katalog contoh: sama dengan data awal aplikasi (kopi premium + kue coklat).
func sampleSnapshot() costing.Snapshot {
	return costing.Snapshot{
		Products: []entity.Product{
			{ID: "p1", Name: "Kopi Premium", Unit: "Cup", SellingPrice: d("25000"), Stock: d("50")},
			{ID: "p2", Name: "Kue Coklat", Unit: "Potong", SellingPrice: d("35000"), Stock: d("20")},
		},
		Materials: []entity.RawMaterial{
			{ID: "m1", Name: "Biji Kopi", Unit: "kg", PricePerUnit: d("150000")},
			{ID: "m2", Name: "Gula", Unit: "kg", PricePerUnit: d("15000")},
		},
		Compositions: []entity.Composition{
			{ID: "c1", ProductID: "p1", MaterialID: "m1", Quantity: d("0.02")},
			{ID: "c2", ProductID: "p1", MaterialID: "m2", Quantity: d("0.01")},
		},
		LaborRates: []entity.LaborRate{
			{ID: "l1", JobType: "Barista", HourlyWage: d("20000")},
		},
		Overheads: []entity.OverheadCost{
			{ID: "o1", Name: "Listrik", Amount: d("500000"), Period: entity.PeriodMonthly},
			{ID: "o2", Name: "Sewa", Amount: d("3000000"), Period: entity.PeriodMonthly},
			{ID: "o3", Name: "Air", Amount: d("200000"), Period: entity.PeriodMonthly},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Biaya bahan baku
// ──────────────────────────────────────────────────────────────────────────────

func TestRawMaterialUnitCost_KomposisiKopiPremium(t *testing.T) {
	snap := sampleSnapshot()
	// 150000*0.02 + 15000*0.01 = 3000 + 150 = 3150
	got := costing.RawMaterialUnitCost("p1", snap.Materials, snap.Compositions)
	assert.True(t, got.Equal(d("3150")), "biaya bahan = %s, harusnya 3150", got)
}

func TestRawMaterialUnitCost_ProdukTanpaKomposisi(t *testing.T) {
	snap := sampleSnapshot()
	got := costing.RawMaterialUnitCost("p2", snap.Materials, snap.Compositions)
	assert.True(t, got.Equal(decimal.Zero), "produk tanpa komposisi harus 0, dapat %s", got)
}

func TestRawMaterialUnitCost_ReferensiBahanHilang(t *testing.T) {
	snap := sampleSnapshot()
	// Baris yang menunjuk bahan yang sudah dihapus menyumbang 0, bukan panik/error.
	snap.Compositions = append(snap.Compositions, entity.Composition{
		ID: "c9", ProductID: "p1", MaterialID: "tidak-ada", Quantity: d("5"),
	})
	got := costing.RawMaterialUnitCost("p1", snap.Materials, snap.Compositions)
	assert.True(t, got.Equal(d("3150")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Biaya tenaga kerja
// ──────────────────────────────────────────────────────────────────────────────

func TestLaborUnitCost_SkenarioDasar(t *testing.T) {
	// upah 20000/jam, 8 jam, produksi 100 unit -> total 160000 -> 1600/unit
	got := costing.LaborUnitCost(d("20000"), d("8"), d("100"))
	assert.True(t, got.Equal(d("1600")), "biaya kerja per unit = %s", got)
}

func TestLaborUnitCost_ProduksiNolTidakMembagiNol(t *testing.T) {
	got := costing.LaborUnitCost(d("20000"), d("8"), decimal.Zero)
	assert.True(t, got.Equal(d("160000")), "produksi 0 diganti 1, dapat %s", got)

	got = costing.LaborUnitCost(d("20000"), d("8"), d("-3"))
	assert.True(t, got.Equal(d("160000")), "produksi negatif juga diganti 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Biaya overhead
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyOverheadTotal_NormalisasiPeriode(t *testing.T) {
	overheads := []entity.OverheadCost{
		{Amount: d("7"), Period: entity.PeriodDaily},    // 7*30 = 210
		{Amount: d("11"), Period: entity.PeriodWeekly},  // 11*4 = 44
		{Amount: d("13"), Period: entity.PeriodMonthly}, // 13
	}
	got := costing.MonthlyOverheadTotal(overheads)
	assert.True(t, got.Equal(d("267")), "total bulanan = %s, harusnya 210+44+13", got)
}

func TestOverheadUnitCost_SkenarioDasar(t *testing.T) {
	snap := sampleSnapshot()
	// 3.700.000 / (100*22) = 3.700.000 / 2200 ≈ 1681.82
	got := costing.OverheadUnitCost(snap.Overheads, d("100"))
	assert.Equal(t, "1681.82", got.Round(2).String())
}

func TestOverheadUnitCost_LinearTerhadapKebalikanProduksi(t *testing.T) {
	// Menggandakan produksi (overhead tetap) membagi dua biaya per unit, eksak.
	overheads := []entity.OverheadCost{{Amount: d("2200"), Period: entity.PeriodMonthly}}
	at100 := costing.OverheadUnitCost(overheads, d("100"))
	at200 := costing.OverheadUnitCost(overheads, d("200"))
	assert.True(t, at100.Equal(d("1")))
	assert.True(t, at200.Mul(d("2")).Equal(at100))
}

func TestOverheadUnitCost_VolumeEstimasiNol(t *testing.T) {
	snap := sampleSnapshot()
	got := costing.OverheadUnitCost(snap.Overheads, decimal.Zero)
	assert.True(t, got.Equal(decimal.Zero), "volume <= 0 harus menghasilkan 0, bukan error")
}

// ──────────────────────────────────────────────────────────────────────────────
// HPP dan harga rekomendasi
// ──────────────────────────────────────────────────────────────────────────────

func TestHPP_PenjumlahanKomponen(t *testing.T) {
	unit, total := costing.HPP(d("3150"), d("1600"), d("1250"), d("100"))
	assert.True(t, unit.Equal(d("6000")))
	assert.True(t, total.Equal(d("600000")))
}

func TestRecommendedPrice_MarginNolKembalikanHPPPersis(t *testing.T) {
	unitHPP := d("6431.8181818181818182")
	got := costing.RecommendedPrice(unitHPP, decimal.Zero)
	assert.True(t, got.Equal(unitHPP), "margin 0%% harus identik dengan HPP, dapat %s", got)
}

func TestRecommendedPrice_Margin30Persen(t *testing.T) {
	got := costing.RecommendedPrice(d("6000"), d("30"))
	assert.True(t, got.Equal(d("7800")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline lengkap
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_SkenarioUjungKeUjung(t *testing.T) {
	snap := sampleSnapshot()
	res := costing.Compute(snap, costing.Scenario{
		ProductID:     "p1",
		LaborID:       "l1",
		Quantity:      d("100"),
		LaborHours:    d("8"),
		MarginPercent: d("30"),
	})

	assert.True(t, res.RawMaterialCostPerUnit.Equal(d("3150")))
	assert.True(t, res.LaborCostPerUnit.Equal(d("1600")))
	assert.Equal(t, "1681.82", res.OverheadCostPerUnit.Round(2).String())
	assert.Equal(t, "6431.82", res.UnitHPP.Round(2).String())
	assert.Equal(t, "643181.82", res.TotalHPP.Round(2).String())
	assert.Equal(t, "8361.36", res.RecommendedPrice.Round(2).String())

	// Harga jual saat ini 25000 > 8361.36: tidak underpriced.
	assert.False(t, costing.Underpriced(d("25000"), res.RecommendedPrice))
	assert.True(t, costing.Underpriced(d("8000"), res.RecommendedPrice))

	// Rincian bahan ikut terisi untuk layar kalkulasi.
	require.Len(t, res.Materials, 2)
	assert.Equal(t, "Biji Kopi", res.Materials[0].Name)
	assert.True(t, res.Materials[0].Cost.Equal(d("3000")))
}

func TestCompute_TarifKerjaHilangDihargaiNol(t *testing.T) {
	snap := sampleSnapshot()
	res := costing.Compute(snap, costing.Scenario{
		ProductID:  "p1",
		LaborID:    "tidak-ada",
		Quantity:   d("100"),
		LaborHours: d("8"),
	})
	assert.True(t, res.LaborCostPerUnit.Equal(decimal.Zero))
}

func TestCompute_Idempoten(t *testing.T) {
	snap := sampleSnapshot()
	sc := costing.Scenario{ProductID: "p1", LaborID: "l1", Quantity: d("100"), LaborHours: d("8"), MarginPercent: d("30")}
	a := costing.Compute(snap, sc)
	b := costing.Compute(snap, sc)
	assert.True(t, a.UnitHPP.Equal(b.UnitHPP))
	assert.True(t, a.TotalHPP.Equal(b.TotalHPP))
	assert.True(t, a.RecommendedPrice.Equal(b.RecommendedPrice))
}

func TestCompute_ProduksiNolDijagaMinimalSatu(t *testing.T) {
	snap := sampleSnapshot()
	res := costing.Compute(snap, costing.Scenario{
		ProductID: "p1", LaborID: "l1",
		Quantity: decimal.Zero, LaborHours: d("8"),
	})
	assert.True(t, res.Quantity.Equal(d("1")))
	assert.True(t, res.TotalHPP.Equal(res.UnitHPP), "dengan produksi 1, total = HPP per unit")
}

// ──────────────────────────────────────────────────────────────────────────────
// Laporan margin per produk (hanya biaya bahan)
// ──────────────────────────────────────────────────────────────────────────────

func TestMaterialMargins_HanyaBiayaBahan(t *testing.T) {
	snap := sampleSnapshot()
	rows := costing.MaterialMargins(snap.Products, snap.Materials, snap.Compositions)
	require.Len(t, rows, 2)

	// Kopi Premium: bahan 3150, jual 25000 -> margin 21850, 693.65%
	assert.True(t, rows[0].MaterialCost.Equal(d("3150")))
	assert.True(t, rows[0].Margin.Equal(d("21850")))
	assert.Equal(t, "693.65", rows[0].MarginPercent.Round(2).String())

	// Kue Coklat tanpa komposisi: biaya 0, margin persen dijaga 0 (bukan bagi nol).
	assert.True(t, rows[1].MaterialCost.Equal(decimal.Zero))
	assert.True(t, rows[1].Margin.Equal(d("35000")))
	assert.True(t, rows[1].MarginPercent.Equal(decimal.Zero))
}
