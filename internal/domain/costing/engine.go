// Package costing adalah engine perhitungan HPP (Harga Pokok Produksi):
// biaya bahan baku per unit, alokasi tenaga kerja dan overhead, HPP per unit
// dan total, serta harga jual yang direkomendasikan dari persen margin.
//
// Semua fungsi murni: menerima snapshot katalog sebagai nilai, tidak menyimpan
// state, tidak pernah mengembalikan error. Referensi yang hilang dihitung 0,
// pembagi yang tidak masuk akal dijaga (kebijakan "paksa, jangan gagal").
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/domain/entity"
)

// Konstanta kebijakan alokasi biaya. Angka-angka ini asumsi bisnis yang
// disengaja sederhana, bukan kalender akurat; ubah di sini bila kebijakan
// usaha berbeda.
var (
	// DaysPerMonth pengali normalisasi overhead harian ke bulanan.
	DaysPerMonth = decimal.NewFromInt(30)
	// WeeksPerMonth pengali normalisasi overhead mingguan ke bulanan.
	WeeksPerMonth = decimal.NewFromInt(4)
	// WorkingDaysPerMonth estimasi hari produksi dalam sebulan, untuk
	// membagi total overhead bulanan ke volume produksi.
	WorkingDaysPerMonth = decimal.NewFromInt(22)
)

var one = decimal.NewFromInt(1)

// Snapshot potret katalog pada saat perhitungan. Engine hanya membaca;
// pemanggil menyusun ulang snapshot pada tiap perhitungan.
type Snapshot struct {
	Products     []entity.Product
	Materials    []entity.RawMaterial
	Compositions []entity.Composition
	LaborRates   []entity.LaborRate
	Overheads    []entity.OverheadCost
}

// Scenario parameter satu skenario produksi. Nilai numerik sudah harus
// dipaksa bersih di batas input (pkg/numeric); engine tetap menjaga pembagi.
type Scenario struct {
	ProductID     string
	LaborID       string
	Quantity      decimal.Decimal // banyaknya produksi dalam satu batch
	LaborHours    decimal.Decimal // total jam kerja untuk batch tersebut
	MarginPercent decimal.Decimal // margin keuntungan yang diinginkan, persen
}

// MaterialUsage rincian pemakaian satu bahan untuk satu unit produk.
type MaterialUsage struct {
	MaterialID string
	Name       string
	Unit       string
	Quantity   decimal.Decimal
	Cost       decimal.Decimal // PricePerUnit * Quantity
}

// Result keluaran lengkap satu perhitungan HPP. Nilai turunan, dihitung ulang
// penuh setiap kali; tidak ada identitas maupun pembaruan parsial.
type Result struct {
	RawMaterialCostPerUnit decimal.Decimal
	LaborCostPerUnit       decimal.Decimal
	OverheadCostPerUnit    decimal.Decimal
	UnitHPP                decimal.Decimal
	TotalHPP               decimal.Decimal
	RecommendedPrice       decimal.Decimal
	Quantity               decimal.Decimal // banyaknya produksi setelah penjagaan minimal 1
	Materials              []MaterialUsage
}

// RawMaterialUnitCost menjumlahkan biaya bahan baku untuk SATU unit produk:
// sigma(harga_bahan * kuantitas_komposisi) atas semua baris komposisi produk.
// Referensi bahan yang hilang dihargai 0; produk tanpa komposisi menghasilkan 0.
func RawMaterialUnitCost(productID string, materials []entity.RawMaterial, compositions []entity.Composition) decimal.Decimal {
	priceByID := make(map[string]decimal.Decimal, len(materials))
	for _, m := range materials {
		priceByID[m.ID] = m.PricePerUnit
	}
	total := decimal.Zero
	for _, c := range compositions {
		if c.ProductID != productID {
			continue
		}
		price := priceByID[c.MaterialID] // zero value bila referensi hilang
		total = total.Add(price.Mul(c.Quantity))
	}
	return total
}

// LaborUnitCost menghitung biaya tenaga kerja per unit:
// (upah_per_jam * jam_kerja) / banyaknya_produksi.
// Banyaknya produksi <= 0 diganti 1 agar tidak pernah membagi nol.
func LaborUnitCost(hourlyWage, laborHours, quantity decimal.Decimal) decimal.Decimal {
	if quantity.LessThanOrEqual(decimal.Zero) {
		quantity = one
	}
	return hourlyWage.Mul(laborHours).Div(quantity)
}

// MonthlyOverheadTotal menormalkan setiap biaya overhead ke basis bulanan lalu
// menjumlahkannya: harian x30, mingguan x4, bulanan apa adanya.
func MonthlyOverheadTotal(overheads []entity.OverheadCost) decimal.Decimal {
	total := decimal.Zero
	for _, o := range overheads {
		monthly := o.Amount
		switch o.Period {
		case entity.PeriodDaily:
			monthly = o.Amount.Mul(DaysPerMonth)
		case entity.PeriodWeekly:
			monthly = o.Amount.Mul(WeeksPerMonth)
		}
		total = total.Add(monthly)
	}
	return total
}

// OverheadUnitCost mengalokasikan total overhead bulanan ke estimasi volume
// produksi sebulan (banyaknya_produksi x 22 hari kerja). Volume estimasi <= 0
// menghasilkan 0, bukan error.
func OverheadUnitCost(overheads []entity.OverheadCost, quantity decimal.Decimal) decimal.Decimal {
	estimated := quantity.Mul(WorkingDaysPerMonth)
	if estimated.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return MonthlyOverheadTotal(overheads).Div(estimated)
}

// HPP menjumlahkan ketiga komponen biaya per unit dan mengalikannya dengan
// banyaknya produksi untuk total batch.
func HPP(rawMaterialCost, laborCostPerUnit, overheadCostPerUnit, quantity decimal.Decimal) (unitHPP, totalHPP decimal.Decimal) {
	unitHPP = rawMaterialCost.Add(laborCostPerUnit).Add(overheadCostPerUnit)
	totalHPP = unitHPP.Mul(quantity)
	return unitHPP, totalHPP
}

// RecommendedPrice menghitung harga jual rekomendasi:
// unitHPP * (1 + margin/100). Margin 0 mengembalikan unitHPP persis.
func RecommendedPrice(unitHPP, marginPercent decimal.Decimal) decimal.Decimal {
	return unitHPP.Mul(one.Add(marginPercent.Div(decimal.NewFromInt(100))))
}

// Compute menjalankan pipeline HPP lengkap untuk satu skenario.
// Tarif kerja yang tidak ditemukan dihargai 0; banyaknya produksi dijaga
// minimal 1 untuk pembagian dan total.
func Compute(snap Snapshot, sc Scenario) Result {
	quantity := sc.Quantity
	if quantity.LessThanOrEqual(decimal.Zero) {
		quantity = one
	}

	hourlyWage := decimal.Zero
	for _, l := range snap.LaborRates {
		if l.ID == sc.LaborID {
			hourlyWage = l.HourlyWage
			break
		}
	}

	rawCost := RawMaterialUnitCost(sc.ProductID, snap.Materials, snap.Compositions)
	laborCost := LaborUnitCost(hourlyWage, sc.LaborHours, quantity)
	overheadCost := OverheadUnitCost(snap.Overheads, quantity)
	unitHPP, totalHPP := HPP(rawCost, laborCost, overheadCost, quantity)

	return Result{
		RawMaterialCostPerUnit: rawCost,
		LaborCostPerUnit:       laborCost,
		OverheadCostPerUnit:    overheadCost,
		UnitHPP:                unitHPP,
		TotalHPP:               totalHPP,
		RecommendedPrice:       RecommendedPrice(unitHPP, sc.MarginPercent),
		Quantity:               quantity,
		Materials:              materialUsages(sc.ProductID, snap.Materials, snap.Compositions),
	}
}

// materialUsages menyusun rincian bahan per unit untuk ditampilkan di layar
// kalkulasi. Bahan yang referensinya hilang tetap muncul dengan biaya 0.
func materialUsages(productID string, materials []entity.RawMaterial, compositions []entity.Composition) []MaterialUsage {
	byID := make(map[string]entity.RawMaterial, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}
	var usages []MaterialUsage
	for _, c := range compositions {
		if c.ProductID != productID {
			continue
		}
		m := byID[c.MaterialID]
		usages = append(usages, MaterialUsage{
			MaterialID: c.MaterialID,
			Name:       m.Name,
			Unit:       m.Unit,
			Quantity:   c.Quantity,
			Cost:       m.PricePerUnit.Mul(c.Quantity),
		})
	}
	return usages
}

// ProductMargin satu baris laporan HPP per produk. SENGAJA hanya memakai biaya
// bahan baku (tanpa tenaga kerja/overhead) mengikuti perilaku laporan yang ada;
// pipeline lengkap hanya dipakai skenario kalkulasi.
type ProductMargin struct {
	ProductID     string
	Name          string
	MaterialCost  decimal.Decimal
	SellingPrice  decimal.Decimal
	Margin        decimal.Decimal // SellingPrice - MaterialCost
	MarginPercent decimal.Decimal // Margin / MaterialCost * 100; 0 bila biaya 0
}

// MaterialMargins menghitung margin berbasis biaya bahan untuk seluruh produk.
func MaterialMargins(products []entity.Product, materials []entity.RawMaterial, compositions []entity.Composition) []ProductMargin {
	rows := make([]ProductMargin, 0, len(products))
	for _, p := range products {
		cost := RawMaterialUnitCost(p.ID, materials, compositions)
		margin := p.SellingPrice.Sub(cost)
		marginPct := decimal.Zero
		if cost.GreaterThan(decimal.Zero) {
			marginPct = margin.Div(cost).Mul(decimal.NewFromInt(100))
		}
		rows = append(rows, ProductMargin{
			ProductID:     p.ID,
			Name:          p.Name,
			MaterialCost:  cost,
			SellingPrice:  p.SellingPrice,
			Margin:        margin,
			MarginPercent: marginPct,
		})
	}
	return rows
}

// Underpriced melaporkan apakah harga jual saat ini di bawah harga rekomendasi.
func Underpriced(sellingPrice, recommendedPrice decimal.Decimal) bool {
	return sellingPrice.LessThan(recommendedPrice)
}
