package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/domain/entity"
)

// Stores membungkus seluruh repository memori supaya wiring di main tetap ringkas.
type Stores struct {
	Products     *ProductRepository
	Materials    *MaterialRepository
	Compositions *CompositionRepository
	LaborRates   *LaborRateRepository
	Overheads    *OverheadRepository
	Incomes      *IncomeRepository
	Expenses     *ExpenseRepository
	Users        *UserRepository
}

// NewStores membuat seluruh repository kosong.
func NewStores() *Stores {
	return &Stores{
		Products:     NewProductRepository(),
		Materials:    NewMaterialRepository(),
		Compositions: NewCompositionRepository(),
		LaborRates:   NewLaborRateRepository(),
		Overheads:    NewOverheadRepository(),
		Incomes:      NewIncomeRepository(),
		Expenses:     NewExpenseRepository(),
		Users:        NewUserRepository(),
	}
}

// Seed mengisi katalog contoh warung kopi: dua produk, empat bahan, komposisi
// kopi dan kue, tarif kerja, overhead bulanan, plus buku kas hari ini dan
// kemarin agar Beranda dan Laporan langsung ada isinya.
func (s *Stores) Seed() error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	products := []entity.Product{
		{ID: "prd-kopi", Name: "Kopi Premium", Unit: "Cup", SellingPrice: dec("25000"), Stock: dec("50"), CreatedAt: now, UpdatedAt: now},
		{ID: "prd-kue", Name: "Kue Coklat", Unit: "Potong", SellingPrice: dec("35000"), Stock: dec("20"), CreatedAt: now.Add(time.Millisecond), UpdatedAt: now},
	}
	materials := []entity.RawMaterial{
		{ID: "mat-kopi", Name: "Biji Kopi", Unit: "kg", PricePerUnit: dec("150000"), CreatedAt: now, UpdatedAt: now},
		{ID: "mat-gula", Name: "Gula", Unit: "kg", PricePerUnit: dec("15000"), CreatedAt: now.Add(time.Millisecond), UpdatedAt: now},
		{ID: "mat-tepung", Name: "Tepung", Unit: "kg", PricePerUnit: dec("12000"), CreatedAt: now.Add(2 * time.Millisecond), UpdatedAt: now},
		{ID: "mat-kakao", Name: "Bubuk Kakao", Unit: "kg", PricePerUnit: dec("80000"), CreatedAt: now.Add(3 * time.Millisecond), UpdatedAt: now},
	}
	compositions := []entity.Composition{
		{ID: "cmp-1", ProductID: "prd-kopi", MaterialID: "mat-kopi", Quantity: dec("0.02")},
		{ID: "cmp-2", ProductID: "prd-kopi", MaterialID: "mat-gula", Quantity: dec("0.01")},
		{ID: "cmp-3", ProductID: "prd-kue", MaterialID: "mat-tepung", Quantity: dec("0.1")},
		{ID: "cmp-4", ProductID: "prd-kue", MaterialID: "mat-kakao", Quantity: dec("0.05")},
	}
	laborRates := []entity.LaborRate{
		{ID: "lbr-barista", JobType: "Barista", HourlyWage: dec("20000")},
		{ID: "lbr-roti", JobType: "Tukang Roti", HourlyWage: dec("25000")},
	}
	overheads := []entity.OverheadCost{
		{ID: "ovh-listrik", Name: "Listrik", Amount: dec("500000"), Period: entity.PeriodMonthly},
		{ID: "ovh-sewa", Name: "Sewa", Amount: dec("3000000"), Period: entity.PeriodMonthly},
		{ID: "ovh-air", Name: "Air", Amount: dec("200000"), Period: entity.PeriodMonthly},
	}
	incomes := []entity.Income{
		{ID: "inc-1", Date: today, Source: "Penjualan Produk", Amount: dec("500000"), Notes: "Penjualan harian"},
		{ID: "inc-2", Date: yesterday, Source: "Penjualan Produk", Amount: dec("450000")},
	}
	expenses := []entity.Expense{
		{ID: "exp-1", Date: today, Category: "Bahan Baku", Amount: dec("200000"), Notes: "Restock biji kopi"},
		{ID: "exp-2", Date: yesterday, Category: "Utilitas", Amount: dec("50000"), Notes: "Listrik"},
	}

	for i := range products {
		if err := s.Products.Create(&products[i]); err != nil {
			return err
		}
	}
	for i := range materials {
		if err := s.Materials.Create(&materials[i]); err != nil {
			return err
		}
	}
	for i := range compositions {
		if err := s.Compositions.Create(&compositions[i]); err != nil {
			return err
		}
	}
	for i := range laborRates {
		if err := s.LaborRates.Create(&laborRates[i]); err != nil {
			return err
		}
	}
	for i := range overheads {
		if err := s.Overheads.Create(&overheads[i]); err != nil {
			return err
		}
	}
	for i := range incomes {
		if err := s.Incomes.Create(&incomes[i]); err != nil {
			return err
		}
	}
	for i := range expenses {
		if err := s.Expenses.Create(&expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
