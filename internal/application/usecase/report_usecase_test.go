package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/infrastructure/memory"
)

// fixedNow jangkar waktu pengujian laporan.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubExporter struct{ data []byte }

func (s stubExporter) ContentType() string { return "application/octet-stream" }
func (s stubExporter) FileExt() string     { return "bin" }
func (s stubExporter) Render(*dto.ReportResponse) ([]byte, error) {
	return s.data, nil
}

func reportFixture(t *testing.T) *usecase.ReportUseCase {
	t.Helper()
	stores := memory.NewStores()

	incomes := []entity.Income{
		{Date: day(2026, 8, 30), Source: "Penjualan", Amount: d("100000")},
		{Date: day(2026, 8, 20), Source: "Penjualan", Amount: d("50000")},
		{Date: day(2026, 7, 20), Source: "Penjualan", Amount: d("70000")}, // di luar sebulan terakhir
	}
	for i := range incomes {
		require.NoError(t, stores.Incomes.Create(&incomes[i]))
	}
	expenses := []entity.Expense{
		{Date: day(2026, 8, 30), Category: "Bahan Baku", Amount: d("40000")},
		{Date: day(2026, 8, 29), Category: "Utilitas", Amount: d("10000")},
	}
	for i := range expenses {
		require.NoError(t, stores.Expenses.Create(&expenses[i]))
	}

	require.NoError(t, stores.Products.Create(&entity.Product{
		ID: "p1", Name: "Kopi Premium", Unit: "Cup", SellingPrice: d("25000"), CreatedAt: fixedNow,
	}))
	require.NoError(t, stores.Materials.Create(&entity.RawMaterial{
		ID: "m1", Name: "Biji Kopi", Unit: "kg", PricePerUnit: d("150000"), CreatedAt: fixedNow,
	}))
	require.NoError(t, stores.Materials.Create(&entity.RawMaterial{
		ID: "m2", Name: "Gula", Unit: "kg", PricePerUnit: d("15000"), CreatedAt: fixedNow.Add(time.Millisecond),
	}))
	require.NoError(t, stores.Compositions.Create(&entity.Composition{ProductID: "p1", MaterialID: "m1", Quantity: d("0.02")}))
	require.NoError(t, stores.Compositions.Create(&entity.Composition{ProductID: "p1", MaterialID: "m2", Quantity: d("0.01")}))

	exporters := map[string]usecase.ReportExporter{
		"bin": stubExporter{data: []byte("isi")},
	}
	return usecase.NewReportUseCase(
		stores.Incomes, stores.Expenses,
		stores.Products, stores.Materials, stores.Compositions,
		exporters,
	).WithClock(func() time.Time { return fixedNow })
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestReportUseCase_Build_SebulanTerakhir(t *testing.T) {
	uc := reportFixture(t)

	report, err := uc.Build("month")
	require.NoError(t, err)

	assert.Equal(t, "month", report.Period)
	assert.Equal(t, "2026-08-01", report.From)
	assert.Equal(t, "2026-09-01", report.To)
	assert.Equal(t, "150000", report.Summary.TotalIncome.String())
	assert.Equal(t, "50000", report.Summary.TotalExpense.String())
	assert.Equal(t, "100000", report.Summary.Profit.String())

	// Grafik harian urut menaik per tanggal.
	require.Len(t, report.Series, 3)
	assert.Equal(t, "2026-08-20", report.Series[0].Date)
	assert.Equal(t, "2026-08-29", report.Series[1].Date)
	assert.Equal(t, "2026-08-30", report.Series[2].Date)
	assert.Equal(t, "100000", report.Series[2].Income.String())
	assert.Equal(t, "40000", report.Series[2].Expense.String())
	assert.Equal(t, "60000", report.Series[2].Profit.String())

	// Kategori terbesar dulu.
	require.Len(t, report.TopExpenseCategories, 2)
	assert.Equal(t, "Bahan Baku", report.TopExpenseCategories[0].Category)

	// Margin hanya dari biaya bahan: (25000-3150)/3150*100.
	require.Len(t, report.ProductMargins, 1)
	assert.Equal(t, "3150", report.ProductMargins[0].MaterialCost.String())
	assert.Equal(t, "21850", report.ProductMargins[0].Margin.String())
	assert.Equal(t, "693.65", report.ProductMargins[0].MarginPercent.String())
}

func TestReportUseCase_Build_SepekanTerakhir(t *testing.T) {
	uc := reportFixture(t)

	report, err := uc.Build("week")
	require.NoError(t, err)

	assert.Equal(t, "week", report.Period)
	assert.Equal(t, "2026-08-25", report.From)
	assert.Equal(t, "100000", report.Summary.TotalIncome.String(), "hanya pemasukan 30 Agustus")
	assert.Equal(t, "50000", report.Summary.TotalExpense.String())
}

func TestReportUseCase_Build_PeriodeAsingJatuhKeMonth(t *testing.T) {
	uc := reportFixture(t)

	report, err := uc.Build("abad")
	require.NoError(t, err)
	assert.Equal(t, "month", report.Period)
}

func TestReportUseCase_Export(t *testing.T) {
	uc := reportFixture(t)

	data, contentType, filename, err := uc.Export("month", "bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("isi"), data)
	assert.Equal(t, "application/octet-stream", contentType)
	assert.Equal(t, "laporan-month-2026-09-01.bin", filename)

	_, _, _, err = uc.Export("month", "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportUseCase_Dashboard(t *testing.T) {
	uc := reportFixture(t)

	// Tidak ada transaksi 1 September, jadi hari ini nol dan bulan berjalan nol.
	summary, err := uc.Dashboard()
	require.NoError(t, err)
	assert.True(t, summary.TodayIncome.IsZero())
	assert.True(t, summary.MonthIncome.IsZero())
	assert.Equal(t, 1, summary.ProductCount)
	assert.Equal(t, 2, summary.MaterialCount)
}
