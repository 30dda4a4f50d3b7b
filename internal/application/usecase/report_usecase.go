package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/costing"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
)

// seriesLimit banyaknya titik grafik harian yang ditampilkan.
const seriesLimit = 10

// topCategoryLimit banyaknya kategori pengeluaran teratas di laporan.
const topCategoryLimit = 5

// ReportExporter menyalin laporan ke satu format unduhan. Implementasinya
// ada di lapisan infrastruktur dan dipasang lewat konstruktor.
type ReportExporter interface {
	ContentType() string
	FileExt() string
	Render(report *dto.ReportResponse) ([]byte, error)
}

// ReportUseCase laporan keuangan periodik: ringkasan kas, grafik harian,
// kategori pengeluaran teratas, dan margin per produk.
type ReportUseCase struct {
	incomes      repository.IncomeRepository
	expenses     repository.ExpenseRepository
	products     repository.ProductRepository
	materials    repository.MaterialRepository
	compositions repository.CompositionRepository
	exporters    map[string]ReportExporter
	nowFn        func() time.Time
}

// NewReportUseCase membangun kasus penggunaan. Kunci exporters adalah nilai
// parameter format pada endpoint ekspor (json, xml, xlsx, pdf).
func NewReportUseCase(
	incomes repository.IncomeRepository,
	expenses repository.ExpenseRepository,
	products repository.ProductRepository,
	materials repository.MaterialRepository,
	compositions repository.CompositionRepository,
	exporters map[string]ReportExporter,
) *ReportUseCase {
	return &ReportUseCase{
		incomes:      incomes,
		expenses:     expenses,
		products:     products,
		materials:    materials,
		compositions: compositions,
		exporters:    exporters,
		nowFn:        time.Now,
	}
}

// WithClock mengganti sumber waktu, dipakai pengujian filter periode.
func (uc *ReportUseCase) WithClock(nowFn func() time.Time) *ReportUseCase {
	uc.nowFn = nowFn
	return uc
}

// Build menyusun laporan satu periode. Periode tidak dikenal jatuh ke month.
func (uc *ReportUseCase) Build(period string) (*dto.ReportResponse, error) {
	now := uc.nowFn()
	from := startOfDay(now)
	switch period {
	case "week":
		from = from.AddDate(0, 0, -7)
	case "year":
		from = from.AddDate(-1, 0, 0)
	default:
		period = "month"
		from = from.AddDate(0, -1, 0)
	}

	incomes, err := uc.incomes.ListByRange(from, now)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenses.ListByRange(from, now)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	totalExpense := decimal.Zero
	for _, ex := range expenses {
		totalExpense = totalExpense.Add(ex.Amount)
	}

	margins, err := uc.productMargins()
	if err != nil {
		return nil, err
	}

	return &dto.ReportResponse{
		Period: period,
		From:   from.Format(dto.DateLayout),
		To:     now.Format(dto.DateLayout),
		Summary: dto.ReportSummary{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			Profit:       totalIncome.Sub(totalExpense),
		},
		Series:               buildSeries(incomes, expenses),
		TopExpenseCategories: topCategories(expenses),
		ProductMargins:       margins,
	}, nil
}

// Export menyusun laporan lalu menyalinnya ke format unduhan.
func (uc *ReportUseCase) Export(period, format string) (data []byte, contentType, filename string, err error) {
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, "", "", domain.ErrInvalidInput
	}
	report, err := uc.Build(period)
	if err != nil {
		return nil, "", "", err
	}
	data, err = exporter.Render(report)
	if err != nil {
		return nil, "", "", err
	}
	filename = fmt.Sprintf("laporan-%s-%s.%s", report.Period, report.To, exporter.FileExt())
	return data, exporter.ContentType(), filename, nil
}

// Dashboard ringkasan beranda: kas hari ini, kas bulan berjalan, dan ukuran
// katalog.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardSummaryResponse, error) {
	now := uc.nowFn()
	today := startOfDay(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayIncome, err := uc.sumIncomes(today, now)
	if err != nil {
		return nil, err
	}
	todayExpense, err := uc.sumExpenses(today, now)
	if err != nil {
		return nil, err
	}
	monthIncome, err := uc.sumIncomes(monthStart, now)
	if err != nil {
		return nil, err
	}
	monthExpense, err := uc.sumExpenses(monthStart, now)
	if err != nil {
		return nil, err
	}

	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.List()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TodayIncome:   todayIncome,
		TodayExpense:  todayExpense,
		TodayProfit:   todayIncome.Sub(todayExpense),
		MonthIncome:   monthIncome,
		MonthExpense:  monthExpense,
		MonthProfit:   monthIncome.Sub(monthExpense),
		ProductCount:  len(products),
		MaterialCount: len(materials),
	}, nil
}

func (uc *ReportUseCase) sumIncomes(from, to time.Time) (decimal.Decimal, error) {
	list, err := uc.incomes.ListByRange(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, in := range list {
		total = total.Add(in.Amount)
	}
	return total, nil
}

func (uc *ReportUseCase) sumExpenses(from, to time.Time) (decimal.Decimal, error) {
	list, err := uc.expenses.ListByRange(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, ex := range list {
		total = total.Add(ex.Amount)
	}
	return total, nil
}

func (uc *ReportUseCase) productMargins() ([]dto.ProductMarginRow, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	compositions, err := uc.compositions.List()
	if err != nil {
		return nil, err
	}

	ps := make([]entity.Product, 0, len(products))
	for _, p := range products {
		ps = append(ps, *p)
	}
	ms := make([]entity.RawMaterial, 0, len(materials))
	for _, m := range materials {
		ms = append(ms, *m)
	}
	cs := make([]entity.Composition, 0, len(compositions))
	for _, c := range compositions {
		cs = append(cs, *c)
	}

	margins := costing.MaterialMargins(ps, ms, cs)
	rows := make([]dto.ProductMarginRow, 0, len(margins))
	for _, m := range margins {
		rows = append(rows, dto.ProductMarginRow{
			ProductID:     m.ProductID,
			ProductName:   m.Name,
			SellingPrice:  m.SellingPrice,
			MaterialCost:  m.MaterialCost,
			Margin:        m.Margin,
			MarginPercent: m.MarginPercent.Round(2),
		})
	}
	return rows, nil
}

// buildSeries menggabungkan kas per tanggal lalu mengambil maksimal 10
// tanggal terakhir, urut menaik untuk sumbu grafik.
func buildSeries(incomes []*entity.Income, expenses []*entity.Expense) []dto.SeriesPoint {
	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	get := func(date string) *bucket {
		b, ok := buckets[date]
		if !ok {
			b = &bucket{income: decimal.Zero, expense: decimal.Zero}
			buckets[date] = b
		}
		return b
	}
	for _, in := range incomes {
		b := get(in.Date.Format(dto.DateLayout))
		b.income = b.income.Add(in.Amount)
	}
	for _, ex := range expenses {
		b := get(ex.Date.Format(dto.DateLayout))
		b.expense = b.expense.Add(ex.Amount)
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > seriesLimit {
		dates = dates[len(dates)-seriesLimit:]
	}

	points := make([]dto.SeriesPoint, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		points = append(points, dto.SeriesPoint{
			Date:    d,
			Income:  b.income,
			Expense: b.expense,
			Profit:  b.income.Sub(b.expense),
		})
	}
	return points
}

// topCategories menjumlahkan pengeluaran per kategori dan mengambil 5
// terbesar, seri dipecah dengan urutan nama.
func topCategories(expenses []*entity.Expense) []dto.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, ex := range expenses {
		cur, ok := totals[ex.Category]
		if !ok {
			cur = decimal.Zero
		}
		totals[ex.Category] = cur.Add(ex.Amount)
	}

	out := make([]dto.CategoryTotal, 0, len(totals))
	for cat, amount := range totals {
		out = append(out, dto.CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > topCategoryLimit {
		out = out[:topCategoryLimit]
	}
	return out
}
