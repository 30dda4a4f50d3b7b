package dto

import "github.com/shopspring/decimal"

// ReportSummary total keuangan pada rentang laporan.
type ReportSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Profit       decimal.Decimal `json:"profit"`
}

// SeriesPoint satu titik grafik harian.
type SeriesPoint struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// CategoryTotal total pengeluaran per kategori.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProductMarginRow margin kotor per produk, hanya dari biaya bahan.
type ProductMarginRow struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MaterialCost  decimal.Decimal `json:"material_cost"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// ReportResponse laporan keuangan satu periode.
type ReportResponse struct {
	Period               string             `json:"period"`
	From                 string             `json:"from"`
	To                   string             `json:"to"`
	Summary              ReportSummary      `json:"summary"`
	Series               []SeriesPoint      `json:"series"`
	TopExpenseCategories []CategoryTotal    `json:"top_expense_categories"`
	ProductMargins       []ProductMarginRow `json:"product_margins"`
}

// DashboardSummaryResponse ringkasan beranda: hari ini dan bulan berjalan.
type DashboardSummaryResponse struct {
	TodayIncome   decimal.Decimal `json:"today_income"`
	TodayExpense  decimal.Decimal `json:"today_expense"`
	TodayProfit   decimal.Decimal `json:"today_profit"`
	MonthIncome   decimal.Decimal `json:"month_income"`
	MonthExpense  decimal.Decimal `json:"month_expense"`
	MonthProfit   decimal.Decimal `json:"month_profit"`
	ProductCount  int             `json:"product_count"`
	MaterialCount int             `json:"material_count"`
}
