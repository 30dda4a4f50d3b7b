package dto

import "github.com/shopspring/decimal"

// CreateIncomeRequest masukan pemasukan, tanggal format 2006-01-02.
type CreateIncomeRequest struct {
	Date   string `json:"date"`
	Source string `json:"source" validate:"required,min=1,max=200"`
	Amount string `json:"amount"`
	Notes  string `json:"notes"`
}

// UpdateIncomeRequest masukan untuk memperbarui pemasukan.
type UpdateIncomeRequest struct {
	Date   *string `json:"date"`
	Source *string `json:"source" validate:"omitempty,min=1,max=200"`
	Amount *string `json:"amount"`
	Notes  *string `json:"notes"`
}

// IncomeResponse keluaran satu pemasukan.
type IncomeResponse struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// IncomeListResponse daftar pemasukan.
type IncomeListResponse struct {
	Items []IncomeResponse `json:"items"`
	Total int              `json:"total"`
}

// CashflowRangeQuery filter rentang tanggal opsional pada daftar buku kas,
// batas inklusif format 2006-01-02.
type CashflowRangeQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// CreateExpenseRequest masukan pengeluaran, tanggal format 2006-01-02.
type CreateExpenseRequest struct {
	Date     string `json:"date"`
	Category string `json:"category" validate:"required,min=1,max=200"`
	Amount   string `json:"amount"`
	Notes    string `json:"notes"`
}

// UpdateExpenseRequest masukan untuk memperbarui pengeluaran.
type UpdateExpenseRequest struct {
	Date     *string `json:"date"`
	Category *string `json:"category" validate:"omitempty,min=1,max=200"`
	Amount   *string `json:"amount"`
	Notes    *string `json:"notes"`
}

// ExpenseResponse keluaran satu pengeluaran.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes,omitempty"`
}

// ExpenseListResponse daftar pengeluaran.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}
