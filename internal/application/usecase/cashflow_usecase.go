package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// CashflowUseCase buku kas sederhana: catatan pemasukan dan pengeluaran.
type CashflowUseCase struct {
	incomes  repository.IncomeRepository
	expenses repository.ExpenseRepository
}

// NewCashflowUseCase membangun kasus penggunaan.
func NewCashflowUseCase(
	incomes repository.IncomeRepository,
	expenses repository.ExpenseRepository,
) *CashflowUseCase {
	return &CashflowUseCase{incomes: incomes, expenses: expenses}
}

// CreateIncome mencatat pemasukan. Tanggal kacau jatuh ke hari ini.
func (uc *CashflowUseCase) CreateIncome(in dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	income := &entity.Income{
		Date:   parseDateOr(in.Date, startOfDay(time.Now())),
		Source: in.Source,
		Amount: numeric.ParseNonNegativeOr(in.Amount, decimal.Zero),
		Notes:  in.Notes,
	}
	if err := uc.incomes.Create(income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// GetIncome mengambil satu pemasukan.
func (uc *CashflowUseCase) GetIncome(id string) (*dto.IncomeResponse, error) {
	income, err := uc.incomes.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// UpdateIncome memperbarui field yang dikirim saja.
func (uc *CashflowUseCase) UpdateIncome(id string, in dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	income, err := uc.incomes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Date != nil {
		income.Date = parseDateOr(*in.Date, income.Date)
	}
	if in.Source != nil {
		income.Source = *in.Source
	}
	if in.Amount != nil {
		income.Amount = numeric.ParseNonNegativeOr(*in.Amount, income.Amount)
	}
	if in.Notes != nil {
		income.Notes = *in.Notes
	}
	if err := uc.incomes.Update(income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// ListIncomes mengembalikan pemasukan, terbaru dulu. Rentang tanggal
// opsional; batas yang kosong atau kacau dikoersi ke batas terbuka.
func (uc *CashflowUseCase) ListIncomes(q dto.CashflowRangeQuery) (*dto.IncomeListResponse, error) {
	from, to := rangeBounds(q)
	incomes, err := uc.incomes.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncomeResponse, 0, len(incomes))
	for _, in := range incomes {
		items = append(items, *toIncomeResponse(in))
	}
	return &dto.IncomeListResponse{Items: items, Total: len(items)}, nil
}

// DeleteIncome menghapus satu pemasukan.
func (uc *CashflowUseCase) DeleteIncome(id string) error {
	return uc.incomes.Delete(id)
}

// CreateExpense mencatat pengeluaran. Tanggal kacau jatuh ke hari ini.
func (uc *CashflowUseCase) CreateExpense(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense := &entity.Expense{
		Date:     parseDateOr(in.Date, startOfDay(time.Now())),
		Category: in.Category,
		Amount:   numeric.ParseNonNegativeOr(in.Amount, decimal.Zero),
		Notes:    in.Notes,
	}
	if err := uc.expenses.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetExpense mengambil satu pengeluaran.
func (uc *CashflowUseCase) GetExpense(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenses.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// UpdateExpense memperbarui field yang dikirim saja.
func (uc *CashflowUseCase) UpdateExpense(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Date != nil {
		expense.Date = parseDateOr(*in.Date, expense.Date)
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Amount != nil {
		expense.Amount = numeric.ParseNonNegativeOr(*in.Amount, expense.Amount)
	}
	if in.Notes != nil {
		expense.Notes = *in.Notes
	}
	if err := uc.expenses.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses mengembalikan pengeluaran, terbaru dulu. Rentang tanggal
// opsional dengan koersi yang sama seperti ListIncomes.
func (uc *CashflowUseCase) ListExpenses(q dto.CashflowRangeQuery) (*dto.ExpenseListResponse, error) {
	from, to := rangeBounds(q)
	expenses, err := uc.expenses.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, ex := range expenses {
		items = append(items, *toExpenseResponse(ex))
	}
	return &dto.ExpenseListResponse{Items: items, Total: len(items)}, nil
}

// DeleteExpense menghapus satu pengeluaran.
func (uc *CashflowUseCase) DeleteExpense(id string) error {
	return uc.expenses.Delete(id)
}

// rangeBounds menerjemahkan filter tanggal menjadi batas inklusif untuk
// repository. From kosong berarti dari awal pencatatan, To kosong berarti
// tanpa batas atas.
func rangeBounds(q dto.CashflowRangeQuery) (time.Time, time.Time) {
	return parseDateOr(q.From, time.Time{}), parseDateOr(q.To, openEndDate)
}

// openEndDate batas atas saat filter to tidak diisi.
var openEndDate = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

func toIncomeResponse(in *entity.Income) *dto.IncomeResponse {
	return &dto.IncomeResponse{
		ID:     in.ID,
		Date:   in.Date.Format(dto.DateLayout),
		Source: in.Source,
		Amount: in.Amount,
		Notes:  in.Notes,
	}
}

func toExpenseResponse(ex *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:       ex.ID,
		Date:     ex.Date.Format(dto.DateLayout),
		Category: ex.Category,
		Amount:   ex.Amount,
		Notes:    ex.Notes,
	}
}
