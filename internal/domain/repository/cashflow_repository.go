package repository

import (
	"time"

	"github.com/umkone/umkone-api/internal/domain/entity"
)

// IncomeRepository port penyimpanan catatan pemasukan.
type IncomeRepository interface {
	Create(income *entity.Income) error
	GetByID(id string) (*entity.Income, error)
	Update(income *entity.Income) error
	List() ([]*entity.Income, error)
	// ListByRange mengembalikan catatan dengan from <= Date <= to, urut tanggal menurun.
	ListByRange(from, to time.Time) ([]*entity.Income, error)
	Delete(id string) error
}

// ExpenseRepository port penyimpanan catatan pengeluaran.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	List() ([]*entity.Expense, error)
	ListByRange(from, to time.Time) ([]*entity.Expense, error)
	Delete(id string) error
}
