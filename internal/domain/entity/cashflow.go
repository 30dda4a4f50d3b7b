package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income satu catatan pemasukan di buku kas.
type Income struct {
	ID     string
	Date   time.Time // hanya tanggal yang bermakna; jam selalu 00:00
	Source string
	Amount decimal.Decimal
	Notes  string
}

// Expense satu catatan pengeluaran di buku kas.
type Expense struct {
	ID       string
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Notes    string
}
