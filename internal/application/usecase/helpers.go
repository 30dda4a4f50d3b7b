package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
)

var one = decimal.NewFromInt(1)

// parseDateOr membaca tanggal format 2006-01-02, input kacau jatuh ke
// fallback. Konsisten dengan kebijakan koersi angka.
func parseDateOr(raw string, fallback time.Time) time.Time {
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return fallback
	}
	return t
}

// startOfDay memotong komponen jam.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
