// Package numeric memusatkan kebijakan "paksa ke angka aman, jangan pernah gagal"
// di batas input. Form kalkulasi mengirim angka sebagai string mentah; semua yang
// tidak bisa diparse jatuh ke nilai default, bukan error. Aritmetika di dalam
// engine dengan begitu hanya menerima decimal yang sudah bersih.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalOr mengurai raw menjadi decimal; bila kosong atau tidak valid,
// kembalikan def.
func ParseDecimalOr(raw string, def decimal.Decimal) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

// ParseQuantityOr seperti ParseDecimalOr, tetapi hasil yang nol atau negatif juga
// jatuh ke def. Dipakai untuk banyaknya produksi yang menjadi pembagi.
func ParseQuantityOr(raw string, def decimal.Decimal) decimal.Decimal {
	d := ParseDecimalOr(raw, def)
	if d.LessThanOrEqual(decimal.Zero) {
		return def
	}
	return d
}

// ParseNonNegativeOr mengurai raw dan memaksa hasil negatif ke def.
// Jam kerja dan persen margin tidak pernah negatif di form.
func ParseNonNegativeOr(raw string, def decimal.Decimal) decimal.Decimal {
	d := ParseDecimalOr(raw, def)
	if d.IsNegative() {
		return def
	}
	return d
}
