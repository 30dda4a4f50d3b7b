// Package currency memformat nominal Rupiah untuk keluaran yang dibaca manusia
// (PDF dan Excel). API JSON tetap mengirim angka mentah; format hanya urusan tampilan.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR memformat nominal sebagai Rupiah tanpa desimal, gaya id-ID.
// Contoh: 25000 -> "Rp 25.000", -5000 -> "-Rp 5.000".
func FormatIDR(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-Rp %d", -n)
	}
	return printer.Sprintf("Rp %d", n)
}
