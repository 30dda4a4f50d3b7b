package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/umkone/umkone-api/pkg/currency"
)

func TestFormatIDR_PemisahRibuan(t *testing.T) {
	assert.Equal(t, "Rp 25.000", currency.FormatIDR(decimal.NewFromInt(25000)))
	assert.Equal(t, "Rp 3.700.000", currency.FormatIDR(decimal.NewFromInt(3700000)))
	assert.Equal(t, "Rp 0", currency.FormatIDR(decimal.Zero))
}

func TestFormatIDR_NegatifDanPembulatan(t *testing.T) {
	assert.Equal(t, "-Rp 5.000", currency.FormatIDR(decimal.NewFromInt(-5000)))
	// Nominal pecahan dibulatkan ke rupiah terdekat.
	assert.Equal(t, "Rp 1.682", currency.FormatIDR(decimal.RequireFromString("1681.82")))
}
