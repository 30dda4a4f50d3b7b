package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/umkone/umkone-api/pkg/numeric"
)

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
)

func TestParseDecimalOr_AngkaValid(t *testing.T) {
	got := numeric.ParseDecimalOr("123.45", zero)
	assert.True(t, got.Equal(decimal.RequireFromString("123.45")))
}

func TestParseDecimalOr_InputKosongAtauSampah(t *testing.T) {
	assert.True(t, numeric.ParseDecimalOr("", zero).Equal(zero))
	assert.True(t, numeric.ParseDecimalOr("   ", zero).Equal(zero))
	assert.True(t, numeric.ParseDecimalOr("abc", zero).Equal(zero))
	assert.True(t, numeric.ParseDecimalOr("12,5", zero).Equal(zero), "koma desimal bukan format yang didukung")
}

func TestParseQuantityOr_NolDanNegatifJatuhKeDefault(t *testing.T) {
	// Banyaknya produksi adalah pembagi: 0, negatif, dan sampah semuanya jadi 1.
	assert.True(t, numeric.ParseQuantityOr("0", one).Equal(one))
	assert.True(t, numeric.ParseQuantityOr("-5", one).Equal(one))
	assert.True(t, numeric.ParseQuantityOr("x", one).Equal(one))
	assert.True(t, numeric.ParseQuantityOr("100", one).Equal(decimal.NewFromInt(100)))
}

func TestParseNonNegativeOr_NegatifJatuhKeDefault(t *testing.T) {
	assert.True(t, numeric.ParseNonNegativeOr("-1", zero).Equal(zero))
	assert.True(t, numeric.ParseNonNegativeOr("8", zero).Equal(decimal.NewFromInt(8)))
	assert.True(t, numeric.ParseNonNegativeOr("0", zero).Equal(zero), "nol tetap nol, bukan default")
}
