package export_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/infrastructure/export"
)

func sampleReport() *dto.ReportResponse {
	d := decimal.RequireFromString
	return &dto.ReportResponse{
		Period: "month",
		From:   "2026-08-01",
		To:     "2026-09-01",
		Summary: dto.ReportSummary{
			TotalIncome:  d("150000"),
			TotalExpense: d("50000"),
			Profit:       d("100000"),
		},
		Series: []dto.SeriesPoint{
			{Date: "2026-08-30", Income: d("100000"), Expense: d("40000")},
		},
		TopExpenseCategories: []dto.CategoryTotal{
			{Category: "Bahan Baku", Amount: d("40000")},
		},
		ProductMargins: []dto.ProductMarginRow{
			{
				ProductID:     "p1",
				ProductName:   "Kopi Premium",
				SellingPrice:  d("25000"),
				MaterialCost:  d("3150"),
				Margin:        d("21850"),
				MarginPercent: d("693.65"),
			},
		},
	}
}

func TestJSONExporter(t *testing.T) {
	e := export.NewJSONExporter()
	assert.Equal(t, "application/json", e.ContentType())
	assert.Equal(t, "json", e.FileExt())

	data, err := e.Render(sampleReport())
	require.NoError(t, err)

	var decoded dto.ReportResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "month", decoded.Period)
	assert.Equal(t, "150000", decoded.Summary.TotalIncome.String())
}

func TestXMLExporter(t *testing.T) {
	e := export.NewXMLExporter()
	assert.Equal(t, "application/xml", e.ContentType())

	data, err := e.Render(sampleReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<LaporanKeuangan periode="month"`)
	assert.Contains(t, out, "<TotalPemasukan>150000</TotalPemasukan>")
	assert.Contains(t, out, `nama="Kopi Premium"`)
}

func TestExcelExporter(t *testing.T) {
	e := export.NewExcelExporter()
	assert.Equal(t, "xlsx", e.FileExt())

	data, err := e.Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// Berkas XLSX adalah arsip zip, tanda tangannya PK.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestPDFExporter(t *testing.T) {
	e := export.NewPDFExporter()
	assert.Equal(t, "application/pdf", e.ContentType())

	data, err := e.Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
