package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
)

const sheet = "Sheet1"

// ExcelExporter menyusun lembar kerja XLSX: ringkasan di atas, lalu grafik
// harian, kategori teratas, dan margin produk.
type ExcelExporter struct{}

// NewExcelExporter membangun exporter.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExt() string { return "xlsx" }

func (e *ExcelExporter) Render(report *dto.ReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(sheet, "A1", "Laporan Keuangan")
	f.SetCellValue(sheet, "A2", "Periode")
	f.SetCellValue(sheet, "B2", fmt.Sprintf("%s (%s s.d. %s)", report.Period, report.From, report.To))
	f.SetCellValue(sheet, "A3", "Total Pemasukan")
	f.SetCellValue(sheet, "B3", report.Summary.TotalIncome.InexactFloat64())
	f.SetCellValue(sheet, "A4", "Total Pengeluaran")
	f.SetCellValue(sheet, "B4", report.Summary.TotalExpense.InexactFloat64())
	f.SetCellValue(sheet, "A5", "Laba")
	f.SetCellValue(sheet, "B5", report.Summary.Profit.InexactFloat64())

	rowNo := 7
	f.SetCellValue(sheet, cell("A", rowNo), "Tanggal")
	f.SetCellValue(sheet, cell("B", rowNo), "Pemasukan")
	f.SetCellValue(sheet, cell("C", rowNo), "Pengeluaran")
	for _, p := range report.Series {
		rowNo++
		f.SetCellValue(sheet, cell("A", rowNo), p.Date)
		f.SetCellValue(sheet, cell("B", rowNo), p.Income.InexactFloat64())
		f.SetCellValue(sheet, cell("C", rowNo), p.Expense.InexactFloat64())
	}

	rowNo += 2
	f.SetCellValue(sheet, cell("A", rowNo), "Kategori Pengeluaran Teratas")
	for _, c := range report.TopExpenseCategories {
		rowNo++
		f.SetCellValue(sheet, cell("A", rowNo), c.Category)
		f.SetCellValue(sheet, cell("B", rowNo), c.Amount.InexactFloat64())
	}

	rowNo += 2
	f.SetCellValue(sheet, cell("A", rowNo), "Produk")
	f.SetCellValue(sheet, cell("B", rowNo), "Harga Jual")
	f.SetCellValue(sheet, cell("C", rowNo), "Biaya Bahan")
	f.SetCellValue(sheet, cell("D", rowNo), "Margin")
	f.SetCellValue(sheet, cell("E", rowNo), "Margin %")
	for _, m := range report.ProductMargins {
		rowNo++
		f.SetCellValue(sheet, cell("A", rowNo), m.ProductName)
		f.SetCellValue(sheet, cell("B", rowNo), m.SellingPrice.InexactFloat64())
		f.SetCellValue(sheet, cell("C", rowNo), m.MaterialCost.InexactFloat64())
		f.SetCellValue(sheet, cell("D", rowNo), m.Margin.InexactFloat64())
		f.SetCellValue(sheet, cell("E", rowNo), m.MarginPercent.InexactFloat64())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: tulis xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(column string, rowNo int) string {
	return column + fmt.Sprint(rowNo)
}
