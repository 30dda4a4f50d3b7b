package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/pkg/currency"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter laporan siap cetak A4 dengan Maroto v2.
type PDFExporter struct{}

// NewPDFExporter membangun exporter.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) ContentType() string { return "application/pdf" }

func (e *PDFExporter) FileExt() string { return "pdf" }

func (e *PDFExporter) Render(report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Keuangan", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitle("Grafik Harian"))
	m.AddRows(seriesHeaderRow())
	for _, p := range report.Series {
		m.AddRows(row.New(5).Add(
			col.New(4).Add(text.New(p.Date, props.Text{Size: 8})),
			col.New(4).Add(text.New(currency.FormatIDR(p.Income), props.Text{Size: 8, Align: align.Right})),
			col.New(4).Add(text.New(currency.FormatIDR(p.Expense), props.Text{Size: 8, Align: align.Right})),
		))
	}

	m.AddRows(sectionTitle("Kategori Pengeluaran Teratas"))
	for _, c := range report.TopExpenseCategories {
		m.AddRows(row.New(5).Add(
			col.New(8).Add(text.New(c.Category, props.Text{Size: 8})),
			col.New(4).Add(text.New(currency.FormatIDR(c.Amount), props.Text{Size: 8, Align: align.Right})),
		))
	}

	m.AddRows(sectionTitle("Margin per Produk (biaya bahan)"))
	m.AddRows(marginHeaderRow())
	for _, pm := range report.ProductMargins {
		m.AddRows(row.New(5).Add(
			col.New(4).Add(text.New(pm.ProductName, props.Text{Size: 8})),
			col.New(3).Add(text.New(currency.FormatIDR(pm.SellingPrice), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(currency.FormatIDR(pm.MaterialCost), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(pm.MarginPercent.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: susun pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow judul laporan plus rentang tanggal di kanan.
func headerRow(report *dto.ReportResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Laporan Keuangan", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Periode: %s", report.Period), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s s.d. %s", report.From, report.To), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func summaryRows(report *dto.ReportResponse) []core.Row {
	entry := func(label string, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9})),
			col.New(6).Add(text.New(value, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		)
	}
	return []core.Row{
		entry("Total Pemasukan", currency.FormatIDR(report.Summary.TotalIncome)),
		entry("Total Pengeluaran", currency.FormatIDR(report.Summary.TotalExpense)),
		entry("Laba", currency.FormatIDR(report.Summary.Profit)),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func seriesHeaderRow() core.Row {
	return row.New(5).Add(
		col.New(4).Add(text.New("Tanggal", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(4).Add(text.New("Pemasukan", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(4).Add(text.New("Pengeluaran", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func marginHeaderRow() core.Row {
	return row.New(5).Add(
		col.New(4).Add(text.New("Produk", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(3).Add(text.New("Harga Jual", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New("Biaya Bahan", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Margin %", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}
