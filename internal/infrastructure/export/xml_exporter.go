package export

import (
	"github.com/beevik/etree"

	"github.com/umkone/umkone-api/internal/application/dto"
)

// XMLExporter menyusun dokumen XML laporan dengan etree.
type XMLExporter struct{}

// NewXMLExporter membangun exporter.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

func (e *XMLExporter) ContentType() string { return "application/xml" }

func (e *XMLExporter) FileExt() string { return "xml" }

func (e *XMLExporter) Render(report *dto.ReportResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LaporanKeuangan")
	root.CreateAttr("periode", report.Period)
	root.CreateAttr("dari", report.From)
	root.CreateAttr("sampai", report.To)

	ringkasan := root.CreateElement("Ringkasan")
	ringkasan.CreateElement("TotalPemasukan").SetText(report.Summary.TotalIncome.String())
	ringkasan.CreateElement("TotalPengeluaran").SetText(report.Summary.TotalExpense.String())
	ringkasan.CreateElement("Laba").SetText(report.Summary.Profit.String())

	grafik := root.CreateElement("GrafikHarian")
	for _, p := range report.Series {
		titik := grafik.CreateElement("Titik")
		titik.CreateAttr("tanggal", p.Date)
		titik.CreateElement("Pemasukan").SetText(p.Income.String())
		titik.CreateElement("Pengeluaran").SetText(p.Expense.String())
	}

	kategori := root.CreateElement("KategoriPengeluaranTeratas")
	for _, c := range report.TopExpenseCategories {
		item := kategori.CreateElement("Kategori")
		item.CreateAttr("nama", c.Category)
		item.SetText(c.Amount.String())
	}

	margin := root.CreateElement("MarginProduk")
	for _, m := range report.ProductMargins {
		produk := margin.CreateElement("Produk")
		produk.CreateAttr("id", m.ProductID)
		produk.CreateAttr("nama", m.ProductName)
		produk.CreateElement("HargaJual").SetText(m.SellingPrice.String())
		produk.CreateElement("BiayaBahan").SetText(m.MaterialCost.String())
		produk.CreateElement("Margin").SetText(m.Margin.String())
		produk.CreateElement("MarginPersen").SetText(m.MarginPercent.String())
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
