// Package export menyalin laporan keuangan ke format unduhan: JSON mentah,
// XML, lembar kerja Excel, dan PDF siap cetak.
package export

import (
	"encoding/json"

	"github.com/umkone/umkone-api/internal/application/dto"
)

// JSONExporter salinan laporan apa adanya, rapi dengan indentasi.
type JSONExporter struct{}

// NewJSONExporter membangun exporter.
func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

func (e *JSONExporter) ContentType() string { return "application/json" }

func (e *JSONExporter) FileExt() string { return "json" }

func (e *JSONExporter) Render(report *dto.ReportResponse) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
