package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/usecase"
)

// ReportHandler menangani laporan keuangan dan ringkasan beranda
// (terproteksi).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler membangun handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Laporan keuangan satu periode
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "week | month | year"  default(month)
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.Query("period", "month"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Unduh laporan dalam format json, xml, xlsx, atau pdf
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        period  query  string  false  "week | month | year"        default(month)
// @Param        format  query  string  false  "json | xml | xlsx | pdf"    default(json)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	data, contentType, filename, err := h.uc.Export(
		c.Query("period", "month"),
		c.Query("format", "json"),
	)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// Dashboard godoc
// @Summary      Ringkasan beranda: kas hari ini, bulan berjalan, ukuran katalog
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
