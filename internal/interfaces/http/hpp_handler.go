package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
)

// HPPHandler menangani simulasi perhitungan HPP (terproteksi).
type HPPHandler struct {
	uc *usecase.HPPUseCase
}

// NewHPPHandler membangun handler.
func NewHPPHandler(uc *usecase.HPPUseCase) *HPPHandler {
	return &HPPHandler{uc: uc}
}

// Compute godoc
// @Summary      Hitung HPP satu skenario produksi
// @Description  Parameter numerik dikoersi: banyaknya produksi kacau jadi 1,
// @Description  jam kerja dan margin kacau jadi 0. Satu-satunya kegagalan
// @Description  adalah produk yang tidak ditemukan.
// @Tags         hpp
// @Security     Bearer
// @Produce      json
// @Param        product_id      query  string  true   "ID produk"
// @Param        labor_id        query  string  false  "ID tarif tenaga kerja"
// @Param        quantity        query  string  false  "Banyaknya produksi"  default(1)
// @Param        labor_hours     query  string  false  "Total jam kerja"     default(0)
// @Param        margin_percent  query  string  false  "Margin persen"       default(0)
// @Success      200  {object}  dto.HPPResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hpp [get]
func (h *HPPHandler) Compute(c *fiber.Ctx) error {
	in := dto.HPPRequest{
		ProductID:     c.Query("product_id"),
		LaborID:       c.Query("labor_id"),
		Quantity:      c.Query("quantity"),
		LaborHours:    c.Query("labor_hours"),
		MarginPercent: c.Query("margin_percent"),
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PRODUCT", Message: "product_id wajib diisi"})
	}
	out, err := h.uc.Compute(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
