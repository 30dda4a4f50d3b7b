package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
)

// ProductionCostHandler menangani tarif tenaga kerja dan biaya overhead
// (terproteksi).
type ProductionCostHandler struct {
	uc *usecase.ProductionCostUseCase
}

// NewProductionCostHandler membangun handler.
func NewProductionCostHandler(uc *usecase.ProductionCostUseCase) *ProductionCostHandler {
	return &ProductionCostHandler{uc: uc}
}

// CreateLaborRate godoc
// @Summary      Buat tarif tenaga kerja
// @Tags         production-costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLaborRateRequest  true  "Data tarif"
// @Success      201   {object}  dto.LaborRateResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/labor-rates [post]
func (h *ProductionCostHandler) CreateLaborRate(c *fiber.Ctx) error {
	var in dto.CreateLaborRateRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateLaborRate(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetLaborRate godoc
// @Summary      Ambil tarif tenaga kerja per ID
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID tarif"
// @Success      200  {object}  dto.LaborRateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labor-rates/{id} [get]
func (h *ProductionCostHandler) GetLaborRate(c *fiber.Ctx) error {
	out, err := h.uc.GetLaborRate(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateLaborRate godoc
// @Summary      Perbarui tarif tenaga kerja
// @Tags         production-costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID tarif"
// @Param        body  body  dto.UpdateLaborRateRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.LaborRateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labor-rates/{id} [put]
func (h *ProductionCostHandler) UpdateLaborRate(c *fiber.Ctx) error {
	var in dto.UpdateLaborRateRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateLaborRate(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListLaborRates godoc
// @Summary      Daftar tarif tenaga kerja
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LaborRateListResponse
// @Router       /api/labor-rates [get]
func (h *ProductionCostHandler) ListLaborRates(c *fiber.Ctx) error {
	out, err := h.uc.ListLaborRates()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteLaborRate godoc
// @Summary      Hapus tarif tenaga kerja
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID tarif"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labor-rates/{id} [delete]
func (h *ProductionCostHandler) DeleteLaborRate(c *fiber.Ctx) error {
	if err := h.uc.DeleteLaborRate(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tarif dihapus"})
}

// CreateOverhead godoc
// @Summary      Buat biaya overhead
// @Tags         production-costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOverheadRequest  true  "Data biaya, period: daily|weekly|monthly"
// @Success      201   {object}  dto.OverheadResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/overheads [post]
func (h *ProductionCostHandler) CreateOverhead(c *fiber.Ctx) error {
	var in dto.CreateOverheadRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateOverhead(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetOverhead godoc
// @Summary      Ambil biaya overhead per ID
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID biaya"
// @Success      200  {object}  dto.OverheadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/overheads/{id} [get]
func (h *ProductionCostHandler) GetOverhead(c *fiber.Ctx) error {
	out, err := h.uc.GetOverhead(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateOverhead godoc
// @Summary      Perbarui biaya overhead
// @Tags         production-costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID biaya"
// @Param        body  body  dto.UpdateOverheadRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.OverheadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/overheads/{id} [put]
func (h *ProductionCostHandler) UpdateOverhead(c *fiber.Ctx) error {
	var in dto.UpdateOverheadRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateOverhead(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListOverheads godoc
// @Summary      Daftar biaya overhead plus total bulanan
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverheadListResponse
// @Router       /api/overheads [get]
func (h *ProductionCostHandler) ListOverheads(c *fiber.Ctx) error {
	out, err := h.uc.ListOverheads()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteOverhead godoc
// @Summary      Hapus biaya overhead
// @Tags         production-costs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID biaya"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/overheads/{id} [delete]
func (h *ProductionCostHandler) DeleteOverhead(c *fiber.Ctx) error {
	if err := h.uc.DeleteOverhead(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "biaya dihapus"})
}
