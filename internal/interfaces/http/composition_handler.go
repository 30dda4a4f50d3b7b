package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
)

// CompositionHandler menangani resep produk (terproteksi).
type CompositionHandler struct {
	uc *usecase.CompositionUseCase
}

// NewCompositionHandler membangun handler.
func NewCompositionHandler(uc *usecase.CompositionUseCase) *CompositionHandler {
	return &CompositionHandler{uc: uc}
}

// Create godoc
// @Summary      Tambah bahan ke resep produk
// @Tags         compositions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompositionRequest  true  "Baris resep"
// @Success      201   {object}  dto.CompositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compositions [post]
func (h *CompositionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompositionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Ambil baris resep per ID
// @Tags         compositions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID baris resep"
// @Success      200  {object}  dto.CompositionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compositions/{id} [get]
func (h *CompositionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Perbarui baris resep
// @Tags         compositions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID baris resep"
// @Param        body  body  dto.UpdateCompositionRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.CompositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compositions/{id} [put]
func (h *CompositionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompositionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Daftar resep, bisa difilter per produk
// @Tags         compositions
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filter ID produk"
// @Success      200  {object}  dto.CompositionListResponse
// @Router       /api/compositions [get]
func (h *CompositionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("product_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus baris resep
// @Tags         compositions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID baris resep"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compositions/{id} [delete]
func (h *CompositionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "baris resep dihapus"})
}
