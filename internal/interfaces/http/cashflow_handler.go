package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
)

// CashflowHandler menangani buku kas: pemasukan dan pengeluaran
// (terproteksi).
type CashflowHandler struct {
	uc *usecase.CashflowUseCase
}

// NewCashflowHandler membangun handler.
func NewCashflowHandler(uc *usecase.CashflowUseCase) *CashflowHandler {
	return &CashflowHandler{uc: uc}
}

// CreateIncome godoc
// @Summary      Catat pemasukan
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncomeRequest  true  "Data pemasukan, tanggal format 2006-01-02"
// @Success      201   {object}  dto.IncomeResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/incomes [post]
func (h *CashflowHandler) CreateIncome(c *fiber.Ctx) error {
	var in dto.CreateIncomeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateIncome(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetIncome godoc
// @Summary      Ambil pemasukan per ID
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID pemasukan"
// @Success      200  {object}  dto.IncomeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [get]
func (h *CashflowHandler) GetIncome(c *fiber.Ctx) error {
	out, err := h.uc.GetIncome(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateIncome godoc
// @Summary      Perbarui pemasukan
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID pemasukan"
// @Param        body  body  dto.UpdateIncomeRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.IncomeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [put]
func (h *CashflowHandler) UpdateIncome(c *fiber.Ctx) error {
	var in dto.UpdateIncomeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateIncome(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListIncomes godoc
// @Summary      Daftar pemasukan, terbaru dulu
// @Description  Rentang tanggal opsional, batas inklusif. Tanggal kacau
// @Description  dikoersi ke batas terbuka.
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Tanggal awal 2006-01-02"
// @Param        to    query  string  false  "Tanggal akhir 2006-01-02"
// @Success      200  {object}  dto.IncomeListResponse
// @Router       /api/incomes [get]
func (h *CashflowHandler) ListIncomes(c *fiber.Ctx) error {
	out, err := h.uc.ListIncomes(dto.CashflowRangeQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteIncome godoc
// @Summary      Hapus pemasukan
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID pemasukan"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [delete]
func (h *CashflowHandler) DeleteIncome(c *fiber.Ctx) error {
	if err := h.uc.DeleteIncome(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pemasukan dihapus"})
}

// CreateExpense godoc
// @Summary      Catat pengeluaran
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Data pengeluaran, tanggal format 2006-01-02"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/expenses [post]
func (h *CashflowHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateExpense(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetExpense godoc
// @Summary      Ambil pengeluaran per ID
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID pengeluaran"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *CashflowHandler) GetExpense(c *fiber.Ctx) error {
	out, err := h.uc.GetExpense(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateExpense godoc
// @Summary      Perbarui pengeluaran
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID pengeluaran"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *CashflowHandler) UpdateExpense(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateExpense(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListExpenses godoc
// @Summary      Daftar pengeluaran, terbaru dulu
// @Description  Rentang tanggal opsional, batas inklusif. Tanggal kacau
// @Description  dikoersi ke batas terbuka.
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Tanggal awal 2006-01-02"
// @Param        to    query  string  false  "Tanggal akhir 2006-01-02"
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *CashflowHandler) ListExpenses(c *fiber.Ctx) error {
	out, err := h.uc.ListExpenses(dto.CashflowRangeQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteExpense godoc
// @Summary      Hapus pengeluaran
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID pengeluaran"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *CashflowHandler) DeleteExpense(c *fiber.Ctx) error {
	if err := h.uc.DeleteExpense(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pengeluaran dihapus"})
}
