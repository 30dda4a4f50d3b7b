package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/auth"
	"github.com/umkone/umkone-api/internal/application/usecase"
)

// RouterDeps dependensi untuk router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	MaterialUC       *usecase.MaterialUseCase
	CompositionUC    *usecase.CompositionUseCase
	ProductionCostUC *usecase.ProductionCostUseCase
	CashflowUC       *usecase.CashflowUseCase
	HPPUC            *usecase.HPPUseCase
	ReportUC         *usecase.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router mendaftarkan seluruh rute API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rute terproteksi (butuh Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produk jadi
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Bahan baku
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Resep produk
	compositions := protected.Group("/compositions")
	compositionHandler := NewCompositionHandler(deps.CompositionUC)
	compositions.Post("/", compositionHandler.Create)
	compositions.Get("/", compositionHandler.List)
	compositions.Get("/:id", compositionHandler.GetByID)
	compositions.Put("/:id", compositionHandler.Update)
	compositions.Delete("/:id", compositionHandler.Delete)

	// Biaya produksi: tarif tenaga kerja dan overhead
	productionCostHandler := NewProductionCostHandler(deps.ProductionCostUC)
	laborRates := protected.Group("/labor-rates")
	laborRates.Post("/", productionCostHandler.CreateLaborRate)
	laborRates.Get("/", productionCostHandler.ListLaborRates)
	laborRates.Get("/:id", productionCostHandler.GetLaborRate)
	laborRates.Put("/:id", productionCostHandler.UpdateLaborRate)
	laborRates.Delete("/:id", productionCostHandler.DeleteLaborRate)

	overheads := protected.Group("/overheads")
	overheads.Post("/", productionCostHandler.CreateOverhead)
	overheads.Get("/", productionCostHandler.ListOverheads)
	overheads.Get("/:id", productionCostHandler.GetOverhead)
	overheads.Put("/:id", productionCostHandler.UpdateOverhead)
	overheads.Delete("/:id", productionCostHandler.DeleteOverhead)

	// Buku kas
	cashflowHandler := NewCashflowHandler(deps.CashflowUC)
	incomes := protected.Group("/incomes")
	incomes.Post("/", cashflowHandler.CreateIncome)
	incomes.Get("/", cashflowHandler.ListIncomes)
	incomes.Get("/:id", cashflowHandler.GetIncome)
	incomes.Put("/:id", cashflowHandler.UpdateIncome)
	incomes.Delete("/:id", cashflowHandler.DeleteIncome)

	expenses := protected.Group("/expenses")
	expenses.Post("/", cashflowHandler.CreateExpense)
	expenses.Get("/", cashflowHandler.ListExpenses)
	expenses.Get("/:id", cashflowHandler.GetExpense)
	expenses.Put("/:id", cashflowHandler.UpdateExpense)
	expenses.Delete("/:id", cashflowHandler.DeleteExpense)

	// Simulasi HPP
	hppHandler := NewHPPHandler(deps.HPPUC)
	protected.Get("/hpp", hppHandler.Compute)

	// Laporan dan beranda
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports", reportHandler.Get)
	protected.Get("/reports/export", reportHandler.Export)
	protected.Get("/dashboard/summary", reportHandler.Dashboard)
}
