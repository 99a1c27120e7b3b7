package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/auth"
	"github.com/jdrosales/autopartes-api/internal/application/catalog"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
	"github.com/jdrosales/autopartes-api/internal/application/labels"
	"github.com/jdrosales/autopartes-api/internal/application/purchases"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SedeUC      *catalog.SedeUseCase
	SupplierUC  *catalog.SupplierUseCase
	TaxonomyUC  *catalog.TaxonomyUseCase
	ProductUC   *catalog.ProductUseCase
	StockQuery  *inventory.StockQueryUseCase
	StockUC     *inventory.StockUseCase
	KardexUC    *inventory.KardexUseCase
	PurchaseUC  *purchases.PurchaseUseCase
	LabelUC     *labels.LabelUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	warehouse := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sedes
	sedes := protected.Group("/sedes")
	sedeHandler := NewSedeHandler(deps.SedeUC)
	sedes.Get("/", sedeHandler.List)
	sedes.Get("/:id", sedeHandler.GetByID)
	sedes.Post("/", adminOnly, sedeHandler.Create)
	sedes.Put("/:id", adminOnly, sedeHandler.Update)

	// Proveedores
	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", warehouse, supplierHandler.Create)
	suppliers.Put("/:id", warehouse, supplierHandler.Update)

	// Categorías y marcas
	taxonomyHandler := NewTaxonomyHandler(deps.TaxonomyUC)
	categories := protected.Group("/categorias")
	categories.Get("/", taxonomyHandler.ListCategories)
	categories.Post("/", adminOnly, taxonomyHandler.CreateCategory)
	categories.Put("/:id", adminOnly, taxonomyHandler.UpdateCategory)
	brands := protected.Group("/marcas")
	brands.Get("/", taxonomyHandler.ListBrands)
	brands.Post("/", adminOnly, taxonomyHandler.CreateBrand)
	brands.Put("/:id", adminOnly, taxonomyHandler.UpdateBrand)

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", warehouse, productHandler.Create)
	products.Put("/:id", warehouse, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQuery, deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/bajo", stockHandler.ListLow)
	stockGroup.Get("/agotado", stockHandler.ListZero)
	stockGroup.Post("/ajuste", warehouse, stockHandler.Adjust)
	stockGroup.Post("/transferencia", warehouse, stockHandler.Transfer)
	stockGroup.Put("/minimo", warehouse, stockHandler.SetMinimum)

	// Kardex
	kardexGroup := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC)
	kardexGroup.Get("/", kardexHandler.Query)
	kardexGroup.Get("/export.csv", kardexHandler.ExportCSV)
	kardexGroup.Get("/export.pdf", kardexHandler.ExportPDF)

	// Compras
	purchasesGroup := protected.Group("/compras", warehouse)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Put("/:id/estado", purchaseHandler.ChangeStatus)
	purchasesGroup.Put("/:id/factura", purchaseHandler.SetInvoice)
	purchasesGroup.Delete("/:id", purchaseHandler.Delete)

	// Retiros (vendedores incluidos: la venta sale por aquí)
	withdrawals := protected.Group("/retiros")
	withdrawalHandler := NewWithdrawalHandler(deps.StockUC)
	withdrawals.Post("/", withdrawalHandler.Create)

	// Etiquetas
	labelsGroup := protected.Group("/etiquetas", warehouse)
	labelHandler := NewLabelHandler(deps.LabelUC)
	labelsGroup.Post("/", labelHandler.Generate)
}
