package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/reports"
	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	ProductUC     *usecase.ProductUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	UpdateInvoice *billing.UpdateInvoiceUseCase
	InvoiceDoc    *billing.InvoiceDocumentUseCase
	PaymentUC     *billing.PaymentUseCase
	LedgerUC      *reports.LedgerUseCase
	PnLUC         *reports.ProfitLossUseCase
	DashboardUC   *reports.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil (protegido)
	protected.Get("/user/profile", authHandler.Profile)

	// Company settings (protegido; la edición queda reservada al admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company/settings", companyHandler.Get)
	protected.Put("/company/settings", RequireRole(entity.RoleAdmin), companyHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.UpdateInvoice, deps.InvoiceDoc)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/:id/email", invoiceHandler.SendEmail)
	invoices.Get("/:id/payments", paymentHandler.ListByInvoice)

	// Payments (protegido)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Create)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", RequireRole(entity.RoleAdmin), expenseHandler.Delete)

	// Reports y dashboard (protegido)
	reportHandler := NewReportHandler(deps.LedgerUC, deps.PnLUC, deps.DashboardUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/ledger", reportHandler.Ledger)
	reportsGroup.Get("/pnl", reportHandler.ProfitLoss)
	protected.Get("/analytics/dashboard", reportHandler.Dashboard)
}
