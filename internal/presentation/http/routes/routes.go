package routes

import (
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/config"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/handler"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/middleware"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Store      *handler.StoreHandler
	Product    *handler.ProductHandler
	Sale       *handler.SaleHandler
	Import     *handler.ImportHandler
	Expense    *handler.ExpenseHandler
	TaxPayment *handler.TaxPaymentHandler
	Salary     *handler.SalaryHandler
	Report     *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	StoreRepo       domainRepo.StoreRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.StoreMiddleware(deps.StoreRepo))

		// Per-store rate limiter
		rateLimiter := middleware.NewStoreRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Stores
	registerStoreRoutes(protected, h)

	// Everything below operates inside one store
	store := protected.Group("")
	store.Use(middleware.RequireStore())

	registerProductRoutes(store, h)
	registerSaleRoutes(store, h, deps)
	registerImportRoutes(store, h)
	registerExpenseRoutes(store, h)
	registerTaxPaymentRoutes(store, h)
	registerSalaryRoutes(store, h)
	registerReportRoutes(store, h)
}

func registerStoreRoutes(protected *gin.RouterGroup, h *Handlers) {
	stores := protected.Group("/stores")
	{
		stores.GET("", h.Store.List)
		stores.POST("", h.Store.Create)
		stores.GET("/:id", h.Store.Get)
		stores.PUT("/:id", h.Store.Update)
		stores.GET("/:id/members", h.Store.ListMembers)
		stores.POST("/:id/members", h.Store.AddMember)
		stores.DELETE("/:id/members/:user_id", h.Store.RemoveMember)
	}
}

func registerProductRoutes(store *gin.RouterGroup, h *Handlers) {
	products := store.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerSaleRoutes(store *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := store.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Checkout uses idempotency middleware to prevent duplicate invoices
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerImportRoutes(store *gin.RouterGroup, h *Handlers) {
	imports := store.Group("/imports")
	{
		imports.GET("", h.Import.List)
		imports.POST("", h.Import.Create)
		imports.GET("/:id", h.Import.Get)
	}
}

func registerExpenseRoutes(store *gin.RouterGroup, h *Handlers) {
	expenses := store.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerTaxPaymentRoutes(store *gin.RouterGroup, h *Handlers) {
	taxPayments := store.Group("/tax-payments")
	{
		taxPayments.GET("", h.TaxPayment.List)
		taxPayments.POST("", h.TaxPayment.Create)
		taxPayments.GET("/:id", h.TaxPayment.Get)
		taxPayments.DELETE("/:id", h.TaxPayment.Delete)
	}
}

func registerSalaryRoutes(store *gin.RouterGroup, h *Handlers) {
	salaries := store.Group("/salaries")
	{
		salaries.GET("", h.Salary.List)
		salaries.POST("", h.Salary.Create)
		salaries.GET("/:id", h.Salary.Get)
		salaries.PUT("/:id", h.Salary.Update)
		salaries.DELETE("/:id", h.Salary.Delete)
	}
}

func registerReportRoutes(store *gin.RouterGroup, h *Handlers) {
	reports := store.Group("/reports")
	{
		reports.GET("", h.Report.Get)
		reports.GET("/summary", h.Report.GetSummary)
	}
}
