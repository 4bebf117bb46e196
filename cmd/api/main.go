package main

import (
	"log"
	"os"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/report"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/service"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/config"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/database"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/handler"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/routes"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/oauth"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	importRepo := repository.NewImportRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	taxPaymentRepo := repository.NewTaxPaymentRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	ledgerQuery := repository.NewLedgerQuery(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	storeService := service.NewStoreService(storeRepo, userRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, productRepo)
	importService := service.NewImportService(importRepo, productRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	taxPaymentService := service.NewTaxPaymentService(taxPaymentRepo)
	salaryService := service.NewSalaryService(salaryRepo)
	reportService := report.NewReportService(ledgerQuery, productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Store:      handler.NewStoreHandler(storeService),
		Product:    handler.NewProductHandler(productService),
		Sale:       handler.NewSaleHandler(saleService),
		Import:     handler.NewImportHandler(importService),
		Expense:    handler.NewExpenseHandler(expenseService),
		TaxPayment: handler.NewTaxPaymentHandler(taxPaymentService),
		Salary:     handler.NewSalaryHandler(salaryService),
		Report:     handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		StoreRepo:       storeRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
