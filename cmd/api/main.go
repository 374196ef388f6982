package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/invoicely/invoicely-api/internal/application/service"
	"github.com/invoicely/invoicely-api/internal/config"
	"github.com/invoicely/invoicely-api/internal/infrastructure/database"
	"github.com/invoicely/invoicely-api/internal/infrastructure/repository"
	"github.com/invoicely/invoicely-api/internal/presentation/http/handler"
	"github.com/invoicely/invoicely-api/internal/presentation/http/routes"
	"github.com/invoicely/invoicely-api/pkg/money"
	"github.com/invoicely/invoicely-api/pkg/pdf"
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

	// Seed the invoice number counter
	if err := database.SeedSequence(db); err != nil {
		log.Fatalf("Failed to seed invoice sequence: %v", err)
	}

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Initialize the document renderer
	formatter := money.New(cfg.Invoice.CurrencySymbol, cfg.Invoice.Locale)
	renderer := pdf.New(formatter, pdf.Options{
		CompanyName: cfg.Company.Name,
		FooterNote:  cfg.Company.FooterNote,
		Watermark:   cfg.Company.PDFWatermark,
	})

	// Initialize services
	numberService := service.NewNumberService(sequenceRepo, cfg.Invoice.NumberPrefix)
	invoiceService := service.NewInvoiceService(invoiceRepo, numberService, renderer, cfg.Invoice.DueDays)

	// Initialize handlers
	handlers := &routes.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceService, numberService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
