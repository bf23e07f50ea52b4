package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	booksapp "github.com/conta/backend/internal/application/books"
	fiscalapp "github.com/conta/backend/internal/application/fiscal"
	importapp "github.com/conta/backend/internal/application/importing"
	ledgerapp "github.com/conta/backend/internal/application/ledger"
	"github.com/conta/backend/internal/infrastructure/config"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/conta/backend/internal/infrastructure/persistence"
	"github.com/conta/backend/internal/interfaces/http/handler"
	"github.com/conta/backend/internal/interfaces/http/router"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Conta Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.HTTP.Port),
		zap.String("ledger", cfg.Database.Path),
	)

	db, err := persistence.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open ledger database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate ledger database", zap.Error(err))
	}

	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	contributionRepo := persistence.NewGormContributionRepository(db.DB)
	advancePaymentRepo := persistence.NewGormAdvancePaymentRepository(db.DB)

	ledgerService := ledgerapp.NewService(invoiceRepo, expenseRepo, contributionRepo)
	vatService := fiscalapp.NewVATService(invoiceRepo, expenseRepo)
	irpfService := fiscalapp.NewIRPFService(invoiceRepo, expenseRepo, contributionRepo, advancePaymentRepo)
	booksService := booksapp.NewService(invoiceRepo, expenseRepo, cfg.Books.OutputDir)
	importService := importapp.NewService()

	engine := router.NewEngine(log)
	router.NewRouter(engine).
		Register(handler.NewSystemHandler()).
		Register(handler.NewLedgerHandler(ledgerService)).
		Register(handler.NewFiscalHandler(vatService, irpfService)).
		Register(handler.NewBooksHandler(booksService, importService)).
		Setup()

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: engine,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
