package main

import (
	"context"
	"fmt"
	"os"

	booksapp "github.com/conta/backend/internal/application/books"
	fiscalapp "github.com/conta/backend/internal/application/fiscal"
	importapp "github.com/conta/backend/internal/application/importing"
	ledgerapp "github.com/conta/backend/internal/application/ledger"
	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/infrastructure/config"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/conta/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "1.0.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "conta",
	Short: "Quarterly VAT and IRPF settlements for a Spanish freelancer",
	Long: `conta keeps the ledger of issued invoices, deductible expenses and
social contribution payments, and settles from it the quarterly Modelo 303
(VAT) and Modelo 130 (IRPF advance payment) declarations.

The ledger is a single local SQLite file. Run "conta init" once to create
it, then record entries and settle quarters.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "ledger database path (overrides configuration)")
}

// app bundles the wired services the commands run against
type app struct {
	db       *persistence.Database
	cfg      *config.Config
	log      *zap.Logger
	invoices domain.InvoiceRepository
	expenses domain.ExpenseRepository
	ledger   *ledgerapp.Service
	vat      *fiscalapp.VATService
	irpf     *fiscalapp.IRPFService
	books    *booksapp.Service
	importer *importapp.Service
}

// newApp opens the ledger and wires the services. The caller must Close.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// CLI runs keep logging down to warnings
	log, err := logger.New(&logger.Config{Level: "warn", Format: "console", Output: "stderr"})
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	contributionRepo := persistence.NewGormContributionRepository(db.DB)
	advancePaymentRepo := persistence.NewGormAdvancePaymentRepository(db.DB)

	return &app{
		db:       db,
		cfg:      cfg,
		log:      log,
		invoices: invoiceRepo,
		expenses: expenseRepo,
		ledger:   ledgerapp.NewService(invoiceRepo, expenseRepo, contributionRepo),
		vat:      fiscalapp.NewVATService(invoiceRepo, expenseRepo),
		irpf:     fiscalapp.NewIRPFService(invoiceRepo, expenseRepo, contributionRepo, advancePaymentRepo),
		books:    booksapp.NewService(invoiceRepo, expenseRepo, cfg.Books.OutputDir),
		importer: importapp.NewService(),
	}, nil
}

// Close releases the ledger
func (a *app) Close() {
	_ = a.log.Sync()
	_ = a.db.Close()
}

// ctx returns a context carrying the CLI logger
func (a *app) ctx() context.Context {
	return logger.WithContext(context.Background(), a.log)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the ledger database and its tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Ledger ready at %s\n", a.cfg.Database.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
