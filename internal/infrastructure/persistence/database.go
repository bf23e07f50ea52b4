package persistence

import (
	"fmt"

	"github.com/conta/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database
// operations. The ledger lives in a single local SQLite file.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite ledger at the given path.
// Use ":memory:" for an ephemeral database.
func NewDatabase(path string) (*Database, error) {
	return newDatabaseWithLogLevel(path, logger.Silent)
}

// NewDatabaseWithLogger opens the SQLite ledger with custom logger settings
func NewDatabaseWithLogger(path string, logLevel logger.LogLevel) (*Database, error) {
	return newDatabaseWithLogLevel(path, logLevel)
}

func newDatabaseWithLogLevel(path string, logLevel logger.LogLevel) (*Database, error) {
	gormLogger := logger.Default.LogMode(logLevel)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
		// unique-index violations surface as gorm.ErrDuplicatedKey, which
		// the repositories translate to domain errors
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates or updates the ledger tables
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.IssuedInvoiceModel{},
		&models.DeductibleExpenseModel{},
		&models.ContributionPaymentModel{},
		&models.AdvancePaymentModel{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
