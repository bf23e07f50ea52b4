package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Save persists a new invoice. The unique index on the invoice number makes
// the duplicate check atomic with the insert.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *ledger.IssuedInvoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicateInvoiceNumber
		}
		return err
	}
	return nil
}

// FindByNumber finds an invoice by its ledger-unique number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, number string) (*ledger.IssuedInvoice, error) {
	var model models.IssuedInvoiceModel
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindInRange finds invoices issued within [start, end], both inclusive,
// ordered by issue date then number
func (r *GormInvoiceRepository) FindInRange(ctx context.Context, start, end time.Time, activity *ledger.Activity) ([]ledger.IssuedInvoice, error) {
	query := r.db.WithContext(ctx).Model(&models.IssuedInvoiceModel{}).
		Where("issue_date >= ? AND issue_date <= ?", start, end)
	if activity != nil {
		query = query.Where("activity = ?", *activity)
	}

	var invoiceModels []models.IssuedInvoiceModel
	if err := query.Order("issue_date, number").Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return toInvoices(invoiceModels), nil
}

// FindAll finds all invoices ordered by issue date then number
func (r *GormInvoiceRepository) FindAll(ctx context.Context, opts ledger.ListOptions) ([]ledger.IssuedInvoice, error) {
	query := r.db.WithContext(ctx).Model(&models.IssuedInvoiceModel{})
	if opts.Descending {
		query = query.Order("issue_date DESC, number DESC")
	} else {
		query = query.Order("issue_date, number")
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var invoiceModels []models.IssuedInvoiceModel
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return toInvoices(invoiceModels), nil
}

func toInvoices(invoiceModels []models.IssuedInvoiceModel) []ledger.IssuedInvoice {
	invoices := make([]ledger.IssuedInvoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices
}
