package persistence

import (
	"context"
	"time"

	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Save persists a new expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *ledger.DeductibleExpense) error {
	model := models.ExpenseModelFromDomain(expense)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindInRange finds expenses dated within [start, end], both inclusive,
// ordered by date then supplier
func (r *GormExpenseRepository) FindInRange(ctx context.Context, start, end time.Time) ([]ledger.DeductibleExpense, error) {
	var expenseModels []models.DeductibleExpenseModel
	if err := r.db.WithContext(ctx).Model(&models.DeductibleExpenseModel{}).
		Where("date >= ? AND date <= ?", start, end).
		Order("date, supplier").
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	return toExpenses(expenseModels), nil
}

// FindAll finds all expenses ordered by date then supplier
func (r *GormExpenseRepository) FindAll(ctx context.Context, opts ledger.ListOptions) ([]ledger.DeductibleExpense, error) {
	query := r.db.WithContext(ctx).Model(&models.DeductibleExpenseModel{})
	if opts.Descending {
		query = query.Order("date DESC, supplier DESC")
	} else {
		query = query.Order("date, supplier")
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var expenseModels []models.DeductibleExpenseModel
	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	return toExpenses(expenseModels), nil
}

func toExpenses(expenseModels []models.DeductibleExpenseModel) []ledger.DeductibleExpense {
	expenses := make([]ledger.DeductibleExpense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses
}
