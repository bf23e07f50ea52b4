package persistence

import (
	"context"
	"errors"

	"github.com/conta/backend/internal/domain/fiscal"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdvancePaymentRepository implements AdvancePaymentRepository using
// GORM
type GormAdvancePaymentRepository struct {
	db *gorm.DB
}

// NewGormAdvancePaymentRepository creates a new GormAdvancePaymentRepository
func NewGormAdvancePaymentRepository(db *gorm.DB) *GormAdvancePaymentRepository {
	return &GormAdvancePaymentRepository{db: db}
}

// Insert persists a new advance payment. The unique (year, quarter) index
// makes the duplicate-period check atomic with the insert, so two
// concurrent registrations for the same period cannot both succeed.
func (r *GormAdvancePaymentRepository) Insert(ctx context.Context, payment *fiscal.AdvancePayment) error {
	model := models.AdvancePaymentModelFromDomain(payment)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicatePeriod
		}
		return err
	}
	return nil
}

// FindByPeriod finds the payment registered for a period, if any
func (r *GormAdvancePaymentRepository) FindByPeriod(ctx context.Context, period fiscal.Period) (*fiscal.AdvancePayment, error) {
	var model models.AdvancePaymentModel
	if err := r.db.WithContext(ctx).
		Where("year = ? AND quarter = ?", period.Year, period.Quarter).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBefore finds the payments of a year for quarters strictly less than
// quarterExclusive, ordered by quarter
func (r *GormAdvancePaymentRepository) FindBefore(ctx context.Context, year, quarterExclusive int) ([]fiscal.AdvancePayment, error) {
	var paymentModels []models.AdvancePaymentModel
	if err := r.db.WithContext(ctx).Model(&models.AdvancePaymentModel{}).
		Where("year = ? AND quarter < ?", year, quarterExclusive).
		Order("quarter").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]fiscal.AdvancePayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}
