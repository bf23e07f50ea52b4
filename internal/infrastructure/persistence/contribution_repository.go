package persistence

import (
	"context"
	"time"

	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormContributionRepository implements ContributionRepository using GORM
type GormContributionRepository struct {
	db *gorm.DB
}

// NewGormContributionRepository creates a new GormContributionRepository
func NewGormContributionRepository(db *gorm.DB) *GormContributionRepository {
	return &GormContributionRepository{db: db}
}

// Save persists a new contribution payment
func (r *GormContributionRepository) Save(ctx context.Context, payment *ledger.ContributionPayment) error {
	model := models.ContributionModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindInRange finds contribution payments dated within [start, end], both
// inclusive, ordered by date
func (r *GormContributionRepository) FindInRange(ctx context.Context, start, end time.Time) ([]ledger.ContributionPayment, error) {
	var paymentModels []models.ContributionPaymentModel
	if err := r.db.WithContext(ctx).Model(&models.ContributionPaymentModel{}).
		Where("date >= ? AND date <= ?", start, end).
		Order("date").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]ledger.ContributionPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}
