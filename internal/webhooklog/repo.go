package webhooklog

import (
	"context"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the webhook_entregas table.
// The table is append-only: every inbound notification attempt gets its own
// row and existing rows are never updated.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, delivery *models.WebhookDelivery) (*models.WebhookDelivery, error)
	List(ctx context.Context, limit, offset int) ([]models.WebhookDelivery, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a delivery log repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, delivery *models.WebhookDelivery) (*models.WebhookDelivery, error) {
	if err := r.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return nil, err
	}
	return delivery, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.WithContext(ctx).
		Order("ultima_execucao DESC").
		Limit(limit).
		Offset(offset).
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}
