package activity

import (
	"context"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the atividades table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error)
	List(ctx context.Context, limit, offset int) ([]models.ActivityEntry, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an activity repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	err := r.db.WithContext(ctx).
		Order("data_criacao DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
