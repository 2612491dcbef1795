package checkouts

import (
	"context"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the checkouts table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, checkout *models.Checkout) (*models.Checkout, error)
	FindByID(ctx context.Context, id uint) (*models.Checkout, error)
	List(ctx context.Context, limit, offset int) ([]models.Checkout, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a checkouts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, checkout *models.Checkout) (*models.Checkout, error) {
	if err := r.db.WithContext(ctx).Create(checkout).Error; err != nil {
		return nil, err
	}
	return checkout, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Checkout, error) {
	var checkout models.Checkout
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&checkout).Error
	if err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]models.Checkout, error) {
	var items []models.Checkout
	err := r.db.WithContext(ctx).
		Order("data_criacao DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Checkout{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Checkout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
