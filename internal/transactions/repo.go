package transactions

import (
	"context"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a transactions repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *repository) FindByReference(ctx context.Context, referencia string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("referencia = ?", referencia).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpsertByReference inserts the transaction or, when the reference already
// exists, refreshes the mutable columns with the provider's latest state.
func (r *repository) UpsertByReference(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "referencia"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"checkout_id",
				"cliente_nome",
				"cliente_email",
				"valor",
				"moeda",
				"status",
				"metodo",
				"metadata",
				"data_atualizacao",
			}),
		}).
		Create(tx).Error
	if err != nil {
		return nil, err
	}
	return r.FindByReference(ctx, tx.Referencia)
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Order("data_criacao DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}
