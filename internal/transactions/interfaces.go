package transactions

import (
	"context"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the transacoes table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	FindByReference(ctx context.Context, referencia string) (*models.Transaction, error)
	UpsertByReference(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]models.Transaction, error)
}
