package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lucasferreira/vitrine-backend/internal/activity"
	"github.com/lucasferreira/vitrine-backend/internal/reconciler"
	"github.com/lucasferreira/vitrine-backend/internal/transactions"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"gorm.io/gorm"
)

type gatewayClient interface {
	CreatePayment(ctx context.Context, req mercadopago.PaymentRequest) (*mercadopago.Payment, json.RawMessage, error)
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ServiceParams struct {
	Gateway           gatewayClient
	TransactionRepo   transactions.Repository
	ActivityRepo      activity.Repository
	TransactionRunner txRunner
}

// Service fronts direct payment and preference creation: the gateway call
// plus the local bookkeeping the dashboard expects.
type Service struct {
	gateway      gatewayClient
	transactions transactions.Repository
	activity     activity.Repository
	txRunner     txRunner
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment gateway required")
	}
	if params.TransactionRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction repo required")
	}
	if params.ActivityRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "activity repo required")
	}
	if params.TransactionRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &Service{
		gateway:      params.Gateway,
		transactions: params.TransactionRepo,
		activity:     params.ActivityRepo,
		txRunner:     params.TransactionRunner,
	}, nil
}

// CreatePayment charges via the gateway and records the resulting payment
// as a local transaction plus an activity entry.
func (s *Service) CreatePayment(ctx context.Context, req mercadopago.PaymentRequest) (*mercadopago.Payment, error) {
	payment, raw, err := s.gateway.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}

	derived := reconciler.BuildTransaction(payment, raw)

	err = s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		stored, err := s.transactions.WithTx(tx).UpsertByReference(ctx, derived)
		if err != nil {
			return err
		}

		meta, marshalErr := json.Marshal(map[string]any{
			"referencia": stored.Referencia,
			"status":     stored.Status,
		})
		if marshalErr != nil {
			return marshalErr
		}
		_, err = s.activity.WithTx(tx).Append(ctx, &models.ActivityEntry{
			Tipo:      "pagamento_criado",
			Descricao: fmt.Sprintf("Pagamento %s criado com status %s", stored.Referencia, stored.Status),
			Metadados: meta,
		})
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist payment transaction")
	}

	return payment, nil
}

// CreatePreference builds a gateway checkout preference; nothing is stored
// locally until the resulting payment notifies back.
func (s *Service) CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	return s.gateway.CreatePreference(ctx, req)
}
