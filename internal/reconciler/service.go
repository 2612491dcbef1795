package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lucasferreira/vitrine-backend/internal/activity"
	"github.com/lucasferreira/vitrine-backend/internal/transactions"
	"github.com/lucasferreira/vitrine-backend/internal/webhooklog"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"github.com/lucasferreira/vitrine-backend/pkg/metrics"
	"gorm.io/gorm"
)

type paymentGateway interface {
	GetPayment(ctx context.Context, id string) (*mercadopago.Payment, json.RawMessage, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ServiceParams struct {
	Gateway           paymentGateway
	TransactionRepo   transactions.Repository
	ActivityRepo      activity.Repository
	DeliveryRepo      webhooklog.Repository
	TransactionRunner txRunner
	Metrics           *metrics.WebhookMetrics
	Logger            *logger.Logger
}

// Service turns one gateway notification into local state: it re-fetches the
// authoritative payment, upserts the transaction, and records the attempt in
// the delivery log. It holds no state of its own.
type Service struct {
	gateway      paymentGateway
	transactions transactions.Repository
	activity     activity.Repository
	deliveries   webhooklog.Repository
	txRunner     txRunner
	metrics      *metrics.WebhookMetrics
	logger       *logger.Logger
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
	if params.DeliveryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "delivery repo required")
	}
	if params.TransactionRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &Service{
		gateway:      params.Gateway,
		transactions: params.TransactionRepo,
		activity:     params.ActivityRepo,
		deliveries:   params.DeliveryRepo,
		txRunner:     params.TransactionRunner,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}, nil
}

// Handle processes one notification and returns the acknowledgment payload.
// A non-nil error means the reconciliation failed after the failure was
// already recorded in the delivery log; the caller still acknowledges.
func (s *Service) Handle(ctx context.Context, n Notification) (any, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveDuration(n.Topic, time.Since(start))
	}()

	switch n.Topic {
	case TopicPayment:
		return s.handlePayment(ctx, n)
	case TopicMerchantOrder:
		ack := map[string]any{"status": "received", "id": n.ID}
		return s.acknowledgeOnly(ctx, n, ack)
	default:
		ack := map[string]any{"status": "unhandled", "topic": n.Topic, "id": n.ID}
		return s.acknowledgeOnly(ctx, n, ack)
	}
}

func (s *Service) handlePayment(ctx context.Context, n Notification) (any, error) {
	payment, raw, err := s.gateway.GetPayment(ctx, n.ID)
	if err != nil {
		s.recordFailure(ctx, n, err)
		return nil, err
	}

	derived := BuildTransaction(payment, raw)

	var stored *models.Transaction
	err = s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		stored, err = s.transactions.WithTx(tx).UpsertByReference(ctx, derived)
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
			Tipo:      "pagamento_processado",
			Descricao: fmt.Sprintf("Pagamento %s %s de %s %s", stored.Referencia, stored.Status, stored.Valor.String(), stored.Moeda),
			Metadados: meta,
		})
		if err != nil {
			return err
		}

		_, err = s.deliveries.WithTx(tx).Append(ctx, &models.WebhookDelivery{
			Evento:         n.Topic,
			URL:            n.URL,
			Sucesso:        true,
			Dados:          raw,
			UltimaExecucao: time.Now(),
		})
		return err
	})
	if err != nil {
		s.recordFailure(ctx, n, err)
		return nil, err
	}

	s.metrics.IncSuccess(n.Topic)
	return stored, nil
}

// acknowledgeOnly logs the notification without any transaction or activity
// side effects and hands the ack payload back.
func (s *Service) acknowledgeOnly(ctx context.Context, n Notification, ack map[string]any) (any, error) {
	dados, err := json.Marshal(ack)
	if err != nil {
		s.recordFailure(ctx, n, err)
		return nil, err
	}
	_, err = s.deliveries.Append(ctx, &models.WebhookDelivery{
		Evento:         n.Topic,
		URL:            n.URL,
		Sucesso:        true,
		Dados:          dados,
		UltimaExecucao: time.Now(),
	})
	if err != nil {
		s.recordFailure(ctx, n, err)
		return nil, err
	}

	s.metrics.IncSuccess(n.Topic)
	return ack, nil
}

// recordFailure appends a best-effort failure row to the delivery log. When
// that secondary write itself fails, the error goes to the operational log
// so monitoring can pick it up; it is never re-raised.
func (s *Service) recordFailure(ctx context.Context, n Notification, cause error) {
	s.metrics.IncFailure(n.Topic)

	dados, err := json.Marshal(map[string]any{"error": cause.Error()})
	if err == nil {
		_, err = s.deliveries.Append(ctx, &models.WebhookDelivery{
			Evento:         n.Topic,
			URL:            n.URL,
			Sucesso:        false,
			Dados:          dados,
			UltimaExecucao: time.Now(),
		})
	}
	if err != nil && s.logger != nil {
		logCtx := s.logger.WithFields(ctx, map[string]any{
			"topic":           n.Topic,
			"notification_id": n.ID,
			"cause":           cause.Error(),
		})
		s.logger.Error(logCtx, "webhook.failure_log_failed", err)
	}
}
