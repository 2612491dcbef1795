package webhooks

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/internal/reconciler"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/lucasferreira/vitrine-backend/pkg/types"
)

type ReconcilerService interface {
	Handle(ctx context.Context, n reconciler.Notification) (any, error)
}

type notificationGuard interface {
	CheckAndMark(ctx context.Context, notificationID string) (bool, error)
	Delete(ctx context.Context, notificationID string) error
}

const invalidParamsBody = `{"message":"Parâmetros inválidos"}`

// MercadoPagoWebhook receives gateway notifications. Once topic and id are
// present the response is always HTTP 200, success or not: the gateway only
// needs to know the notification landed, and a non-200 would trigger a retry
// storm against a handler that is already recording its own failures.
func MercadoPagoWebhook(svc ReconcilerService, guard notificationGuard, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "webhook service unavailable"))
			return
		}

		topic := strings.TrimSpace(r.URL.Query().Get("topic"))
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if topic == "" || id == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			if _, err := w.Write([]byte(invalidParamsBody)); err != nil {
				log.Printf(`{"level":"error","msg":"failed to write response","err":"%v"}`, err)
			}
			return
		}

		if logg != nil {
			ctx = logg.WithTopic(ctx, topic)
			ctx = logg.WithReference(ctx, id)
		}

		markKey := topic + ":" + id
		if guard != nil {
			alreadyProcessed, err := guard.CheckAndMark(ctx, markKey)
			if err != nil {
				// A dedup outage must never block the ack path.
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "webhook.dedup_unavailable")
				}
			} else if alreadyProcessed {
				responses.WriteSuccess(w, map[string]any{"status": "duplicate", "id": id})
				return
			}
		}

		result, err := svc.Handle(ctx, reconciler.Notification{
			Topic: topic,
			ID:    id,
			URL:   r.URL.RequestURI(),
		})
		if err != nil {
			if guard != nil {
				_ = guard.Delete(ctx, markKey)
			}
			writeFailureAck(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// writeFailureAck reports the failure in the envelope but still answers 200.
func writeFailureAck(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reconciliation failed")
	}

	if logg != nil {
		logg.Error(ctx, "webhook.reconciliation_failed", err)
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	msg := typed.Message()
	if msg == "" {
		msg = meta.PublicMessage
	}

	payload := types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, encodeErr)
	}
}
