package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/payments"
	"github.com/lucasferreira/vitrine-backend/internal/transactions"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"gorm.io/gorm"
)

// CreatePayment charges the gateway directly and mirrors the result locally.
func CreatePayment(svc *payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload mercadopago.PaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payment, err := svc.CreatePayment(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, payment)
	}
}

// CreatePreference opens a redirect-checkout session at the gateway.
func CreatePreference(svc *payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload mercadopago.PreferenceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		preference, err := svc.CreatePreference(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, preference)
	}
}

// GetPaymentByReference looks up the locally reconciled transaction for a
// gateway payment id.
func GetPaymentByReference(repo transactions.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction repo unavailable"))
			return
		}

		referencia := chi.URLParam(r, "id")
		if referencia == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "payment id required"))
			return
		}

		tx, err := repo.FindByReference(r.Context(), referencia)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment"))
			return
		}

		responses.WriteSuccess(w, tx)
	}
}
