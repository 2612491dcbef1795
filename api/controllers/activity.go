package controllers

import (
	"net/http"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/activity"
	"github.com/lucasferreira/vitrine-backend/internal/webhooklog"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
)

// ListActivity feeds the dashboard activity stream, newest first.
func ListActivity(repo activity.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list activity"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ListWebhookDeliveries exposes the inbound notification log, newest first.
func ListWebhookDeliveries(repo webhooklog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list deliveries"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}
