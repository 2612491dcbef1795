package controllers

import (
	"errors"
	"net/http"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/webhooksubs"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"gorm.io/gorm"
)

type createSubscriptionRequest struct {
	Nome   string `json:"nome" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
	Evento string `json:"evento" validate:"required"`
	Ativo  *bool  `json:"ativo,omitempty"`
}

type updateSubscriptionRequest struct {
	Nome   *string `json:"nome,omitempty"`
	URL    *string `json:"url,omitempty" validate:"omitempty,url"`
	Evento *string `json:"evento,omitempty"`
	Ativo  *bool   `json:"ativo,omitempty"`
}

// CreateWebhookSubscription registers an outbound webhook for the dashboard.
func CreateWebhookSubscription(repo webhooksubs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription repo unavailable"))
			return
		}

		var payload createSubscriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ativo := true
		if payload.Ativo != nil {
			ativo = *payload.Ativo
		}

		sub, err := repo.Create(r.Context(), &models.WebhookSubscription{
			Nome:   payload.Nome,
			URL:    payload.URL,
			Evento: payload.Evento,
			Ativo:  ativo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create subscription"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sub)
	}
}

func ListWebhookSubscriptions(repo webhooksubs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subscriptions"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func UpdateWebhookSubscription(repo webhooksubs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateSubscriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updates := map[string]any{}
		if payload.Nome != nil {
			updates["nome"] = *payload.Nome
		}
		if payload.URL != nil {
			updates["url"] = *payload.URL
		}
		if payload.Evento != nil {
			updates["evento"] = *payload.Evento
		}
		if payload.Ativo != nil {
			updates["ativo"] = *payload.Ativo
		}
		if len(updates) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update"))
			return
		}

		if err := repo.Update(r.Context(), id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "subscription not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update subscription"))
			return
		}

		sub, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload subscription"))
			return
		}

		responses.WriteSuccess(w, sub)
	}
}

func DeleteWebhookSubscription(repo webhooksubs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "subscription not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete subscription"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}
