package controllers

import (
	"errors"
	"net/http"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/checkouts"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type createCheckoutRequest struct {
	ProductID *uint   `json:"productId,omitempty"`
	Titulo    string  `json:"titulo" validate:"required"`
	Descricao string  `json:"descricao,omitempty"`
	Preco     float64 `json:"preco" validate:"required,gt=0"`
	Moeda     string  `json:"moeda,omitempty"`
	Ativo     *bool   `json:"ativo,omitempty"`
}

type updateCheckoutRequest struct {
	Titulo    *string  `json:"titulo,omitempty"`
	Descricao *string  `json:"descricao,omitempty"`
	Preco     *float64 `json:"preco,omitempty" validate:"omitempty,gt=0"`
	Moeda     *string  `json:"moeda,omitempty"`
	Ativo     *bool    `json:"ativo,omitempty"`
}

func CreateCheckout(repo checkouts.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout repo unavailable"))
			return
		}

		var payload createCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		moeda := payload.Moeda
		if moeda == "" {
			moeda = "BRL"
		}
		ativo := true
		if payload.Ativo != nil {
			ativo = *payload.Ativo
		}

		checkout, err := repo.Create(r.Context(), &models.Checkout{
			ProductID: payload.ProductID,
			Titulo:    payload.Titulo,
			Descricao: payload.Descricao,
			Preco:     decimal.NewFromFloat(payload.Preco),
			Moeda:     moeda,
			Ativo:     ativo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create checkout"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkout)
	}
}

func ListCheckouts(repo checkouts.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list checkouts"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func GetCheckout(repo checkouts.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		checkout, err := repo.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "checkout not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout"))
			return
		}

		responses.WriteSuccess(w, checkout)
	}
}

func UpdateCheckout(repo checkouts.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updates := map[string]any{}
		if payload.Titulo != nil {
			updates["titulo"] = *payload.Titulo
		}
		if payload.Descricao != nil {
			updates["descricao"] = *payload.Descricao
		}
		if payload.Preco != nil {
			updates["preco"] = decimal.NewFromFloat(*payload.Preco)
		}
		if payload.Moeda != nil {
			updates["moeda"] = *payload.Moeda
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
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "checkout not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update checkout"))
			return
		}

		checkout, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload checkout"))
			return
		}

		responses.WriteSuccess(w, checkout)
	}
}

func DeleteCheckout(repo checkouts.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "checkout not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete checkout"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}
