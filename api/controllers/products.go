package controllers

import (
	"errors"
	"net/http"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/products"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type createProductRequest struct {
	Nome      string  `json:"nome" validate:"required"`
	Descricao string  `json:"descricao,omitempty"`
	Preco     float64 `json:"preco" validate:"required,gt=0"`
	Moeda     string  `json:"moeda,omitempty"`
	Ativo     *bool   `json:"ativo,omitempty"`
}

type updateProductRequest struct {
	Nome      *string  `json:"nome,omitempty"`
	Descricao *string  `json:"descricao,omitempty"`
	Preco     *float64 `json:"preco,omitempty" validate:"omitempty,gt=0"`
	Moeda     *string  `json:"moeda,omitempty"`
	Ativo     *bool    `json:"ativo,omitempty"`
}

func CreateProduct(repo products.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product repo unavailable"))
			return
		}

		var payload createProductRequest
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

		product, err := repo.Create(r.Context(), &models.Product{
			Nome:      payload.Nome,
			Descricao: payload.Descricao,
			Preco:     decimal.NewFromFloat(payload.Preco),
			Moeda:     moeda,
			Ativo:     ativo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func ListProducts(repo products.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func GetProduct(repo products.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := repo.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func UpdateProduct(repo products.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updates := map[string]any{}
		if payload.Nome != nil {
			updates["nome"] = *payload.Nome
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
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product"))
			return
		}

		product, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload product"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func DeleteProduct(repo products.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}
