package controllers

import (
	"errors"
	"net/http"

	"github.com/lucasferreira/vitrine-backend/api/responses"
	"github.com/lucasferreira/vitrine-backend/api/validators"
	"github.com/lucasferreira/vitrine-backend/internal/customers"
	"github.com/lucasferreira/vitrine-backend/pkg/db"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"gorm.io/gorm"
)

type createCustomerRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone,omitempty"`
}

func CreateCustomer(repo customers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer repo unavailable"))
			return
		}

		var payload createCustomerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := repo.Create(r.Context(), &models.Customer{
			Nome:     payload.Nome,
			Email:    payload.Email,
			Telefone: payload.Telefone,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_clientes_email") {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already registered"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}

func ListCustomers(repo customers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer repo unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := repo.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers"))
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func GetCustomer(repo customers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer repo unavailable"))
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := repo.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer"))
			return
		}

		responses.WriteSuccess(w, customer)
	}
}
