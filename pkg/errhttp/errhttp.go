// Package errhttp maps domain sentinel errors to HTTP statuses and error codes.
// Add a case to mapError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/cotadorplus/cotador/pkg/httpx"
	budgetdomain "github.com/cotadorplus/cotador/services/budget/domain"
	catalogdomain "github.com/cotadorplus/cotador/services/catalog/domain"
	profiledomain "github.com/cotadorplus/cotador/services/profile/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors controls whether 5xx responses carry the error text.
// cmd/api enables it in production.
func HideInternalErrors(hide bool) {
	hideInternal.Store(hide)
}

// WriteError maps err to an HTTP status and error code and writes the JSON
// error body. Uses errors.Is() so wrapped sentinel errors are matched.
// Unrecognized errors are 500 "internal".
func WriteError(w http.ResponseWriter, err error) {
	status, code := mapError(err)
	httpx.JSONErrorCode(w, status, code, httpx.SafeError(err, status, hideInternal.Load()))
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, budgetdomain.ErrBudgetNotFound):
		return http.StatusNotFound, "budget_not_found"
	case errors.Is(err, profiledomain.ErrProfileNotFound):
		return http.StatusNotFound, "profile_not_found"
	case errors.Is(err, budgetdomain.ErrBudgetAlreadyExists):
		return http.StatusConflict, "budget_exists"
	case errors.Is(err, catalogdomain.ErrClientExists):
		return http.StatusConflict, "client_exists"
	case errors.Is(err, catalogdomain.ErrProductExists):
		return http.StatusConflict, "product_exists"
	case errors.Is(err, budgetdomain.ErrInvalidBudget):
		return http.StatusUnprocessableEntity, "invalid_budget"
	case errors.Is(err, budgetdomain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "invalid_status"
	case errors.Is(err, catalogdomain.ErrInvalidClient):
		return http.StatusUnprocessableEntity, "invalid_client"
	case errors.Is(err, catalogdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity, "invalid_product"
	case errors.Is(err, profiledomain.ErrInvalidProfile):
		return http.StatusUnprocessableEntity, "invalid_profile"
	default:
		return http.StatusInternalServerError, httpx.StatusCode(http.StatusInternalServerError)
	}
}
