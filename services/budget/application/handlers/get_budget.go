package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	appsvcs "github.com/cotadorplus/cotador/services/budget/application/services"
)

// GetBudgetHandler handles GET /budgets/{id} requests.
type GetBudgetHandler struct {
	svc *appsvcs.Services
}

func NewGetBudgetHandler(svc *appsvcs.Services) *GetBudgetHandler {
	return &GetBudgetHandler{svc: svc}
}

// Execute returns a single budget.
//
//	@Summary	Get budget
//	@Tags		budgets
//	@Produce	json
//	@Param		X-Tenant-ID	header		string	true	"Tenant id"
//	@Param		id			path		string	true	"Budget id"	format(uuid)
//	@Success	200			{object}	BudgetResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/budgets/{id} [get]
func (h *GetBudgetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	budget, err := h.svc.Budget.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBudgetResponse(budget))
}
