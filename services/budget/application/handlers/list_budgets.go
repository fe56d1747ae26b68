package handlers

import (
	"net/http"

	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	appsvcs "github.com/cotadorplus/cotador/services/budget/application/services"
)

// ListBudgetsResponse wraps the budget list.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
} // @name ListBudgetsResponse

// ListBudgetsHandler handles GET /budgets requests.
type ListBudgetsHandler struct {
	svc *appsvcs.Services
}

func NewListBudgetsHandler(svc *appsvcs.Services) *ListBudgetsHandler {
	return &ListBudgetsHandler{svc: svc}
}

// Execute lists budgets, newest first.
//
//	@Summary	List budgets
//	@Tags		budgets
//	@Produce	json
//	@Param		X-Tenant-ID	header		string	true	"Tenant id"
//	@Success	200			{object}	ListBudgetsResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/budgets [get]
func (h *ListBudgetsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.svc.Budget.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListBudgetsResponse{Budgets: make([]BudgetResponse, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = toBudgetResponse(b)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
