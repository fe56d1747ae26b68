package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	appsvcs "github.com/cotadorplus/cotador/services/budget/application/services"
)

// UpdateBudgetStatusRequest is the request body for PATCH /budgets/{id}/status.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status" validate:"required" example:"approved"`
} // @name UpdateBudgetStatusRequest

// PatchBudgetStatusHandler handles PATCH /budgets/{id}/status requests.
type PatchBudgetStatusHandler struct {
	svc *appsvcs.Services
}

func NewPatchBudgetStatusHandler(svc *appsvcs.Services) *PatchBudgetStatusHandler {
	return &PatchBudgetStatusHandler{svc: svc}
}

// Execute changes the status of a budget. Any known status may follow any other.
//
//	@Summary	Update budget status
//	@Tags		budgets
//	@Accept		json
//	@Param		X-Tenant-ID	header	string						true	"Tenant id"
//	@Param		id			path	string						true	"Budget id"	format(uuid)
//	@Param		request		body	UpdateBudgetStatusRequest	true	"New status"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/budgets/{id}/status [patch]
func (h *PatchBudgetStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateBudgetStatusRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Budget.UpdateStatus(r.Context(), id, req.Status); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
