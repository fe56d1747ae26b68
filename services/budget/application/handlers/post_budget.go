package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	appsvcs "github.com/cotadorplus/cotador/services/budget/application/services"
)

// CreateBudgetItemRequest is one requested line.
type CreateBudgetItemRequest struct {
	Description string          `json:"description" validate:"required" example:"Instalação"`
	Price       decimal.Decimal `json:"price"       swaggertype:"number" example:"100"`
	Qty         int             `json:"qty"         example:"1"`
} // @name CreateBudgetItemRequest

// CreateBudgetRequest is the request body for POST /budgets.
type CreateBudgetRequest struct {
	ClientName string                    `json:"clientName" validate:"required,max=255" example:"João Silva"`
	Items      []CreateBudgetItemRequest `json:"items"      validate:"dive"`
} // @name CreateBudgetRequest

// PostBudgetHandler handles POST /budgets requests.
type PostBudgetHandler struct {
	svc *appsvcs.Services
}

// NewPostBudgetHandler returns a PostBudgetHandler backed by the given services.
func NewPostBudgetHandler(svc *appsvcs.Services) *PostBudgetHandler {
	return &PostBudgetHandler{svc: svc}
}

// Execute creates a new budget and emits BudgetCreated.
//
//	@Summary		Create budget
//	@Description	Validates the lines, computes the total, persists a draft budget and publishes BudgetCreated
//	@Tags			budgets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				true	"Tenant id"
//	@Param			X-User-ID	header		string				false	"Acting user id"
//	@Param			request		body		CreateBudgetRequest	true	"Budget creation request"
//	@Success		201			{object}	BudgetResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/budgets [post]
func (h *PostBudgetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateBudgetRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.CreateBudgetInput{
		ClientName: req.ClientName,
		Items:      make([]appsvcs.CreateBudgetItemInput, len(req.Items)),
	}
	for i, it := range req.Items {
		in.Items[i] = appsvcs.CreateBudgetItemInput{
			Description: it.Description,
			Price:       it.Price,
			Qty:         it.Qty,
		}
	}

	budget, err := h.svc.Budget.Create(r.Context(), tenantID.String(), in, eventMetadata(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toBudgetResponse(budget))
}
