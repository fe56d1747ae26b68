package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

// BudgetItemResponse is one line of a BudgetResponse.
type BudgetItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"2b1f7a4e-8d7c-4f7e-9a55-0c9d1e3f5a61"`
	Description string    `json:"description" example:"Instalação"`
	UnitPrice   float64   `json:"unitPrice"   example:"100"`
	Quantity    int       `json:"quantity"    example:"1"`
	Subtotal    float64   `json:"subtotal"    example:"100"`
} // @name BudgetItemResponse

// BudgetResponse is the JSON representation of a budget.
type BudgetResponse struct {
	ID          uuid.UUID            `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	ClientName  string               `json:"clientName"  example:"João Silva"`
	Items       []BudgetItemResponse `json:"items"`
	Total       float64              `json:"total"       example:"200"`
	Status      string               `json:"status"      example:"draft"`
	StatusLabel string               `json:"statusLabel" example:"Rascunho"`
	CanApprove  bool                 `json:"canApprove"  example:"true"`
	CreatedAt   time.Time            `json:"createdAt"   example:"2025-03-10T14:30:00Z"`
} // @name BudgetResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"budget not found"`
	Code  string `json:"code,omitempty" example:"budget_not_found"`
} // @name ErrorResponse

func toBudgetResponse(b *models.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, len(b.Items))
	for i, it := range b.Items {
		items[i] = BudgetItemResponse{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal().InexactFloat64(),
		}
	}
	return BudgetResponse{
		ID:          b.ID,
		ClientName:  b.ClientName,
		Items:       items,
		Total:       b.Total.InexactFloat64(),
		Status:      string(b.Status),
		StatusLabel: b.Status.Label(),
		CanApprove:  b.CanApprove(),
		CreatedAt:   b.CreatedAt,
	}
}

// eventMetadata collects attribution for emitted events from the request:
// the acting user, the chi request id as correlation id and the active trace.
func eventMetadata(r *http.Request) events.Metadata {
	ctx := r.Context()
	meta := events.Metadata{
		UserID:        auth.UserIDFromCtx(ctx),
		CorrelationID: middleware.GetReqID(ctx),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		meta.TraceID = sc.TraceID().String()
	}
	return meta
}
