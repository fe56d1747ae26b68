package events

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

const (
	// EventTypeBudgetCreated is the eventType of BudgetCreatedEvent.
	EventTypeBudgetCreated = "BudgetCreated"

	// TopicBudgetCreated is the Watermill topic published when a Budget is created.
	TopicBudgetCreated = "budget.created"
)

// BudgetCreatedEvent records that a budget was persisted. It holds a snapshot
// of the budget taken at construction time.
type BudgetCreatedEvent struct {
	envelope   Envelope
	budgetID   uuid.UUID
	clientName string
	total      decimal.Decimal
	status     models.Status
	items      []models.BudgetItem
	createdAt  time.Time
}

var _ DomainEvent = (*BudgetCreatedEvent)(nil)

// NewBudgetCreated builds a BudgetCreatedEvent for budget. A fresh event id and
// occurrence time are generated; meta.Source defaults to DefaultSource.
// No validation happens here: call ValidateBudgetCreated on the structured form
// before publishing.
func NewBudgetCreated(budget *models.Budget, tenantID string, meta Metadata, opts ...Option) *BudgetCreatedEvent {
	return &BudgetCreatedEvent{
		envelope:   newEnvelope(EventTypeBudgetCreated, budget.ID, tenantID, meta, opts),
		budgetID:   budget.ID,
		clientName: budget.ClientName,
		total:      budget.Total,
		status:     budget.Status,
		items:      slices.Clone(budget.Items),
		createdAt:  budget.CreatedAt,
	}
}

func (e *BudgetCreatedEvent) EventType() string  { return EventTypeBudgetCreated }
func (e *BudgetCreatedEvent) Topic() string      { return TopicBudgetCreated }
func (e *BudgetCreatedEvent) Envelope() Envelope { return e.envelope }
func (e *BudgetCreatedEvent) Structured() any    { return e.Message() }

// BudgetID returns the id of the budget the event describes.
func (e *BudgetCreatedEvent) BudgetID() uuid.UUID { return e.budgetID }

// Items returns a copy of the snapshotted budget lines.
func (e *BudgetCreatedEvent) Items() []models.BudgetItem { return slices.Clone(e.items) }

// Message returns the wire form of the event.
func (e *BudgetCreatedEvent) Message() BudgetCreatedMessage {
	items := make([]BudgetCreatedItem, len(e.items))
	for i, it := range e.items {
		items[i] = BudgetCreatedItem{
			ID:          it.ID.String(),
			Description: it.Description,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Quantity:    it.Quantity,
		}
	}

	env := e.envelope
	return BudgetCreatedMessage{
		EventID:     env.EventID.String(),
		EventType:   env.EventType,
		AggregateID: env.AggregateID.String(),
		TenantID:    env.TenantID,
		OccurredAt:  formatTime(env.OccurredAt),
		Version:     env.Version,
		Payload: BudgetCreatedPayload{
			BudgetID:   e.budgetID.String(),
			ClientName: e.clientName,
			Total:      e.total.InexactFloat64(),
			Status:     string(e.status),
			Items:      items,
			CreatedAt:  formatTime(e.createdAt),
		},
		Metadata: env.Metadata.wire(),
	}
}

// BudgetCreatedMessage is the JSON contract of a BudgetCreated event. Field
// names are consumed by downstream services and must not change without a
// version bump.
type BudgetCreatedMessage struct {
	EventID     string               `json:"eventId"     validate:"required,uuid"`
	EventType   string               `json:"eventType"   validate:"required,eq=BudgetCreated"`
	AggregateID string               `json:"aggregateId" validate:"required,uuid"`
	TenantID    string               `json:"tenantId"    validate:"required"`
	OccurredAt  string               `json:"occurredAt"  validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Version     string               `json:"version"`
	Payload     BudgetCreatedPayload `json:"payload"`
	Metadata    MessageMetadata      `json:"metadata"`
}

// BudgetCreatedPayload is the budget snapshot carried by the event.
type BudgetCreatedPayload struct {
	BudgetID   string              `json:"budgetId"   validate:"required,uuid"`
	ClientName string              `json:"clientName" validate:"required"`
	Total      float64             `json:"total"      validate:"gte=0"`
	Status     string              `json:"status"     validate:"required,oneof=draft approved rejected"`
	Items      []BudgetCreatedItem `json:"items"      validate:"required,min=1,dive"`
	CreatedAt  string              `json:"createdAt"  validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// BudgetCreatedItem is one budget line in the event payload.
type BudgetCreatedItem struct {
	ID          string  `json:"id"          validate:"required,uuid"`
	Description string  `json:"description" validate:"required"`
	UnitPrice   float64 `json:"unitPrice"   validate:"gt=0"`
	Quantity    int     `json:"quantity"    validate:"gt=0"`
}
