// Package messaging adapts budget domain events onto the Watermill event bus.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/cotadorplus/cotador/pkg/events"
	domainevents "github.com/cotadorplus/cotador/services/budget/domain/events"
)

// Metadata keys set on every published message.
const (
	MetaEventID      = "event_id"
	MetaEventType    = "event_type"
	MetaEventVersion = "event_version"
	MetaTenantID     = "tenant_id"
)

// BudgetPublisher publishes budget domain events as JSON Watermill messages.
// The message UUID equals the event id so consumers can deduplicate.
type BudgetPublisher struct {
	bus pkgevents.Publisher
}

// NewBudgetPublisher returns a BudgetPublisher writing to bus.
func NewBudgetPublisher(bus pkgevents.Publisher) *BudgetPublisher {
	return &BudgetPublisher{bus: bus}
}

// Publish encodes the structured form of evt and sends it to evt.Topic().
func (p *BudgetPublisher) Publish(ctx context.Context, evt domainevents.DomainEvent) error {
	msg, err := NewMessage(evt)
	if err != nil {
		return err
	}
	return p.bus.Publish(ctx, evt.Topic(), msg)
}

// NewMessage converts evt into a Watermill message.
func NewMessage(evt domainevents.DomainEvent) (*message.Message, error) {
	payload, err := json.Marshal(evt.Structured())
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", evt.EventType(), err)
	}
	env := evt.Envelope()
	msg := message.NewMessage(env.EventID.String(), payload)
	msg.Metadata.Set(MetaEventID, env.EventID.String())
	msg.Metadata.Set(MetaEventType, env.EventType)
	msg.Metadata.Set(MetaEventVersion, env.Version)
	msg.Metadata.Set(MetaTenantID, env.TenantID)
	return msg, nil
}
