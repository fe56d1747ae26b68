package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

// channelBus adapts a gochannel pub/sub to the pkg/events Publisher interface.
type channelBus struct{ ps *gochannel.GoChannel }

func (b channelBus) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	return b.ps.Publish(topic, msgs...)
}

type failingBus struct{}

func (failingBus) Publish(context.Context, string, ...*message.Message) error {
	return errors.New("broker down")
}

func newEvent(t *testing.T) *events.BudgetCreatedEvent {
	t.Helper()
	b := models.NewBudget("João", []models.BudgetItem{
		models.NewBudgetItem("Pintura", decimal.NewFromInt(300), 1),
	}, models.StatusDraft, time.Now().UTC())
	return events.NewBudgetCreated(b, "tenant-9", events.Metadata{UserID: "u-1"})
}

func TestBudgetPublisher_Publish(t *testing.T) {
	ps := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer ps.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := ps.Subscribe(ctx, events.TopicBudgetCreated)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	evt := newEvent(t)
	if err := NewBudgetPublisher(channelBus{ps}).Publish(ctx, evt); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-ch:
		defer msg.Ack()
		env := evt.Envelope()
		if msg.UUID != env.EventID.String() {
			t.Errorf("message uuid: got %s, want %s", msg.UUID, env.EventID)
		}
		if got := msg.Metadata.Get(MetaEventType); got != events.EventTypeBudgetCreated {
			t.Errorf("event_type: got %q", got)
		}
		if got := msg.Metadata.Get(MetaTenantID); got != "tenant-9" {
			t.Errorf("tenant_id: got %q", got)
		}
		if got := msg.Metadata.Get(MetaEventVersion); got != events.DefaultVersion {
			t.Errorf("event_version: got %q", got)
		}

		decoded, err := events.DecodeBudgetCreated(msg.Payload)
		if err != nil {
			t.Fatalf("payload does not satisfy the schema: %v", err)
		}
		if decoded.Payload.BudgetID != evt.BudgetID().String() {
			t.Errorf("budgetId: got %s", decoded.Payload.BudgetID)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

func TestBudgetPublisher_PropagatesBusError(t *testing.T) {
	err := NewBudgetPublisher(failingBus{}).Publish(context.Background(), newEvent(t))
	if err == nil {
		t.Fatal("expected bus error to be returned")
	}
}
