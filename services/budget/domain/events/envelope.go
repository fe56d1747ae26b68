// Package events defines the domain events published by the budget context.
//
// Every event shares an Envelope (identity, tenant, timing, schema version and
// metadata) and carries its own payload shape. Events are immutable once built:
// fields are unexported and accessors return copies.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultVersion is the schema version stamped on events when none is configured.
	DefaultVersion = "1.0"

	// DefaultSource identifies this service in event metadata when the caller
	// does not name one.
	DefaultSource = "api-core"

	// wireTimeLayout is ISO-8601 in UTC with millisecond precision.
	wireTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// DomainEvent is implemented by every event kind this context publishes.
type DomainEvent interface {
	EventType() string
	Topic() string
	Envelope() Envelope
	// Structured returns the wire form of the event, ready for JSON encoding.
	Structured() any
}

// Metadata carries optional tracing and attribution data for an event.
// Empty optional fields are omitted from the wire form.
type Metadata struct {
	UserID        string
	CorrelationID string
	Source        string
	TraceID       string
}

// Envelope holds the fields shared by every domain event.
type Envelope struct {
	EventID     uuid.UUID
	EventType   string
	AggregateID uuid.UUID
	TenantID    string
	OccurredAt  time.Time
	Version     string
	Metadata    Metadata
}

// Option customizes event construction.
type Option func(*buildOptions)

type buildOptions struct {
	version string
	source  string
	now     func() time.Time
}

// WithVersion overrides the schema version stamped on the event.
func WithVersion(v string) Option {
	return func(o *buildOptions) {
		if v != "" {
			o.version = v
		}
	}
}

// WithDefaultSource sets the source used when the supplied metadata has none.
func WithDefaultSource(s string) Option {
	return func(o *buildOptions) {
		if s != "" {
			o.source = s
		}
	}
}

// WithClock sets the clock used for OccurredAt.
func WithClock(now func() time.Time) Option {
	return func(o *buildOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// newEnvelope stamps a fresh event id and occurrence time. Both are fixed for
// the lifetime of the event.
func newEnvelope(eventType string, aggregateID uuid.UUID, tenantID string, meta Metadata, opts []Option) Envelope {
	o := buildOptions{
		version: DefaultVersion,
		source:  DefaultSource,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if meta.Source == "" {
		meta.Source = o.source
	}
	return Envelope{
		EventID:     uuid.New(),
		EventType:   eventType,
		AggregateID: aggregateID,
		TenantID:    tenantID,
		OccurredAt:  o.now().UTC(),
		Version:     o.version,
		Metadata:    meta,
	}
}

// MessageMetadata is the wire form of Metadata.
type MessageMetadata struct {
	UserID        string `json:"userId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
	Source        string `json:"source" validate:"required"`
	TraceID       string `json:"traceId,omitempty"`
}

func (m Metadata) wire() MessageMetadata {
	return MessageMetadata{
		UserID:        m.UserID,
		CorrelationID: m.CorrelationID,
		Source:        m.Source,
		TraceID:       m.TraceID,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}
