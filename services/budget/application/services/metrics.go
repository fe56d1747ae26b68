package services

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/cotadorplus/cotador/pkg/telemetry"
)

type budgetMetrics struct {
	created       metric.Int64Counter
	value         metric.Float64Histogram
	eventsFailed  metric.Int64Counter
	eventsEmitted metric.Int64Counter
}

// newBudgetMetrics creates the budget instruments under telemetry.BudgetMeter,
// where telemetry.Setup attaches the BRL buckets of budget_value. Instrument
// creation only fails on invalid names, so errors fall back to no-op
// instruments.
func newBudgetMetrics() budgetMetrics {
	m := otel.Meter(telemetry.BudgetMeter)
	created, _ := m.Int64Counter("budgets_created_total",
		metric.WithDescription("Budgets persisted by the create-budget use case"))
	value, _ := m.Float64Histogram(telemetry.BudgetValueInstrument,
		metric.WithDescription("Total of each created budget in BRL"))
	emitted, _ := m.Int64Counter("budget_events_published_total",
		metric.WithDescription("BudgetCreated events handed to the event bus"))
	failed, _ := m.Int64Counter("budget_events_failed_total",
		metric.WithDescription("BudgetCreated events rejected by the schema or the event bus"))
	return budgetMetrics{created: created, value: value, eventsEmitted: emitted, eventsFailed: failed}
}
