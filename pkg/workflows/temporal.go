package workflows

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"

	"github.com/cotadorplus/cotador/pkg/logger"
)

// TemporalClient wraps the Temporal SDK client with project-level configuration.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	log       logger.Logger
}

// NewTemporalClient initializes a Temporal client with OTel tracing integration.
// Call Close() when the application shuts down.
func NewTemporalClient(ctx context.Context, hostPort, namespace string, log logger.Logger) (*TemporalClient, error) {
	otelInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.Dial(client.Options{
		HostPort:     hostPort,
		Namespace:    namespace,
		Logger:       newTemporalLogger(log),
		Interceptors: []interceptor.ClientInterceptor{otelInterceptor},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", hostPort, err)
	}

	log.Info("temporal client connected", "host_port", hostPort, "namespace", namespace)

	return &TemporalClient{
		Client:    c,
		Namespace: namespace,
		log:       log,
	}, nil
}

// RenderBudgetDocumentWorkflow is the workflow type registered by the document
// service that renders a budget PDF. Only the name crosses the process boundary.
const RenderBudgetDocumentWorkflow = "RenderBudgetDocument"

// StartBudgetDocument starts the document rendering workflow for a budget on
// taskQueue. The workflow id is derived from the budget id so redelivered
// events attach to the run already in progress instead of starting another.
func (tc *TemporalClient) StartBudgetDocument(ctx context.Context, taskQueue, budgetID string, input any) (string, error) {
	run, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        DocumentWorkflowID(budgetID),
		TaskQueue: taskQueue,
	}, RenderBudgetDocumentWorkflow, input)
	if err != nil {
		return "", fmt.Errorf("start %s for budget %s: %w", RenderBudgetDocumentWorkflow, budgetID, err)
	}
	tc.log.InfoContext(ctx, "budget document workflow started",
		"budget_id", budgetID, "workflow_id", run.GetID(), "run_id", run.GetRunID())
	return run.GetRunID(), nil
}

// DocumentWorkflowID returns the workflow id used for a budget's document run.
func DocumentWorkflowID(budgetID string) string {
	return "budget-document-" + budgetID
}

// Close gracefully shuts down the Temporal client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger interface.
type temporalLogger struct {
	log logger.Logger
}

func newTemporalLogger(log logger.Logger) temporallog.Logger {
	return &temporalLogger{log: log}
}

func (l *temporalLogger) Debug(msg string, keyvals ...interface{}) {
	l.log.Debug(msg, keyvals...)
}

func (l *temporalLogger) Info(msg string, keyvals ...interface{}) {
	l.log.Info(msg, keyvals...)
}

func (l *temporalLogger) Warn(msg string, keyvals ...interface{}) {
	l.log.Warn(msg, keyvals...)
}

func (l *temporalLogger) Error(msg string, keyvals ...interface{}) {
	l.log.Error(msg, keyvals...)
}
