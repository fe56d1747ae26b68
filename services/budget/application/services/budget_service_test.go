package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	budgetdomain "github.com/cotadorplus/cotador/services/budget/domain"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

func newTestService(repo *memoryRepo, pub *recordingPublisher) *BudgetService {
	return NewBudgetService(repo, nil, pub, discardLogger(), events.WithDefaultSource("test-suite"))
}

func TestBudgetService_Create_PublishesEvent(t *testing.T) {
	repo := newMemoryRepo()
	pub := &recordingPublisher{}
	svc := newTestService(repo, pub)

	b, err := svc.Create(context.Background(), "tenant-1", CreateBudgetInput{
		ClientName: "João",
		Items:      []CreateBudgetItemInput{line("Instalação", 100, 1), line("Material", 50, 2)},
	}, events.Metadata{UserID: "user-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := pub.published()
	if len(got) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(got))
	}
	evt, ok := got[0].(*events.BudgetCreatedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", got[0])
	}
	msg := evt.Message()
	if msg.Payload.BudgetID != b.ID.String() || msg.TenantID != "tenant-1" {
		t.Fatalf("event does not describe the created budget: %+v", msg)
	}
	if msg.Payload.Total != 200 {
		t.Fatalf("event total: got %v", msg.Payload.Total)
	}
	if msg.Metadata.Source != "test-suite" || msg.Metadata.UserID != "user-7" {
		t.Fatalf("unexpected metadata: %+v", msg.Metadata)
	}
}

func TestBudgetService_Create_EmptyBudgetIsSavedButNotPublished(t *testing.T) {
	repo := newMemoryRepo()
	pub := &recordingPublisher{}
	svc := newTestService(repo, pub)

	b, err := svc.Create(context.Background(), "tenant-1", CreateBudgetInput{ClientName: "Maria"}, events.Metadata{})
	if err != nil {
		t.Fatalf("create must succeed once the budget is saved: %v", err)
	}
	if b.CanApprove() {
		t.Fatal("empty budget must not be approvable")
	}
	if repo.count() != 1 {
		t.Fatal("budget must be persisted")
	}
	if len(pub.published()) != 0 {
		t.Fatal("event failing the schema must not be published")
	}
}

func TestBudgetService_Create_PublisherFailureDoesNotFail(t *testing.T) {
	repo := newMemoryRepo()
	pub := &recordingPublisher{err: errors.New("bus down")}
	svc := newTestService(repo, pub)

	if _, err := svc.Create(context.Background(), "t", CreateBudgetInput{
		ClientName: "Ana",
		Items:      []CreateBudgetItemInput{line("x", 1, 1)},
	}, events.Metadata{}); err != nil {
		t.Fatalf("publisher failure must not fail the request: %v", err)
	}
	if repo.count() != 1 {
		t.Fatal("budget must stay persisted")
	}
}

func TestBudgetService_Create_ValidationErrorSkipsEverything(t *testing.T) {
	repo := newMemoryRepo()
	pub := &recordingPublisher{}
	svc := newTestService(repo, pub)

	_, err := svc.Create(context.Background(), "t", CreateBudgetInput{ClientName: ""}, events.Metadata{})
	if !errors.Is(err, budgetdomain.ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
	if repo.count() != 0 || len(pub.published()) != 0 {
		t.Fatal("nothing must be saved or published")
	}
}

func TestBudgetService_EmitCreated_NegativePriceBlocked(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestService(newMemoryRepo(), pub)

	// Built directly, bypassing the use-case checks.
	b := models.NewBudget("Cliente", []models.BudgetItem{
		models.NewBudgetItem("Desconto", decimal.NewFromInt(-5), 1),
		models.NewBudgetItem("Serviço", decimal.NewFromInt(20), 1),
	}, models.StatusDraft, time.Now().UTC())

	err := svc.EmitCreated(context.Background(), b, "tenant-1", events.Metadata{})
	if !errors.Is(err, budgetdomain.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if len(pub.published()) != 0 {
		t.Fatal("invalid event must not be published")
	}
}

func TestBudgetService_EmitCreated_NonEmittableStatus(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestService(newMemoryRepo(), pub)

	b := models.NewBudget("Cliente", []models.BudgetItem{
		models.NewBudgetItem("Serviço", decimal.NewFromInt(20), 1),
	}, models.StatusPaid, time.Now().UTC())

	if err := svc.EmitCreated(context.Background(), b, "t", events.Metadata{}); !errors.Is(err, budgetdomain.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation for status paid, got %v", err)
	}
}

func TestBudgetService_EmitCreated_NoPublisher(t *testing.T) {
	svc := NewBudgetService(newMemoryRepo(), nil, nil, discardLogger())
	b := models.NewBudget("C", []models.BudgetItem{models.NewBudgetItem("S", decimal.NewFromInt(1), 1)}, models.StatusDraft, time.Now())
	if err := svc.EmitCreated(context.Background(), b, "t", events.Metadata{}); err == nil {
		t.Fatal("expected error without a publisher")
	}
}

func TestBudgetService_GetByID(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, &recordingPublisher{})

	created, err := svc.Create(context.Background(), "t", CreateBudgetInput{
		ClientName: "Ana",
		Items:      []CreateBudgetItemInput{line("x", 10, 3)},
	}, events.Metadata{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || !got.Total.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected budget %+v", got)
	}

	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, budgetdomain.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestBudgetService_List(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, &recordingPublisher{})
	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.Create(context.Background(), "t", CreateBudgetInput{ClientName: name}, events.Metadata{}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(all))
	}
}

func TestBudgetService_UpdateStatus(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, &recordingPublisher{})
	b, err := svc.Create(context.Background(), "t", CreateBudgetInput{ClientName: "A"}, events.Metadata{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		status  string
		wantErr error
	}{
		{"valid transition", b.ID, "approved", nil},
		{"any status may follow any other", b.ID, "draft", nil},
		{"unknown status", b.ID, "archived", budgetdomain.ErrInvalidStatus},
		{"missing budget", uuid.New(), "paid", budgetdomain.ErrBudgetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateStatus(context.Background(), tt.id, tt.status)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	got, _ := repo.GetByID(context.Background(), b.ID)
	if got.Status != models.StatusDraft {
		t.Fatalf("expected final status draft, got %s", got.Status)
	}
}

func TestBudgetService_UpdateStatus_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	c := newMemoryCache()
	svc := NewBudgetService(repo, c, &recordingPublisher{}, discardLogger())

	b, err := svc.Create(ctx, "t", CreateBudgetInput{ClientName: "Ana", Items: []CreateBudgetItemInput{line("x", 10, 1)}}, events.Metadata{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.WarmCache(ctx, b.ID); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if !c.has(b.ID) {
		t.Fatal("expected the budget to be cached")
	}

	if err := svc.UpdateStatus(ctx, b.ID, "approved"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.has(b.ID) {
		t.Fatal("status change must drop the cached entry")
	}

	got, err := svc.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
}

func TestBudgetService_WarmCache_LosesToConcurrentStatusChange(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	c := newMemoryCache()
	svc := NewBudgetService(repo, c, &recordingPublisher{}, discardLogger())

	b, err := svc.Create(ctx, "t", CreateBudgetInput{ClientName: "Ana"}, events.Metadata{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The status changes after the draft was read but before it is cached.
	repo.afterGet = func() {
		repo.afterGet = nil
		if err := svc.UpdateStatus(ctx, b.ID, "approved"); err != nil {
			t.Errorf("update: %v", err)
		}
	}
	if err := svc.WarmCache(ctx, b.ID); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if c.has(b.ID) {
		t.Fatal("a draft read before the status change must not be cached")
	}

	got, err := svc.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
}

func TestBudgetService_GetByID_WarmsCache(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	c := newMemoryCache()
	svc := NewBudgetService(repo, c, &recordingPublisher{}, discardLogger())

	b, err := svc.Create(ctx, "t", CreateBudgetInput{ClientName: "Ana"}, events.Metadata{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetByID(ctx, b.ID); err != nil {
		t.Fatalf("get: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !c.has(b.ID) {
		if time.Now().After(deadline) {
			t.Fatal("cache was not warmed after a miss")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Served from the cache: a write that bypasses the service is not seen.
	if err := repo.UpdateStatus(ctx, b.ID, models.StatusPaid); err != nil {
		t.Fatalf("repo update: %v", err)
	}
	got, err := svc.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusDraft {
		t.Fatalf("expected cached draft, got %s", got.Status)
	}
}

func TestCachedRoundTrip(t *testing.T) {
	b := models.NewBudget("Ana", []models.BudgetItem{
		models.NewBudgetItem("x", decimal.RequireFromString("12.34"), 2),
	}, models.StatusApproved, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	back := FromCached(ToCached(b))
	if back.ID != b.ID || back.Status != b.Status || !back.Total.Equal(b.Total) {
		t.Fatalf("budget changed through cache conversion: %+v", back)
	}
	if len(back.Items) != 1 || back.Items[0].ID != b.Items[0].ID || !back.Items[0].UnitPrice.Equal(b.Items[0].UnitPrice) {
		t.Fatalf("items changed through cache conversion: %+v", back.Items)
	}
}
