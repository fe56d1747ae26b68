package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestWithTenantID_TenantIDFromCtx(t *testing.T) {
	tenantID := uuid.New()
	ctx := WithTenantID(context.Background(), tenantID)

	got, err := TenantIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tenantID {
		t.Fatalf("expected %v, got %v", tenantID, got)
	}
}

func TestTenantIDFromCtx_EmptyContext(t *testing.T) {
	_, err := TenantIDFromCtx(context.Background())
	if !errors.Is(err, ErrTenantIDNotFound) {
		t.Fatalf("expected ErrTenantIDNotFound, got %v", err)
	}
}

func TestTenantIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithTenantID(context.Background(), uuid.Nil)
	_, err := TenantIDFromCtx(ctx)
	if !errors.Is(err, ErrTenantIDNotFound) {
		t.Fatalf("expected ErrTenantIDNotFound for uuid.Nil, got %v", err)
	}
}

func TestTenantIDFromCtx_Isolation(t *testing.T) {
	tenant1 := uuid.New()
	tenant2 := uuid.New()

	got1, _ := TenantIDFromCtx(WithTenantID(context.Background(), tenant1))
	got2, _ := TenantIDFromCtx(WithTenantID(context.Background(), tenant2))

	if got1 != tenant1 {
		t.Fatalf("ctx1: expected %v, got %v", tenant1, got1)
	}
	if got2 != tenant2 {
		t.Fatalf("ctx2: expected %v, got %v", tenant2, got2)
	}
}

func TestUserIDFromCtx(t *testing.T) {
	if got := UserIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty user id, got %q", got)
	}
	ctx := WithUserID(context.Background(), "user-42")
	if got := UserIDFromCtx(ctx); got != "user-42" {
		t.Fatalf("expected user-42, got %q", got)
	}
}
