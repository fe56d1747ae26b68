package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const (
	tenantIDKey contextKey = "tenant_id"
	userIDKey   contextKey = "user_id"
)

// ErrTenantIDNotFound is returned when no tenant exists in the request context.
// Handlers should return 400 when this error occurs.
var ErrTenantIDNotFound = errors.New("tenant_id not found in context")

// TenantIDFromCtx extracts the caller's tenant (owning organization) from the request context.
// Returns uuid.Nil and ErrTenantIDNotFound if no tenant is set.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		return uuid.Nil, ErrTenantIDNotFound
	}
	return tenantID, nil
}

// WithTenantID returns a new context with the given tenant attached.
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// UserIDFromCtx returns the acting user id, or "" when the caller did not send one.
// It only feeds event metadata; nothing is authorized on it.
func UserIDFromCtx(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// WithUserID returns a new context with the acting user id attached.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
