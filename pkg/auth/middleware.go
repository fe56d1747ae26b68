// Package auth carries the caller's tenant and user identifiers through the
// request context. Identity is asserted by the gateway in front of the API;
// this package does not authenticate anything.
package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/httpx"
)

// Header names set by the gateway.
const (
	TenantHeader = "X-Tenant-ID"
	UserHeader   = "X-User-ID"
)

// RequireTenant is a chi middleware that reads the tenant from the X-Tenant-ID
// header and injects it into the request context, together with the optional
// X-User-ID. Returns 400 Bad Request if the header is missing or not a UUID.
//
// After this middleware, handlers can safely call auth.TenantIDFromCtx(r.Context()).
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(TenantHeader))
		if raw == "" {
			httpx.JSONErrorCode(w, http.StatusBadRequest, "missing_tenant", "missing "+TenantHeader+" header")
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil || tenantID == uuid.Nil {
			httpx.JSONErrorCode(w, http.StatusBadRequest, "invalid_tenant", "invalid "+TenantHeader+" header")
			return
		}

		ctx := WithTenantID(r.Context(), tenantID)
		if userID := strings.TrimSpace(r.Header.Get(UserHeader)); userID != "" {
			ctx = WithUserID(ctx, userID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
