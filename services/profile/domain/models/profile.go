package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/profile/domain"
)

// Profile is the service provider's identity printed on budget documents.
// There is at most one per tenant.
type Profile struct {
	TenantID     uuid.UUID
	BusinessName string
	PixKey       string
	PixType      PixType
	LogoURL      string
	IsPremium    bool
	UpdatedAt    time.Time
}

// NewProfile builds a profile from user-editable fields. PixType is derived
// from the key and IsPremium starts false.
func NewProfile(tenantID uuid.UUID, businessName, pixKey, logoURL string, now time.Time) (*Profile, error) {
	businessName = strings.TrimSpace(businessName)
	switch {
	case tenantID == uuid.Nil:
		return nil, fmt.Errorf("%w: tenant is required", domain.ErrInvalidProfile)
	case businessName == "":
		return nil, fmt.Errorf("%w: business name is required", domain.ErrInvalidProfile)
	}

	pixKey = strings.TrimSpace(pixKey)
	return &Profile{
		TenantID:     tenantID,
		BusinessName: businessName,
		PixKey:       pixKey,
		PixType:      DetectPixType(pixKey),
		LogoURL:      strings.TrimSpace(logoURL),
		UpdatedAt:    now.UTC(),
	}, nil
}
