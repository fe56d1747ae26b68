package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/profile/domain/models"
)

// ProfileRepository stores one profile per tenant.
type ProfileRepository interface {
	// Get returns ErrProfileNotFound when the tenant has no profile.
	Get(ctx context.Context, tenantID uuid.UUID) (*models.Profile, error)
	// Upsert writes the editable fields. The stored premium flag is never
	// changed; the returned profile carries it.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
