package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/services/profile/domain"
	"github.com/cotadorplus/cotador/services/profile/domain/models"
)

type memoryProfiles map[uuid.UUID]*models.Profile

func (m memoryProfiles) Get(_ context.Context, tenantID uuid.UUID) (*models.Profile, error) {
	p, ok := m[tenantID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (m memoryProfiles) Upsert(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if old, ok := m[p.TenantID]; ok {
		p.IsPremium = old.IsPremium
	}
	m[p.TenantID] = p
	return p, nil
}

func TestProfileService(t *testing.T) {
	repo := memoryProfiles{}
	svc := NewProfileService(repo, logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard))
	fixed := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	ctx := context.Background()
	tenant := uuid.New()

	if _, err := svc.Get(ctx, tenant); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	p, err := svc.Save(ctx, tenant, "Elétrica Silva", "11.222.333/0001-81", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.PixType != models.PixTypeCNPJ || !p.UpdatedAt.Equal(fixed) {
		t.Fatalf("unexpected profile: %+v", p)
	}

	repo[tenant].IsPremium = true
	p, err = svc.Save(ctx, tenant, "Elétrica Silva ME", "", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !p.IsPremium || p.PixType != models.PixTypeUnknown {
		t.Fatalf("premium flag must survive updates: %+v", p)
	}

	if _, err := svc.Save(ctx, tenant, "", "", ""); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}
