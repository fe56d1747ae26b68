package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/profile/domain"
)

func TestNewProfile(t *testing.T) {
	tenant := uuid.New()
	now := time.Date(2025, 3, 10, 11, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	p, err := NewProfile(tenant, "  Elétrica Silva ", " joao@example.com ", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BusinessName != "Elétrica Silva" || p.PixKey != "joao@example.com" {
		t.Fatalf("fields not trimmed: %+v", p)
	}
	if p.PixType != PixTypeEmail {
		t.Fatalf("pix type: got %q", p.PixType)
	}
	if p.IsPremium {
		t.Fatal("new profiles are not premium")
	}
	if p.UpdatedAt.Location() != time.UTC || !p.UpdatedAt.Equal(now) {
		t.Fatalf("updatedAt must be the same instant in UTC, got %v", p.UpdatedAt)
	}

	if _, err := NewProfile(tenant, " ", "", "", now); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("blank business name: expected ErrInvalidProfile, got %v", err)
	}
	if _, err := NewProfile(uuid.Nil, "X", "", "", now); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("missing tenant: expected ErrInvalidProfile, got %v", err)
	}
}
