package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/database"
	profiledomain "github.com/cotadorplus/cotador/services/profile/domain"
	"github.com/cotadorplus/cotador/services/profile/domain/models"
	"github.com/cotadorplus/cotador/services/profile/infrastructure/persistence/postgres/db"
)

// ProfileRepository implements repositories.ProfileRepository against PostgreSQL.
type ProfileRepository struct {
	db *database.Database
}

func NewProfileRepository(database *database.Database) *ProfileRepository {
	return &ProfileRepository{db: database}
}

func (r *ProfileRepository) Get(ctx context.Context, tenantID uuid.UUID) (*models.Profile, error) {
	row, err := db.New(r.db.DB()).GetProfile(ctx, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return rowToProfile(row), nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	row, err := db.New(r.db.DB()).UpsertProfile(ctx, db.UpsertProfileParams{
		TenantID:     p.TenantID,
		BusinessName: p.BusinessName,
		PixKey:       p.PixKey,
		PixType:      string(p.PixType),
		LogoUrl:      p.LogoURL,
		UpdatedAt:    p.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return rowToProfile(row), nil
}

func rowToProfile(row db.Profile) *models.Profile {
	return &models.Profile{
		TenantID:     row.TenantID,
		BusinessName: row.BusinessName,
		PixKey:       row.PixKey,
		PixType:      models.PixType(row.PixType),
		LogoURL:      row.LogoUrl,
		IsPremium:    row.IsPremium,
		UpdatedAt:    row.UpdatedAt,
	}
}
