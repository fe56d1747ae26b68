package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/services/profile/domain/models"
	"github.com/cotadorplus/cotador/services/profile/domain/repositories"
)

// ProfileService reads and updates the tenant's provider profile.
type ProfileService struct {
	repo repositories.ProfileRepository
	log  logger.Logger
	now  func() time.Time
}

func NewProfileService(repo repositories.ProfileRepository, log logger.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log, now: time.Now}
}

// Get returns the tenant's profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, tenantID uuid.UUID) (*models.Profile, error) {
	return s.repo.Get(ctx, tenantID)
}

// Save creates or replaces the editable fields of the tenant's profile.
// The PIX key type is derived from the key.
func (s *ProfileService) Save(ctx context.Context, tenantID uuid.UUID, businessName, pixKey, logoURL string) (*models.Profile, error) {
	p, err := models.NewProfile(tenantID, businessName, pixKey, logoURL, s.now())
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "profile saved", "pix_type", string(saved.PixType))
	return saved, nil
}
