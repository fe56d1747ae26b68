package services

import (
	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/services/profile/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the profile context.
type Services struct {
	Profile *ProfileService
}

func New(a *app.Application) *Services {
	return &Services{
		Profile: NewProfileService(postgres.NewProfileRepository(a.Db), a.Logger),
	}
}
