package router

import (
	"github.com/spookymotion/signup-api/internal/application"
	"github.com/spookymotion/signup-api/internal/container"
	pginfra "github.com/spookymotion/signup-api/internal/infrastructure/postgres"
	handlers "github.com/spookymotion/signup-api/internal/interface/http"
	usermodule "github.com/spookymotion/signup-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	registration := application.NewRegistrationService(
		repo,
		container.GetSender(),
		container.GetHasher(),
		container.GetLogger(),
		nil,
	)
	activation := application.NewActivationService(repo, nil)

	handler := handlers.NewUserHandler(registration, activation, container.GetLogger())

	r.Add(usermodule.New(handler))
}
