package cli

import (
	billingApp "github.com/creatorhub/creatorhub/internal/billing/application"
	catalogApp "github.com/creatorhub/creatorhub/internal/catalog/application"
	entitlementsApp "github.com/creatorhub/creatorhub/internal/entitlements/application"
	featuresApp "github.com/creatorhub/creatorhub/internal/features/application"
	identityApp "github.com/creatorhub/creatorhub/internal/identity/application"
	personalizationApp "github.com/creatorhub/creatorhub/internal/personalization/application"
	"github.com/creatorhub/creatorhub/pkg/observability"
	"github.com/google/uuid"
)

// App holds the CLI application dependencies.
type App struct {
	Entitlements    *entitlementsApp.Service
	Features        *featuresApp.Registry
	Personalization *personalizationApp.Service
	Catalog         *catalogApp.Service
	Checkout        *billingApp.CheckoutService
	Sessions        *identityApp.Watcher
	Health          *observability.HealthRegistry
}

// CurrentUserID returns the signed-in user id, or nil when signed out.
func (a *App) CurrentUserID() *uuid.UUID {
	if a.Sessions == nil {
		return nil
	}
	return a.Sessions.Current()
}

var app *App

// SetApp sets the CLI application dependencies.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application dependencies.
func GetApp() *App {
	return app
}
