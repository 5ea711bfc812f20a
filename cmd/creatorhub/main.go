package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/creatorhub/creatorhub/adapter/cli"
	cliAccess "github.com/creatorhub/creatorhub/adapter/cli/access"
	cliCatalog "github.com/creatorhub/creatorhub/adapter/cli/catalog"
	cliCheckout "github.com/creatorhub/creatorhub/adapter/cli/checkout"
	cliFavorites "github.com/creatorhub/creatorhub/adapter/cli/favorites"
	cliFeatures "github.com/creatorhub/creatorhub/adapter/cli/features"
	cliRecent "github.com/creatorhub/creatorhub/adapter/cli/recent"
	cliReviews "github.com/creatorhub/creatorhub/adapter/cli/reviews"
	cliSession "github.com/creatorhub/creatorhub/adapter/cli/session"
	"github.com/creatorhub/creatorhub/internal/app"
	"github.com/creatorhub/creatorhub/pkg/config"
	"github.com/creatorhub/creatorhub/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// In development, allow the CLI to run without backends.
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()
		cli.SetApp(&cli.App{
			Entitlements:    container.Entitlements,
			Features:        container.Features,
			Personalization: container.Personalization,
			Catalog:         container.Catalog,
			Checkout:        container.Checkout,
			Sessions:        container.Sessions,
			Health:          container.Health,
		})
	}

	cli.AddCommand(cliAccess.Cmd)
	cli.AddCommand(cliCatalog.Cmd)
	cli.AddCommand(cliCheckout.Cmd)
	cli.AddCommand(cliFavorites.Cmd)
	cli.AddCommand(cliFeatures.Cmd)
	cli.AddCommand(cliRecent.Cmd)
	cli.AddCommand(cliReviews.Cmd)
	cli.AddCommand(cliSession.Cmd)

	cli.Execute()
}
