package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	httptransport "github.com/spec-kit/session-toolbar/internal/api/http"
	"github.com/spec-kit/session-toolbar/internal/api/http/handlers"
	"github.com/spec-kit/session-toolbar/internal/config"
	"github.com/spec-kit/session-toolbar/internal/events"
	"github.com/spec-kit/session-toolbar/internal/i18n"
	"github.com/spec-kit/session-toolbar/internal/observability"
	"github.com/spec-kit/session-toolbar/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	redis := persistence.NewRedis(cfg.Redis, cfg.Toolbar, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	events.RegisterObservers(dispatcher, metrics, logger)

	translator := i18n.NewTranslator(language.English, logger.Named("i18n"))

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Toolbar: handlers.NewToolbarHandler(handlers.ToolbarDependencies{
			Stores:       redis,
			Translator:   translator,
			Events:       dispatcher,
			Logger:       logger.Named("toolbar"),
			ClientCookie: cfg.Toolbar.ClientCookie,
			CookieTTL:    cfg.Toolbar.ClientTTL(),
		}),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
