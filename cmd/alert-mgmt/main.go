package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/application/webevents"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/router"
	"github.com/diwise/alert-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const serviceName string = "alert-mgmt"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	setLogLevel(os.Getenv("LOG_LEVEL"))

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	var configFile, policiesFile, storageType string

	flag.StringVar(&configFile, "config", env.GetVariableOrDefault(logger, "CONFIG_FILE", "/opt/diwise/config/alert-mgmt.yaml"), "alert management configuration file")
	flag.StringVar(&policiesFile, "policies", env.GetVariableOrDefault(logger, "POLICIES_FILE", "/opt/diwise/config/authz.rego"), "an authorization policy file")
	flag.StringVar(&storageType, "storage", env.GetVariableOrDefault(logger, "STORAGE_TYPE", "memory"), "storage backend, one of memory, sqlite or postgres")
	flag.Parse()

	cfg, err := loadConfiguration(ctx, configFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	policies, err := os.Open(policiesFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to open opa policy file")
	}
	defer policies.Close()

	repos, err := newRepositories(ctx, storageType)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create or connect to database")
	}

	webEvents := webevents.New(logger)

	bus := events.NewBus(webEvents)
	bus.Subscribe("*", func(ctx context.Context, msg events.Message) {
		logger.Debug().Str("topic", msg.TopicName()).Msg("event published")
	})

	var messenger messaging.MsgContext

	if env.GetVariableOrDefault(logger, "RABBITMQ_HOST", "") != "" {
		messenger, err = messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init messenger")
		}
		defer messenger.Close()

		bus.Attach(events.NewTopicSink(messenger))
	} else {
		logger.Info().Msg("RABBITMQ_HOST is not set, messaging disabled")
	}

	app, r, err := createAppAndSetupRouter(ctx, logger, cfg, policies, repos, bus, webEvents, newTokenAuth(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up application")
	}

	if messenger != nil {
		application.RegisterTopicMessageHandlers(messenger, app)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Start(ctx)

	servicePort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	server := &http.Server{
		Addr:              ":" + servicePort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("port", servicePort).Msg("starting to listen for connections")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("failed to start request router")
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("shutting down ...")

	// open event streams would otherwise keep the server from shutting down
	webEvents.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server")
	}

	app.Stop()

	// drain queued events before the broker connection is closed
	bus.Close()
}

func createAppAndSetupRouter(ctx context.Context, logger zerolog.Logger, cfg *application.Config, policies io.Reader, repos application.Repositories, sink events.Sink, stream http.Handler, tokenAuth *jwtauth.JWTAuth) (application.App, *chi.Mux, error) {
	app, err := application.New(ctx, cfg, repos, sink, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	r, err := api.RegisterHandlers(ctx, router.New(serviceName, logger), policies, app, stream, tokenAuth)
	if err != nil {
		return nil, nil, err
	}

	return app, r, nil
}

// loadConfiguration reads the yaml configuration at path. A missing file
// gives the default configuration.
func loadConfiguration(ctx context.Context, path string) (*application.Config, error) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", path).Msg("configuration file not found, using defaults")
		return &application.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return application.LoadConfiguration(f)
}

func newRepositories(ctx context.Context, storageType string) (application.Repositories, error) {
	var connect database.ConnectorFunc

	switch storageType {
	case "memory":
		return application.NewInMemoryRepositories(), nil
	case "sqlite":
		connect = database.NewSQLiteFileConnector(ctx, env.GetVariableOrDefault(logging.GetFromContext(ctx), "SQLITE_FILE", "alert-mgmt.db"))
	case "postgres":
		connect = database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx))
	default:
		return application.Repositories{}, fmt.Errorf("unknown storage type %q", storageType)
	}

	db, err := connect()
	if err != nil {
		return application.Repositories{}, err
	}

	return newDatabaseRepositories(db)
}

func newDatabaseRepositories(db *gorm.DB) (application.Repositories, error) {
	var err error
	repos := application.Repositories{}

	if repos.Alerts, err = database.NewRepository[types.Alert](db, "alert"); err != nil {
		return repos, err
	}
	if repos.Rules, err = database.NewRepository[types.AlertRule](db, "rule"); err != nil {
		return repos, err
	}
	if repos.Automations, err = database.NewRepository[types.Automation](db, "automation"); err != nil {
		return repos, err
	}
	if repos.AutomationLogs, err = database.NewRepository[types.AutomationLog](db, "automation_log"); err != nil {
		return repos, err
	}

	return repos, nil
}

// newTokenAuth returns a HS256 verifier when JWT_SECRET is set.
func newTokenAuth(logger zerolog.Logger) *jwtauth.JWTAuth {
	secret := env.GetVariableOrDefault(logger, "JWT_SECRET", "")
	if secret == "" {
		logger.Warn().Msg("JWT_SECRET is not set, tokens will not be verified")
		return nil
	}

	return jwtauth.New("HS256", []byte(secret), nil)
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
