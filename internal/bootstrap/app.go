// Package bootstrap wires configuration into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/extract"
	"screening-backend/internal/feedback"
	"screening-backend/internal/mailer"
	"screening-backend/internal/profiles"
	"screening-backend/internal/screenings"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/server"
	"screening-backend/internal/shared/storage/db"
	"screening-backend/internal/shared/storage/object"
	"screening-backend/internal/shared/storage/object/local"
	"screening-backend/internal/shared/storage/object/s3"
	"screening-backend/internal/shared/telemetry"
)

// App is the fully wired application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Build constructs every component from config: extraction backends,
// storage, repositories, services and the HTTP router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractor := extract.NewExtractor(cfg.PDFBackend, cfg.DOCXBackend)
	backends := extractor.Backends()
	telemetry.Info("extract.backends", map[string]any{
		"pdf":  backends["pdf"],
		"docx": backends["docx"],
	})

	var profileRepo profiles.Repository
	if database != nil {
		profileRepo = profiles.NewPGRepo(database)
	} else {
		telemetry.Info("profiles.repo", map[string]any{"mode": "memory"})
		profileRepo = profiles.NewMemoryRepo()
	}

	screeningSvc := screenings.NewService(extractor, screenings.NewMemoryRepo(), profileRepo, store)
	dispatcher := mailer.New(mailer.Config{
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		Server:   cfg.SMTPServer,
		Port:     cfg.SMTPPort,
	})

	router := server.NewRouter(server.RouterDeps{
		Cfg:       cfg,
		Profiles:  profiles.NewHandler(profileRepo),
		Screening: screenings.NewHandler(screeningSvc),
		Feedback:  feedback.NewHandler(screeningSvc, dispatcher),
		Backends:  backends,
	})

	return &App{Router: router, DB: database}, nil
}

// buildDB connects to Postgres when DATABASE_URL is set and runs
// migrations. Without a URL the app falls back to in-memory state.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	}
	return local.New(cfg.LocalStoreDir), nil
}
