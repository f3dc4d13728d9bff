package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"fileuploader/internal/config"
	"fileuploader/internal/database"
	"fileuploader/internal/database/migration"
	"fileuploader/internal/http/handler"
	"fileuploader/internal/repository"
	"fileuploader/internal/repository/memory"
	"fileuploader/internal/repository/sqlstore"
	"fileuploader/internal/service"
	"fileuploader/internal/storage"
)

// backend is the opened store plus the services built on it.
type backend struct {
	db       *sql.DB
	services handler.Services
}

// openBackend connects the configured relational store, migrates it, and
// builds the services. The memory driver needs no connection.
func openBackend(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*backend, error) {
	blobs, err := openBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.StoreMemory {
		store := memory.New()
		log.Info("store_configured", "driver", config.StoreMemory, "blob_driver", cfg.BlobDriver)
		return &backend{services: newServices(store.Cars(), store.Documents(), store.Contents(), blobs)}, nil
	}

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	repos := sqlstore.New(db)
	log.Info("store_configured", "driver", cfg.Database.Driver, "blob_driver", cfg.BlobDriver)
	return &backend{
		db:       db,
		services: newServices(repos.Cars, repos.Documents, repos.Contents, blobs),
	}, nil
}

// openDatabase opens the relational store and applies the schema.
func openDatabase(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*sql.DB, error) {
	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migration.EnsureMigrated(ctx, db, dialect, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func openBlobStore(cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.BlobDriver {
	case config.BlobDatabase, "":
		return nil, nil
	case config.BlobMemory:
		return storage.NewMemory(), nil
	case config.BlobMinIO:
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported blob driver: %s", cfg.BlobDriver)
	}
}

func newServices(cars repository.CarRepository, docs repository.DocumentRepository, contents repository.ContentRepository, blobs storage.Storage) handler.Services {
	return handler.Services{
		Cars:      service.NewCarService(cars),
		Documents: service.NewDocumentService(docs, cars, contents),
		Contents:  service.NewContentService(blobs, contents, docs),
	}
}

// pinger returns the database for health checks, or nil for the memory store.
func (b *backend) pinger() handler.Pinger {
	if b.db == nil {
		return nil
	}
	return b.db
}

func (b *backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
