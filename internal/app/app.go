package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/squad-audit/internal/config"
	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	cacherepo "github.com/riskibarqy/squad-audit/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/squad-audit/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/squad-audit/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/squad-audit/internal/interfaces/httpapi"
	"github.com/riskibarqy/squad-audit/internal/platform/cache"
	idgen "github.com/riskibarqy/squad-audit/internal/platform/id"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-listen server. The returned cleanup func releases storage
// handles and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	cleanup := func() {}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var (
		snapshotRepo squad.SnapshotRepository
		baselineRepo baseline.Repository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close database", slog.String("error", err.Error()))
			}
		}

		snapshotRepo = postgres.NewSnapshotRepository(db)
		pgBaselines := postgres.NewBaselineRepository(db)
		if err := ensureBaselines(ctx, pgBaselines); err != nil {
			cleanup()
			return nil, nil, err
		}
		baselineRepo = pgBaselines
	default:
		snapshotRepo = memory.NewSnapshotRepository()
		baselineRepo = memory.NewBaselineRepositoryWith(memory.SeedBaselines())
	}

	if store != nil {
		snapshotRepo = cacherepo.NewSnapshotRepository(snapshotRepo, store)
		baselineRepo = cacherepo.NewBaselineRepository(baselineRepo, store)
	}

	auditSvc := usecase.NewAuditService(snapshotRepo, baselineRepo, store, idgen.NewRandomGenerator())
	formationSvc := usecase.NewFormationService(auditSvc)

	if cfg.SeedDemoData {
		if err := seedDemoSnapshot(ctx, auditSvc); err != nil {
			logger.Warn("seed demo snapshot", slog.String("error", err.Error()))
		}
	}

	handler := httpapi.NewHandler(auditSvc, formationSvc, nil)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// ensureBaselines writes the built-in baseline collection on first boot so
// analysis works before any division pack has been uploaded.
func ensureBaselines(ctx context.Context, repo baseline.Repository) error {
	_, found, err := repo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("check baselines: %w", err)
	}
	if found {
		return nil
	}
	if err := repo.Save(ctx, memory.SeedBaselines()); err != nil {
		return fmt.Errorf("seed baselines: %w", err)
	}
	return nil
}

func seedDemoSnapshot(ctx context.Context, svc *usecase.AuditService) error {
	existing, err := svc.ListSnapshots(ctx, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = svc.ImportSnapshot(ctx, memory.SeedSquad())
	return err
}
