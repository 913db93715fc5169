package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/ksliga/league-api/external/objectstorage"
	"github.com/ksliga/league-api/internal/config"
	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
	cacherepo "github.com/ksliga/league-api/internal/infrastructure/repository/cache"
	"github.com/ksliga/league-api/internal/infrastructure/repository/memory"
	"github.com/ksliga/league-api/internal/infrastructure/repository/postgres"
	"github.com/ksliga/league-api/internal/interfaces/httpapi"
	basecache "github.com/ksliga/league-api/internal/platform/cache"
	"github.com/ksliga/league-api/internal/platform/dburl"
	idgen "github.com/ksliga/league-api/internal/platform/id"
	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/ksliga/league-api/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const requestIDBytes = 16

type repositories struct {
	championships championship.Repository
	teams         team.Repository
	matches       match.Repository
	players       player.Repository
	goals         goal.Repository
}

// NewHTTPServer wires the store, services and router described by cfg. The
// returned cleanup releases the database pool and must be called after the
// server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler, admin, err := buildHandler(ctx, cfg, repos, logger)
	if err != nil {
		return nil, nil, errors.Join(err, cleanup())
	}

	router := httpapi.NewRouter(handler, admin, idgen.NewRandomGenerator(requestIDBytes), logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		cleanup = func() error { return nil }
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		repos = repositories{
			championships: postgres.NewChampionshipRepository(db),
			teams:         postgres.NewTeamRepository(db),
			matches:       postgres.NewMatchRepository(db),
			players:       postgres.NewPlayerRepository(db),
			goals:         postgres.NewGoalRepository(db),
		}
		cleanup = db.Close
		logger.Info("store ready", "driver", cfg.StoreDriver, "db", dburl.Redact(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
	default:
		store := memory.NewStore()
		if cfg.SeedDemoData {
			store.Seed()
		}
		repos = repositories{
			championships: store.Championships(),
			teams:         store.Teams(),
			matches:       store.Matches(),
			players:       store.Players(),
			goals:         store.Goals(),
		}
		logger.Info("store ready", "driver", config.StoreMemory, "seeded", cfg.SeedDemoData)
	}

	if cfg.CacheEnabled {
		repos = withCache(repos, basecache.NewStore(cfg.CacheTTL))
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, cleanup, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := dburl.WithApplicationName(cfg.DBURL, cfg.DBApplicationName)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dburl.Name(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func withCache(repos repositories, store *basecache.Store) repositories {
	return repositories{
		championships: cacherepo.NewChampionshipRepository(repos.championships, store),
		teams:         cacherepo.NewTeamRepository(repos.teams, store),
		matches:       cacherepo.NewMatchRepository(repos.matches, store),
		players:       cacherepo.NewPlayerRepository(repos.players, store),
		goals:         cacherepo.NewGoalRepository(repos.goals, store),
	}
}

func buildHandler(ctx context.Context, cfg config.Config, repos repositories, logger *logging.Logger) (*httpapi.Handler, *usecase.AdminAuth, error) {
	logos, err := newLogoStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	admin, err := usecase.NewAdminAuth(cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("build admin auth: %w", err)
	}

	standings := usecase.NewStandingService(repos.championships, repos.teams, repos.matches, logger)
	services := httpapi.Services{
		Championships: usecase.NewChampionshipService(repos.championships),
		Teams:         usecase.NewTeamService(repos.championships, repos.teams, logos),
		Matches:       usecase.NewMatchService(repos.championships, repos.matches),
		Players:       usecase.NewPlayerService(repos.championships, repos.players),
		Goals:         usecase.NewGoalService(repos.matches, repos.goals),
		Standings:     standings,
		Cup:           usecase.NewCupService(repos.championships, repos.teams, repos.matches),
		Overview: usecase.NewOverviewService(
			repos.championships,
			repos.teams,
			repos.matches,
			repos.players,
			repos.goals,
			standings,
			cfg.OverviewGoalWorkers,
			logger,
		),
	}

	return httpapi.NewHandler(services, logger), admin, nil
}

// newLogoStorage returns an untyped nil when uploads are disabled so the
// team service reports the dependency as unavailable.
func newLogoStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.LogoStorage, error) {
	if !cfg.LogoStorageEnabled {
		logger.Info("logo storage disabled")
		return nil, nil
	}

	storage, err := objectstorage.NewR2LogoStorage(ctx, objectstorage.R2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		Bucket:          cfg.R2Bucket,
		PublicBaseURL:   cfg.R2PublicBaseURL,
		Timeout:         cfg.LogoStorageTimeout,
		CircuitBreaker:  cfg.LogoStorageCircuit,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build logo storage: %w", err)
	}

	return storage, nil
}
