// Package app assembles the storage, domain services and HTTP router from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"

	"protoparts/internal/domain"
	"protoparts/internal/domain/auth"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/domain/prototypeset"
	"protoparts/internal/domain/prototypespackage"
	"protoparts/internal/domain/user"
	"protoparts/internal/infrastructure/config"
	v1 "protoparts/internal/infrastructure/http/v1"
	"protoparts/internal/infrastructure/metrics"
	"protoparts/internal/infrastructure/storage/postgres"
	"protoparts/internal/infrastructure/storage/postgres/catalog_repo"
	"protoparts/internal/infrastructure/storage/postgres/migrations"
	"protoparts/pkg/logger"
	"protoparts/pkg/numerator"
)

// App holds the wired components of one process.
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Audit     *postgres.AuditService
	JWT       *auth.JWTService
	Numbers   *numerator.Service

	Users              *user.Service
	PrototypeSets      *prototypeset.Service
	Prototypes         *prototype.Service
	PrototypesPackages *prototypespackage.Service
}

// New connects to the database and builds the services. Migrations run
// first when AutoMigrate is set.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	dsn := cfg.Database.DSN()

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, dsn); err != nil {
			return nil, err
		}
		log.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, dsn,
		postgres.WithConnLimits(cfg.Database.MaxConns, cfg.Database.MinConns),
		postgres.WithConnLifetime(cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime),
		postgres.WithApplicationName(cfg.App.Name),
	)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	journal, err := postgres.NewAuditService(txm)
	if err != nil {
		pool.Close()
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Log:       log,
		Pool:      pool,
		TxManager: txm,
		Audit:     journal,
		JWT: auth.NewJWTService(auth.JWTConfig{
			Secret:         cfg.JWT.Secret,
			Issuer:         cfg.JWT.Issuer,
			AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		}),
	}
	a.buildServices()
	return a, nil
}

func (a *App) buildServices() {
	userRepo := catalog_repo.NewUserRepo(a.TxManager)
	prototypeRepo := catalog_repo.NewPrototypeRepo(a.TxManager)
	a.Numbers = numerator.NewFromContext(func(ctx context.Context) numerator.Querier {
		return a.TxManager.GetQuerier(ctx)
	})

	a.Users = user.NewService(userRepo, a.TxManager)
	a.Prototypes = prototype.NewService(prototypeRepo, userRepo, domain.LifecycleServiceConfig[*prototype.Prototype]{
		TxManager: a.TxManager,
		Journal:   a.Audit,
	})
	a.PrototypeSets = prototypeset.NewService(prototypeset.Deps{
		Repo:        catalog_repo.NewPrototypeSetRepo(a.TxManager),
		Prototypes:  prototypeRepo,
		Identifiers: prototypeset.NewNumeratorAllocator(a.Numbers),
		Users:       userRepo,
	}, domain.LifecycleServiceConfig[*prototypeset.PrototypeSet]{
		TxManager: a.TxManager,
		Journal:   a.Audit,
	})
	a.PrototypesPackages = prototypespackage.NewService(catalog_repo.NewPrototypesPackageRepo(a.TxManager), userRepo,
		domain.LifecycleServiceConfig[*prototypespackage.PrototypesPackage]{
			TxManager: a.TxManager,
			Journal:   a.Audit,
		})
}

// InstrumentMetrics registers the lifecycle counters and pool gauges.
// Call it once per process.
func (a *App) InstrumentMetrics() {
	metrics.CountTransitions(a.PrototypeSets.Hooks(), "prototype_set")
	metrics.CountTransitions(a.Prototypes.Hooks(), "prototype")
	metrics.CountTransitions(a.PrototypesPackages.Hooks(), "prototypes_package")
	metrics.RegisterPool(func() (acquired, idle, total int32) {
		s := a.Pool.Stats()
		return s.AcquiredConns, s.IdleConns, s.TotalConns
	})
}

// Handler builds the HTTP router.
func (a *App) Handler() (http.Handler, error) {
	return v1.NewRouter(v1.RouterConfig{
		Logger:         a.Log,
		JWTValidator:   a.JWT,
		Database:       a.Pool,
		AppName:        a.Config.App.Name,
		AppVersion:     a.Config.App.Version,
		TrustedProxies: a.Config.HTTP.TrustedProxies,
		Services: v1.Services{
			Users:              a.Users,
			PrototypeSets:      a.PrototypeSets,
			Prototypes:         a.Prototypes,
			PrototypesPackages: a.PrototypesPackages,
		},
	})
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, dsn string) error {
	m, err := migrations.New(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
