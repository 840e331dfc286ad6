package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/factory-planner/internal/adapters/catalogfile"
	"github.com/andrescamacho/factory-planner/internal/adapters/logging"
	"github.com/andrescamacho/factory-planner/internal/adapters/metrics"
	"github.com/andrescamacho/factory-planner/internal/adapters/persistence"
	"github.com/andrescamacho/factory-planner/internal/application/common"
	appPlanning "github.com/andrescamacho/factory-planner/internal/application/planning"
	"github.com/andrescamacho/factory-planner/internal/application/planning/commands"
	"github.com/andrescamacho/factory-planner/internal/application/planning/queries"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/andrescamacho/factory-planner/internal/domain/shared"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/database"
)

// application holds the wired dependencies shared by every command
type application struct {
	cfg      *config.Config
	logger   *logging.ZapLogger
	db       *gorm.DB
	catalogs production.CatalogSource
	store    *persistence.GormCatalogRepository
	mediator common.Mediator
}

// newApplication loads configuration, opens the database and registers every
// command and query handler with a fresh mediator.
func newApplication() (*application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	logger, err := logging.NewZapLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	app := &application{
		cfg:    cfg,
		logger: logger,
		db:     db,
		store:  persistence.NewGormCatalogRepository(db),
	}
	app.catalogs = app.store
	if cfg.Catalog.Path != "" {
		app.catalogs = catalogfile.NewFileCatalogSource(cfg.Catalog.Path)
	}

	if err := app.registerHandlers(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *application) registerHandlers() error {
	med := common.NewMediator()
	runRepo := persistence.NewGormSolveRunRepository(a.db)

	var recorder appPlanning.SolveMetricsRecorder
	if a.cfg.Metrics.Enabled {
		metrics.InitRegistry()

		requestMetrics := metrics.NewRequestMetricsCollector()
		if err := requestMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register request metrics: %w", err)
		}
		med.Use(metrics.PrometheusMiddleware(requestMetrics))

		solverMetrics := metrics.NewSolverMetricsCollector()
		if err := solverMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register solver metrics: %w", err)
		}
		recorder = solverMetrics
	}

	solveHandler := commands.NewSolveProjectHandler(a.catalogs, runRepo, recorder, shared.NewRealClock())

	registrations := []error{
		common.RegisterHandler[*types.SolveProjectCommand](med, solveHandler),
		common.RegisterHandler[*types.AnalyzeProjectsCommand](med, commands.NewAnalyzeProjectsHandler(a.catalogs, solveHandler)),
		common.RegisterHandler[*types.FlattenRequirementsQuery](med, queries.NewFlattenRequirementsHandler(a.catalogs)),
		common.RegisterHandler[*types.PowerRequirementsQuery](med, queries.NewPowerRequirementsHandler(a.catalogs)),
		common.RegisterHandler[*types.ListProjectsQuery](med, queries.NewListProjectsHandler(a.catalogs)),
		common.RegisterHandler[*types.ListSolveRunsQuery](med, queries.NewListSolveRunsHandler(runRepo)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("failed to register handler: %w", err)
		}
	}

	a.mediator = med
	return nil
}

// context returns a context carrying the application logger
func (a *application) context(parent context.Context) context.Context {
	return common.WithLogger(parent, a.logger)
}

// Close releases the database and flushes the logger
func (a *application) Close() {
	_ = a.logger.Sync()
	_ = database.Close(a.db)
}
