package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "registroacademico/internal/app/controllers"
	appMigrations "registroacademico/internal/app/migrations"
	appRepos "registroacademico/internal/app/repositories"
	appRoutes "registroacademico/internal/app/routes"
	appServices "registroacademico/internal/app/services"
	"registroacademico/internal/config"
	"registroacademico/internal/db"
	appMiddleware "registroacademico/internal/middleware"
	"registroacademico/internal/pkg/logger"
	"registroacademico/internal/pkg/session"
	"registroacademico/internal/pkg/validation"
	"registroacademico/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	AlunoService           appServices.AlunoService
	DepartamentoService    appServices.DepartamentoService
	ProvaService           appServices.ProvaService
	NotaService            appServices.NotaService
	ConsultasService       appServices.ConsultasService
	AuthController         *appControllers.AuthController
	AlunoController        *appControllers.AlunoController
	DepartamentoController *appControllers.DepartamentoController
	ProvaController        *appControllers.ProvaController
	NotaController         *appControllers.NotaController
	ConsultasController    *appControllers.ConsultasController
	Repos                  *appRepos.Repositories
	Sessions               *session.Store
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Not fatal: the backend works, only the default login is missing.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Sessions = session.NewStore(cfg.SessionTTL())

	deps.AuthService = appServices.NewAuthService(deps.Repos.UsuarioRepository, deps.Sessions)
	deps.AlunoService = appServices.NewAlunoService(deps.Repos.AlunoRepository)
	deps.DepartamentoService = appServices.NewDepartamentoService(deps.Repos.DepartamentoRepository)
	deps.ProvaService = appServices.NewProvaService(deps.Repos.ProvaRepository)
	deps.NotaService = appServices.NewNotaService(deps.Repos.NotaRepository)
	deps.ConsultasService = appServices.NewConsultasService(deps.Repos.ConsultasRepository)

	cookieMaxAge := int(cfg.SessionTTL().Seconds())
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookieMaxAge)
	deps.AlunoController = appControllers.NewAlunoController(deps.AlunoService)
	deps.DepartamentoController = appControllers.NewDepartamentoController(deps.DepartamentoService)
	deps.ProvaController = appControllers.NewProvaController(deps.ProvaService)
	deps.NotaController = appControllers.NewNotaController(deps.NotaService)
	deps.ConsultasController = appControllers.NewConsultasController(deps.ConsultasService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.Register(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom binding rules")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AlunoController,
		deps.DepartamentoController,
		deps.ProvaController,
		deps.NotaController,
		deps.ConsultasController,
	)

	return router
}
