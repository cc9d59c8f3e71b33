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

	appControllers "github.com/okan/enrollment/internal/app/controllers"
	appMigrations "github.com/okan/enrollment/internal/app/migrations"
	appRepos "github.com/okan/enrollment/internal/app/repositories"
	appRoutes "github.com/okan/enrollment/internal/app/routes"
	appServices "github.com/okan/enrollment/internal/app/services"
	"github.com/okan/enrollment/internal/config"
	"github.com/okan/enrollment/internal/db"
	appMiddleware "github.com/okan/enrollment/internal/middleware"
	pkgAuth "github.com/okan/enrollment/internal/pkg/auth"
	"github.com/okan/enrollment/internal/pkg/logger"
	"github.com/okan/enrollment/internal/pkg/scriptrunner"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AdminMiddleware   *appMiddleware.AdminMiddleware
	StudentRepo       appRepos.IStudentRepository
	JWTService        *pkgAuth.JWTService
	ScriptRunner      *scriptrunner.Runner
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.StudentRepo = appRepos.NewStudentRepository(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.ScriptRunner = scriptrunner.NewRunner(cfg.ScriptTimeout(), lgr)

	deps.AuthService = appServices.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.StudentRepo)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AdminMiddleware = appMiddleware.NewAdminMiddleware(cfg.Admin.Username, cfg.Admin.Password)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AdminController = appControllers.NewAdminController(deps.ScriptRunner, cfg.Admin.SeedScript, cfg.Admin.TestScript, lgr)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.AuthMiddleware,
		deps.AdminMiddleware,
	)

	setupStaticUI(router, lgr)

	return router
}

// setupStaticUI serves the local UI page the root route redirects to.
func setupStaticUI(router *gin.Engine, lgr zerolog.Logger) {
	uiPath := "web"
	if _, err := os.Stat(uiPath); os.IsNotExist(err) {
		lgr.Warn().Str("path", uiPath).Msg("UI directory not found, /ui will 404")
		return
	}

	router.Static("/ui", uiPath)
	lgr.Info().Str("path", uiPath).Msg("Static file serving configured for UI directory")
}
