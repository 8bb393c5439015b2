package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deren/greenhub/internal/app/controllers"
	appMigrations "github.com/deren/greenhub/internal/app/migrations"
	appRepos "github.com/deren/greenhub/internal/app/repositories"
	appRoutes "github.com/deren/greenhub/internal/app/routes"
	appServices "github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/config"
	"github.com/deren/greenhub/internal/db"
	appMiddleware "github.com/deren/greenhub/internal/middleware"
	pkgAuth "github.com/deren/greenhub/internal/pkg/auth"
	"github.com/deren/greenhub/internal/pkg/filestorage"
	"github.com/deren/greenhub/internal/pkg/logger"
	"github.com/deren/greenhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	PostService      appServices.PostService
	FeedbackService  appServices.FeedbackService
	ContactService   appServices.ContactService
	EventService     appServices.EventService
	VolunteerService appServices.VolunteerService
	UserService      appServices.UserService
	DashboardService appServices.DashboardService

	AuthController      *appControllers.AuthController
	PostController      *appControllers.PostController
	FeedbackController  *appControllers.FeedbackController
	ContactController   *appControllers.ContactController
	EventController     *appControllers.EventController
	VolunteerController *appControllers.VolunteerController
	AdminController     *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	Sessions       *pkgAuth.SessionService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
// seeds the default staff account.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint.
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    cfg.SessionExpiration(),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, deps.Repos.FeedbackRepository)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository, deps.Repos.ReportRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.Repos.VolunteerApplicationRepository)
	deps.VolunteerService = appServices.NewVolunteerService(
		deps.Repos.VolunteerRequestRepository,
		deps.Repos.VolunteerApplicationRepository,
		deps.Repos.EventRepository,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.PostRepository,
		deps.Repos.ContactRepository,
		deps.Repos.FeedbackRepository,
		deps.Repos.VolunteerRequestRepository,
		deps.Repos.ReportRepository,
		deps.Repos.EventRepository,
		deps.Repos.UserRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Sessions, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, deps.FeedbackService, deps.FileStorage, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.VolunteerController = appControllers.NewVolunteerController(deps.VolunteerService, deps.EventService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.DashboardService, deps.UserService, lgr)

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
		deps.PostController,
		deps.FeedbackController,
		deps.ContactController,
		deps.EventController,
		deps.VolunteerController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
