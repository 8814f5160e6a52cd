package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/alumnihub/internal/app/controllers"
	appRepos "github.com/yigit/alumnihub/internal/app/repositories"
	appRoutes "github.com/yigit/alumnihub/internal/app/routes"
	appServices "github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/config"
	appMiddleware "github.com/yigit/alumnihub/internal/middleware"
	pkgAuth "github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/logger"
	"github.com/yigit/alumnihub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	UserService       appServices.UserService
	JobService        appServices.JobService
	EventService      appServices.EventService
	MessageService    appServices.MessageService
	AdminService      appServices.AdminService
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	JobController     *appControllers.JobController
	EventController   *appControllers.EventController
	MessageController *appControllers.MessageController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	Sessions          *pkgAuth.SessionStore
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

// SetupStores creates the in-memory stores and seeds the admin account.
// Restart yields an empty store reseeded with exactly one admin.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	repos := appRepos.NewRepositories()

	if err := seed.CreateDefaultAdmin(repos, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account")
		return nil, err
	}

	return repos, nil
}

// BuildDependencies initializes application services, controllers and middleware.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.Sessions = pkgAuth.NewSessionStore()

	// Initialize services
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.Sessions, lgr)
	deps.UserService = appServices.NewUserService(repos.UserRepository, lgr)
	deps.JobService = appServices.NewJobService(repos.JobRepository, repos.UserRepository, lgr)
	deps.EventService = appServices.NewEventService(repos.EventRepository, repos.UserRepository, lgr)
	deps.MessageService = appServices.NewMessageService(repos.MessageRepository, repos.UserRepository, lgr)
	deps.AdminService = appServices.NewAdminService(repos, deps.Sessions, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, repos.UserRepository)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.JobService, deps.EventService, deps.MessageService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)

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

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.JobController,
		deps.EventController,
		deps.MessageController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
