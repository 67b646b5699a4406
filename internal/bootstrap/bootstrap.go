package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oralabs/ora/internal/app/controllers"
	appRepos "github.com/oralabs/ora/internal/app/repositories"
	appRoutes "github.com/oralabs/ora/internal/app/routes"
	appServices "github.com/oralabs/ora/internal/app/services"
	"github.com/oralabs/ora/internal/config"
	appMiddleware "github.com/oralabs/ora/internal/middleware"
	"github.com/oralabs/ora/internal/pkg/logger"
	"github.com/oralabs/ora/internal/pkg/suggest"
	"github.com/oralabs/ora/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ActivityService        appServices.ActivityService
	ChatService            appServices.ChatService
	NotificationService    appServices.NotificationService
	FriendService          appServices.FriendService
	ActivityController     *appControllers.ActivityController
	ChatController         *appControllers.ChatController
	NotificationController *appControllers.NotificationController
	FriendController       *appControllers.FriendController
	SessionController      *appControllers.SessionController
	Repos                  *appRepos.Repositories
	SuggestionProvider     suggest.SuggestionProvider
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

// BuildDependencies wires repositories, services and controllers for a fresh
// in-memory session and loads the seed data.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories()
	seed.Apply(context.Background(), repos, lgr)

	currentUser := seed.CurrentUser()

	// The Gemini provider only activates with an API key; otherwise the
	// deterministic static provider answers with the fixed lines. Either way
	// the collaborator is best-effort and never required for correctness.
	var provider suggest.SuggestionProvider
	if cfg.Suggestions.APIKey != "" {
		provider = suggest.NewGeminiProvider(suggest.GeminiConfig{
			APIKey:   cfg.Suggestions.APIKey,
			Endpoint: cfg.Suggestions.Endpoint,
			Model:    cfg.Suggestions.Model,
			Timeout:  cfg.SuggestionTimeout(),
		}, lgr)
		lgr.Info().Str("model", cfg.Suggestions.Model).Msg("Gemini suggestion provider configured")
	} else {
		provider = suggest.NewStaticProvider()
		lgr.Info().Msg("No suggestion API key configured, using static provider")
	}

	activityService := appServices.NewActivityService(repos.ActivityRepository, repos.UserRepository, currentUser, lgr)
	chatService := appServices.NewChatService(repos.ActivityRepository, provider, lgr)
	notificationService := appServices.NewNotificationService(repos.NotificationRepository, cfg.WelcomeDelay(), lgr)
	friendService := appServices.NewFriendService(repos.FriendRepository, repos.UserRepository, currentUser, lgr)

	return &Dependencies{
		ActivityService:        activityService,
		ChatService:            chatService,
		NotificationService:    notificationService,
		FriendService:          friendService,
		ActivityController:     appControllers.NewActivityController(activityService, provider, currentUser),
		ChatController:         appControllers.NewChatController(chatService, currentUser),
		NotificationController: appControllers.NewNotificationController(notificationService),
		FriendController:       appControllers.NewFriendController(friendService),
		SessionController:      appControllers.NewSessionController(notificationService, currentUser),
		Repos:                  repos,
		SuggestionProvider:     provider,
		Logger:                 lgr,
	}
}

// SetupRouter creates the gin engine and registers middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.ActivityController,
		deps.ChatController,
		deps.NotificationController,
		deps.FriendController,
		deps.SessionController,
	)

	return router
}
