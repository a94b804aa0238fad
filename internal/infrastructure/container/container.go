package container

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/vivahsetu/matrimony-backend/internal/config"
	httpdelivery "github.com/vivahsetu/matrimony-backend/internal/delivery/http"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/handler"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/middleware"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/cache"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/database"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/logger"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/server"
	"github.com/vivahsetu/matrimony-backend/internal/repository/postgres"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/auth"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/interest"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/notification"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/preference"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/profile"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/profileview"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/search"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(cfg.Logging.Level)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// The match cache is optional: without Redis listings are computed on
	// every request.
	var matchCache match.Cache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, match cache disabled", "error", err)
		redisClient = nil
	} else {
		matchCache = cache.NewMatchCache(redisClient)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	interestRepo := postgres.NewInterestRepository(db)
	notifRepo := postgres.NewNotificationRepository(db)
	viewRepo := postgres.NewProfileViewRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	prefUseCase := preference.NewPreferenceUseCase(prefRepo)
	searchUseCase := search.NewSearchUseCase(profileRepo, prefRepo)
	matchUseCase := match.NewMatchUseCase(profileRepo, prefRepo, matchCache, log)
	interestUseCase := interest.NewInterestUseCase(interestRepo, profileRepo, notifRepo, log)
	viewUseCase := profileview.NewProfileViewUseCase(viewRepo, profileRepo, log)
	notifUseCase := notification.NewNotificationUseCase(notifRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	prefHandler := handler.NewPreferenceHandler(prefUseCase)
	searchHandler := handler.NewSearchHandler(searchUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	interestHandler := handler.NewInterestHandler(interestUseCase)
	viewHandler := handler.NewProfileViewHandler(viewUseCase)
	notifHandler := handler.NewNotificationHandler(notifUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		prefHandler,
		searchHandler,
		matchHandler,
		interestHandler,
		viewHandler,
		notifHandler,
		authMiddleware,
	)

	ginRouter := router.Setup()

	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
