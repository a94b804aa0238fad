package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/handler"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/middleware"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/profile"
)

type Router struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	preferenceHandler  *handler.PreferenceHandler
	searchHandler      *handler.SearchHandler
	matchHandler       *handler.MatchHandler
	interestHandler    *handler.InterestHandler
	profileViewHandler *handler.ProfileViewHandler
	notifHandler       *handler.NotificationHandler
	authMiddleware     *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	preferenceHandler *handler.PreferenceHandler,
	searchHandler *handler.SearchHandler,
	matchHandler *handler.MatchHandler,
	interestHandler *handler.InterestHandler,
	profileViewHandler *handler.ProfileViewHandler,
	notifHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		preferenceHandler:  preferenceHandler,
		searchHandler:      searchHandler,
		matchHandler:       matchHandler,
		interestHandler:    interestHandler,
		profileViewHandler: profileViewHandler,
		notifHandler:       notifHandler,
		authMiddleware:     authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Search and profile detail work without a token; a valid token adds
		// compatibility scores and relaxes member-only visibility.
		optional := v1.Group("")
		optional.Use(r.authMiddleware.OptionalAuth())
		{
			optional.POST("/profiles/search", r.searchHandler.Search)
			optional.GET("/profiles/:id", r.profileHandler.GetProfile)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.POST("/profiles", r.profileHandler.CreateProfile)
			protected.GET("/profiles/me", r.profileHandler.GetMyProfile)
			protected.PUT("/profiles/me", r.profileHandler.UpdateMyProfile)

			protected.GET("/preferences/me", r.preferenceHandler.GetMyPreference)
			protected.PUT("/preferences/me", r.preferenceHandler.UpsertMyPreference)

			protected.GET("/matches", r.matchHandler.ListMatches)

			interests := protected.Group("/interests")
			{
				interests.POST("", r.interestHandler.SendInterest)
				interests.PUT("/:id", r.interestHandler.RespondToInterest)
				interests.GET("", r.interestHandler.ListInterests)
			}

			protected.POST("/profile-views", r.profileViewHandler.TrackView)
			protected.GET("/profile-views", r.profileViewHandler.ListViewers)

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notifHandler.List)
				notifications.PUT("/:id/read", r.notifHandler.MarkRead)
				notifications.PUT("/read-all", r.notifHandler.MarkAllRead)
			}
		}
	}

	return router
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("beforetoday", func(fl validator.FieldLevel) bool {
			return profile.ValidateDateOfBirth(fl.Field().String())
		})
	}
}
