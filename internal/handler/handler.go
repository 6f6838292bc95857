package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragmented-narratives/internal/config"
	"fragmented-narratives/internal/service"
)

// Handler wires the HTTP routes to the services.
type Handler struct {
	authService  service.AuthService
	storyService service.StoryService
	cfg          *config.Config
}

// NewHandler creates a new Handler.
func NewHandler(authService service.AuthService, storyService service.StoryService, cfg *config.Config) *Handler {
	return &Handler{
		authService:  authService,
		storyService: storyService,
		cfg:          cfg,
	}
}

// RegisterRoutes attaches all API routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
		}

		protected := api.Group("")
		protected.Use(h.AuthMiddleware())
		{
			protected.POST("/stories", h.createStory)
			protected.GET("/stories/available", h.listAvailableStories)
			protected.GET("/stories/:id", h.getStory)
			protected.GET("/users/history", h.listHistory)
			protected.GET("/users", h.listUsers)
			protected.GET("/opening-sentence/random", h.randomOpeningSentence)
		}
	}
}
