package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/winniio/meetingpress/internal/infrastructure/http/middleware"
	"github.com/winniio/meetingpress/pkg/config"
	"github.com/winniio/meetingpress/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	jwtManager     *jwt.Manager
	authHandler    *Auth
	meetingHandler *Meeting
	postHandler    *Post
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, meetingHandler *Meeting, postHandler *Post) *Router {
	return &Router{
		cfg:            cfg,
		jwtManager:     jwtManager,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		postHandler:    postHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)

	// Meetings and posts require a valid access token
	authRequired := middleware.JWTAuth(rt.jwtManager, nil)
	rt.setupMeetingRoutes(v1, authRequired)
	rt.setupPostRoutes(v1, authRequired)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/login", rt.authHandler.Login)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	meetingGroup := g.Group("/meetings", authRequired)
	meetingGroup.POST("", rt.meetingHandler.List)
	meetingGroup.POST("/:id/process", rt.meetingHandler.Process)
}

// setupPostRoutes configures publishing routes
func (rt *Router) setupPostRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	postGroup := g.Group("/posts", authRequired)
	postGroup.POST("", rt.postHandler.Publish)
	postGroup.GET("", rt.postHandler.ListPublished)
	postGroup.POST("/social", rt.postHandler.ShareSocial)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
