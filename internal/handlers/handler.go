package handlers

import (
	"typewise_alert/internal/logger"
	"typewise_alert/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.bearerMiddleware)
	{
		api.GET("/limits", h.listLimits)
		api.GET("/limits/:cooling", h.getLimits)
		api.POST("/classify", h.classify)
		// Body example: {"target":"TO_EMAIL","battery":{"cooling_type":"HI_ACTIVE_COOLING","brand":"X"},"temperature_c":50}
		api.POST("/alerts", h.checkAndAlert)
		api.GET("/alerts/ws", h.wsAlerts)
	}
}
