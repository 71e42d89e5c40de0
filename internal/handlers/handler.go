package handlers

import (
	"edgenudge/internal/classifier"
	"edgenudge/internal/logger"
	"edgenudge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	info     *classifier.ModelInfo // nil when metadata failed to load
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. info may
// be nil; the model endpoint then reports a degraded document.
func NewHandler(services *service.Service, info *classifier.ModelInfo, log *logger.Logger) *Handler {
	return &Handler{services: services, info: info, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live snapshot stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		api.GET("/sensors", h.getSensors)
		api.PUT("/sensors", h.putSensors)

		api.POST("/predict", h.predict)
		api.GET("/snapshot", h.getSnapshot)

		api.GET("/presets", h.listPresets)
		api.POST("/presets/:name", h.applyPreset)

		demo := api.Group("/demo")
		{
			demo.POST("/start", h.startDemo)
			demo.POST("/stop", h.stopDemo)
			demo.GET("/status", h.demoStatus)
		}

		api.GET("/stats", h.getStats)
		api.GET("/model", h.getModelInfo)
		api.GET("/predictions", h.getPredictions)
	}
}
