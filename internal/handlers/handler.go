package handlers

import (
	"net/http"

	"softronix/internal/logger"
	"softronix/internal/service"

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

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live dashboard snapshot over WebSocket, same port
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
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		api.GET("/auth/me", h.me)

		h.registerDeviceRoutes(api)
		h.registerAlertRoutes(api)
		h.registerAutomationRoutes(api)
		h.registerIntegrationRoutes(api)
		h.registerMaintenanceRoutes(api)
		h.registerDataRoutes(api)
		h.registerSettingsRoutes(api)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.GET("", h.listDevices)
		devices.GET("/:id", h.getDevice)
		devices.POST("/:id/toggle", h.toggleDevice)
		devices.PUT("/:id/config", h.configureDevice)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
		alerts.DELETE("/:id", h.dismissAlert)
	}
}

func (h *Handler) registerAutomationRoutes(api *gin.RouterGroup) {
	automation := api.Group("/automation")
	{
		automation.GET("", h.listAutomationRules)
		automation.POST("", h.addAutomationRule)
		automation.POST("/:id/toggle", h.toggleAutomationRule)
		automation.DELETE("/:id", h.deleteAutomationRule)
	}
}

func (h *Handler) registerIntegrationRoutes(api *gin.RouterGroup) {
	integrations := api.Group("/integrations")
	{
		integrations.GET("", h.listIntegrations)
		integrations.POST("", h.addIntegration)
		integrations.POST("/:id/test", h.testIntegration)
		integrations.DELETE("/:id", h.removeIntegration)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", h.listMaintenanceTasks)
		maintenance.POST("", h.scheduleMaintenance)
		maintenance.POST("/:id/complete", h.completeMaintenance)
	}
}

func (h *Handler) registerDataRoutes(api *gin.RouterGroup) {
	data := api.Group("/data")
	{
		data.GET("/export", h.exportData)
		data.POST("/export/chart", h.exportChart)
		data.POST("/import", h.importData)
		data.POST("/clear", h.clearAllData)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.saveSettings)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
