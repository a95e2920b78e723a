package handlers

import (
	"net/http"

	"todo_service/internal/logger"
	"todo_service/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
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

	// Public auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Owner-scoped endpoints behind the token gateway
	authed := router.Group("/", h.authTokenMiddleware)
	{
		authed.POST("/todos", h.createTask)
		authed.GET("/todos", h.listTasks)
		authed.PUT("/todos/:id", h.updateTask)
		authed.DELETE("/todos/:id", h.deleteTask)

		authed.GET("/activity", h.getActivity)

		// Live task feed over WebSocket — same port, same token gateway.
		authed.GET("/ws", h.wsConnect)
	}

	return router
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
