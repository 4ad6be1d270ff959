package menu

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"qr-menu/internal/logger"
	"qr-menu/internal/models"
)

// Handler maps the menu operations onto REST endpoints. Every response,
// success or error, uses the {success, data, message, timestamp} envelope.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Routes builds the gin engine with all menu endpoints.
func (h *Handler) Routes() *gin.Engine {
	r := gin.New()
	r.Use(h.requestLogger(), gin.Recovery())

	api := r.Group("/api")
	api.GET("/menu", h.GetMenu)
	api.GET("/menu/:category", h.GetMenuByCategory)
	api.GET("/menu-separated", h.GetMenuSeparated)
	api.POST("/items", h.AddItem)
	api.PUT("/items/:id", h.UpdateItem)
	api.DELETE("/items/:id", h.DeleteItem)
	api.GET("/test", h.Test)

	r.GET("/health", h.Health)

	return r
}

// GetMenu handles GET /api/menu.
func (h *Handler) GetMenu(c *gin.Context) {
	items, err := h.service.ListMenu(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, models.MenuResponse{Items: items})
}

// GetMenuByCategory handles GET /api/menu/:category with a wire-case token.
func (h *Handler) GetMenuByCategory(c *gin.Context) {
	items, err := h.service.ListMenuByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, models.MenuResponse{Items: items})
}

// GetMenuSeparated handles GET /api/menu-separated.
func (h *Handler) GetMenuSeparated(c *gin.Context) {
	resp, err := h.service.ListMenuSeparated(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, resp)
}

// AddItem handles POST /api/items.
func (h *Handler) AddItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), &req, h.requestID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items/:id as a full replace.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, &req, h.requestID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/:id.
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.service.DeleteItem(c.Request.Context(), id, h.requestID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, models.DeleteItemResponse{
		Message: "Menu item deleted successfully",
		Item:    item,
	})
}

// Test handles GET /api/test, the liveness/diagnostic endpoint.
func (h *Handler) Test(c *gin.Context) {
	h.respond(c, http.StatusOK, models.TestResponse{
		Message:   "API is working!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Endpoints: []string{
			"/api/menu",
			"/api/menu/:category",
			"/api/menu-separated",
			"/api/items",
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	healthy := h.service.HealthCheck(c.Request.Context())

	status := http.StatusOK
	text := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		text = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":    text,
		"healthy":   healthy,
		"service":   "menu-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respond writes an enveloped success payload.
func (h *Handler) respond(c *gin.Context, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("response_encoding_failed", h.requestID(c), "Failed to encode response", err)
		h.respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(status, models.Envelope{
		Success:   true,
		Data:      body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError writes an enveloped failure payload.
func (h *Handler) respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// serviceError maps service errors to HTTP status codes: validation and
// unknown categories are 400, missing ids 404, anything else 500.
func (h *Handler) serviceError(c *gin.Context, err error) {
	var vErr ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, models.ErrInvalidCategory):
		h.respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		h.respondError(c, http.StatusNotFound, "Menu item not found")
	default:
		h.logger.Error("request_failed", h.requestID(c), "Unexpected service error", err)
		h.respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

// requestLogger assigns a request id and logs every completed request.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		c.Set("request_id", requestID)

		c.Next()

		h.logger.Request(requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}
