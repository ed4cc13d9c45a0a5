package apikeys

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// Default paging used when the client omits the query parameters
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Handler exposes key administration, secured by an ADMIN key
type Handler struct {
	svc *Service
}

// NewHandler creates a new API keys handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// FindByID fetches one key record
// @Summary Fetch api-key by ID
// @Tags api-keys
// @Produce json
// @Param id path string true "API key ID"
// @Success 200 {object} models.APIKey
// @Failure 404 {object} response.Error
// @Security ApiKeyAuth
// @Router /api-keys/{id} [get]
func (h *Handler) FindByID(c *gin.Context) {
	resp := h.svc.FindByID(response.Describe(c), c.Param("id"))
	response.Write(c, resp, http.StatusOK)
}

// FindAll lists every issued key
// @Summary Fetch all api-keys available
// @Tags api-keys
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Paged
// @Failure 404 {object} response.Error
// @Security ApiKeyAuth
// @Router /api-keys/registries [get]
func (h *Handler) FindAll(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	pageSize := intQuery(c, "pageSize", defaultPageSize)

	resp := h.svc.FindAll(response.Describe(c), page, pageSize)
	response.Write(c, resp, http.StatusOK)
}

// RegisterRoutes registers API key admin routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/registries", h.FindAll)
	rg.GET("/:id", h.FindByID)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
