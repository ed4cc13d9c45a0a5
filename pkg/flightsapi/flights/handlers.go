package flights

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// Default paging used when the client omits the query parameters
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Handler handles flight registry requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new flights handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// FindAll lists the registry
// @Summary Fetch all available flights in pages of 10 elements
// @Tags flights
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Paged
// @Failure 400 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/flights [get]
func (h *Handler) FindAll(c *gin.Context) {
	page := intQuery(c, "page", DefaultPage)
	pageSize := intQuery(c, "pageSize", DefaultPageSize)

	resp := h.svc.FindAll(response.Describe(c), page, pageSize)
	response.Write(c, resp, http.StatusOK)
}

// FindByID fetches one record
// @Summary Fetch single flight by Id
// @Tags flights
// @Produce json
// @Param id path string true "Flight registry ID"
// @Success 200 {object} models.FlightRegistry
// @Failure 404 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/flights/{id} [get]
func (h *Handler) FindByID(c *gin.Context) {
	resp := h.svc.FindByID(response.Describe(c), c.Param("id"))
	response.Write(c, resp, http.StatusOK)
}

// FindByRoute filters by origin and/or destination
// @Summary Fetch flights by origin, destination or both at the same time
// @Tags flights
// @Produce json
// @Param origin query string false "Origin airport"
// @Param destination query string false "Destination airport"
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Paged
// @Failure 404 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/flights/routes [get]
func (h *Handler) FindByRoute(c *gin.Context) {
	page := intQuery(c, "page", DefaultPage)
	pageSize := intQuery(c, "pageSize", DefaultPageSize)

	resp := h.svc.FindByRoute(
		response.Describe(c),
		c.Query("origin"),
		c.Query("destination"),
		page,
		pageSize,
	)
	response.Write(c, resp, http.StatusOK)
}

// FindBySeason filters by year and/or month
// @Summary Filter flights by year, by month or both
// @Tags flights
// @Produce json
// @Param year query int false "Year, 2019 up to the current year"
// @Param month query int false "Month, 1-12"
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Paged
// @Failure 404 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/flights/year [get]
func (h *Handler) FindBySeason(c *gin.Context) {
	year := intQuery(c, "year", 0)
	month := intQuery(c, "month", 0)
	page := intQuery(c, "page", DefaultPage)
	pageSize := intQuery(c, "pageSize", DefaultPageSize)

	resp := h.svc.FindBySeason(response.Describe(c), year, month, page, pageSize)
	response.Write(c, resp, http.StatusOK)
}

// FindMaxPax fetches the busiest flight on record
// @Summary Fetch flight with max amount of passengers
// @Tags flights
// @Produce json
// @Success 200 {object} response.Paged
// @Failure 500 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/flights/maxPax [get]
func (h *Handler) FindMaxPax(c *gin.Context) {
	resp := h.svc.FindMaxPax(response.Describe(c))
	response.Write(c, resp, http.StatusOK)
}

// AddRegistryRequest is the body for creating a flight record
type AddRegistryRequest struct {
	Year            int    `json:"year" binding:"required"`
	Month           int    `json:"month" binding:"required,min=1,max=12"`
	Origin          string `json:"origin" binding:"required"`
	Destination     string `json:"destination" binding:"required"`
	OriginType      string `json:"originType"`
	Passengers      int    `json:"passengers"`
	AnnualVariation string `json:"annualVariation"`
}

// AddRegistry creates a new flight record
// @Summary Add a new flight, endpoint protected by Admin key only
// @Tags flights
// @Accept json
// @Produce json
// @Param request body AddRegistryRequest true "Flight registry fields"
// @Success 201 {object} response.Paged
// @Failure 400 {object} response.Error
// @Security ApiKeyAuth
// @Router /api/v1/addRegistry [post]
func (h *Handler) AddRegistry(c *gin.Context) {
	var req AddRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.NewError(
			"Invalid flight registry body",
			http.StatusBadRequest,
			err.Error(),
			response.Describe(c),
		), http.StatusOK)
		return
	}

	flight := models.FlightRegistry{
		Year:            req.Year,
		Month:           req.Month,
		Origin:          req.Origin,
		Destination:     req.Destination,
		OriginType:      req.OriginType,
		Passengers:      req.Passengers,
		AnnualVariation: req.AnnualVariation,
	}

	resp := h.svc.AddRegistry(response.Describe(c), flight)
	response.Write(c, resp, http.StatusCreated)
}

// RegisterRoutes registers the read-only flight routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/flights", h.FindAll)
	rg.GET("/flights/routes", h.FindByRoute)
	rg.GET("/flights/year", h.FindBySeason)
	rg.GET("/flights/maxPax", h.FindMaxPax)
	rg.GET("/flights/:id", h.FindByID)
}

// RegisterAdminRoutes registers the write routes, gated separately
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/addRegistry", h.AddRegistry)
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
