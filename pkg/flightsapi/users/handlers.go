package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// Handler exposes the public account endpoints
type Handler struct {
	svc *Service
}

// NewHandler creates a new users handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CredentialsRequest is the body for register and accountInfo
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and assigns it an API key
// @Summary Create an account and assign an API key to the user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 201 {object} response.UserAccount
// @Failure 409 {object} response.Error
// @Router /api/v1/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.NewError(
			"Invalid registration body",
			http.StatusBadRequest,
			err.Error(),
			response.Describe(c),
		), http.StatusOK)
		return
	}

	resp := h.svc.CreateUser(response.Describe(c), req.Email, req.Password)
	response.Write(c, resp, http.StatusCreated)
}

// AccountInfo validates credentials and returns the account with its key
// @Summary Retrieve account info, including the assigned API key
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 200 {object} response.UserAccount
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/v1/accountInfo [post]
func (h *Handler) AccountInfo(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.NewError(
			"Invalid account info body",
			http.StatusBadRequest,
			err.Error(),
			response.Describe(c),
		), http.StatusOK)
		return
	}

	resp := h.svc.ValidateUser(response.Describe(c), req.Email, req.Password)
	response.Write(c, resp, http.StatusOK)
}

// RegisterRoutes registers the public account routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/accountInfo", h.AccountInfo)
}
