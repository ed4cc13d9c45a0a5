package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// HeaderAPIKey is the authentication header carrying the opaque token
const HeaderAPIKey = "X-API-KEY"

const (
	// ContextKeyRole is the key for the principal's role in gin context
	ContextKeyRole = "api_key_role"
	// ContextKeyID is the key for the authenticated key's ID in gin context
	ContextKeyID = "api_key_id"
)

// publicPaths are served without any authentication
var publicPaths = []string{
	"/health",
	"/swagger",
	"/api/v1/register",
	"/api/v1/accountInfo",
}

// APIKeyAuth validates the X-API-KEY header against stored keys. The guard
// chain runs in order and the first matching rule wins: public path, missing
// header, unknown key, disabled key, expired key, accept. On accept the
// key's role is attached to the request context as the principal.
func APIKeyAuth(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range publicPaths {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		token := c.GetHeader(HeaderAPIKey)
		if token == "" {
			abortWith(c, http.StatusBadRequest, "Missing Api key field!",
				"Provide your key in the X-API-KEY header")
			return
		}

		var key models.APIKey
		err := db.First(&key, "key = ?", token).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWith(c, http.StatusNotFound, "API key not found!",
				"The key you provided does not exist")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("api key lookup failed")
			abortWith(c, http.StatusInternalServerError, "Unexpected persistence failure",
				"The key store could not complete the request")
			return
		}

		if !key.Enabled {
			abortWith(c, http.StatusUnauthorized, "Disabled API key",
				"The key you provided has been disabled")
			return
		}

		if key.Expired() {
			abortWith(c, http.StatusBadRequest, "API key expired",
				"The key you provided is past its expiry date")
			return
		}

		c.Set(ContextKeyRole, key.Role)
		c.Set(ContextKeyID, key.ID)
		c.Next()
	}
}

// RequireAdmin gates a route group to ADMIN keys. It must run after
// APIKeyAuth so the principal is present.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			abortWith(c, http.StatusUnauthorized, "Authentication required",
				"No API key principal on this request")
			return
		}

		if role != models.RoleAdmin {
			abortWith(c, http.StatusForbidden, "Admin access required",
				"This operation needs an ADMIN key")
			return
		}

		c.Next()
	}
}

// GetRole returns the authenticated key's role from the gin context
func GetRole(c *gin.Context) (models.APIKeyRole, bool) {
	role, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}
	return role.(models.APIKeyRole), true
}

// GetKeyID returns the authenticated key's ID from the gin context
func GetKeyID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextKeyID)
	if !exists {
		return "", false
	}
	return id.(string), true
}

func abortWith(c *gin.Context, code int, message, detail string) {
	c.AbortWithStatusJSON(code, response.NewError(message, code, detail, response.Describe(c)))
}
