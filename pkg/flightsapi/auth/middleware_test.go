package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// setupTestRouter mirrors the server wiring: the key filter guards the api
// group, admin routes add RequireAdmin on top.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }

	api := r.Group("/api/v1")
	api.Use(APIKeyAuth(db, zerolog.Nop()))
	api.GET("/flights", ok)
	api.POST("/register", ok)
	api.POST("/addRegistry", RequireAdmin(), ok)

	return r
}

func createTestKey(t *testing.T, db *gorm.DB, role models.APIKeyRole, mutate func(*models.APIKey)) models.APIKey {
	key := models.NewAPIKey(role)
	if mutate != nil {
		mutate(&key)
	}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("Failed to create test key: %v", err)
	}
	return key
}

func doRequest(router *gin.Engine, method, target, key string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, target, nil)
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestPublicPathSkipsAuthentication(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := doRequest(router, "POST", "/api/v1/register", "")
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200 for public path with no key, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMissingKeyIsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := doRequest(router, "GET", "/api/v1/flights", "")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing key, got %d", resp.Code)
	}
}

func TestUnknownKeyIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := doRequest(router, "GET", "/api/v1/flights", "not-a-real-key")
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown key, got %d", resp.Code)
	}
}

func TestDisabledKeyIsUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleClient, func(k *models.APIKey) {
		k.Enabled = false
	})

	resp := doRequest(router, "GET", "/api/v1/flights", key.Key)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for disabled key, got %d", resp.Code)
	}
}

func TestExpiredKeyIsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleClient, func(k *models.APIKey) {
		k.ExpiresAt = time.Now().Add(-time.Hour)
	})

	resp := doRequest(router, "GET", "/api/v1/flights", key.Key)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for expired key, got %d", resp.Code)
	}
}

func TestDisabledWinsOverExpired(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleClient, func(k *models.APIKey) {
		k.Enabled = false
		k.ExpiresAt = time.Now().Add(-time.Hour)
	})

	// Guard chain order: the enabled check runs before the expiry check
	resp := doRequest(router, "GET", "/api/v1/flights", key.Key)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a key both disabled and expired, got %d", resp.Code)
	}
}

func TestValidClientKeyPasses(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleClient, nil)

	resp := doRequest(router, "GET", "/api/v1/flights", key.Key)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200 for valid key, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestClientKeyDeniedOnAdminRoute(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleClient, nil)

	resp := doRequest(router, "POST", "/api/v1/addRegistry", key.Key)
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for CLIENT key on admin route, got %d", resp.Code)
	}
}

func TestAdminKeyAllowedOnAdminRoute(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	key := createTestKey(t, db, models.RoleAdmin, nil)

	resp := doRequest(router, "POST", "/api/v1/addRegistry", key.Key)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200 for ADMIN key on admin route, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRequireAdminWithoutPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/guarded", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a principal, got %d", resp.Code)
	}
}

func TestPrincipalRoleAttached(t *testing.T) {
	db := setupTestDB(t)
	key := createTestKey(t, db, models.RoleAdmin, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(db, zerolog.Nop()))
	r.GET("/whoami", func(c *gin.Context) {
		role, _ := GetRole(c)
		keyID, _ := GetKeyID(c)
		c.JSON(http.StatusOK, gin.H{"role": role, "keyId": keyID})
	})

	resp := doRequest(r, "GET", "/whoami", key.Key)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, string(models.RoleAdmin)) || !strings.Contains(body, key.ID) {
		t.Errorf("Expected role and key id in %s", body)
	}
}
