package flights

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(NewService(db, zerolog.Nop()))

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterAdminRoutes(api)

	return r
}

func TestFindAllEndpointDefaults(t *testing.T) {
	db := setupTestDB(t)
	seedFlights(t, db, 15)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/api/v1/flights", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var paged response.Paged
	json.Unmarshal(resp.Body.Bytes(), &paged)

	if paged.Page != 1 || paged.PageSize != 10 {
		t.Errorf("Expected default page=1 pageSize=10, got page=%d pageSize=%d", paged.Page, paged.PageSize)
	}
	if paged.Total != 15 || paged.TotalPages != 2 {
		t.Errorf("Unexpected totals: %+v", paged)
	}
}

func TestFindAllEndpointBadPage(t *testing.T) {
	db := setupTestDB(t)
	seedFlights(t, db, 5)
	router := setupTestRouter(db)

	for _, target := range []string{"/api/v1/flights?page=0", "/api/v1/flights?page=99"} {
		req, _ := http.NewRequest("GET", target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", target, resp.Code)
		}

		var errResp response.Error
		json.Unmarshal(resp.Body.Bytes(), &errResp)
		if errResp.Path != "/api/v1/flights" || errResp.Method != "GET" {
			t.Errorf("Error should carry path and method, got %+v", errResp)
		}
	}
}

func TestFindByIDEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedFlights(t, db, 3)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/api/v1/flights/"+seeded[0].ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var flight models.FlightRegistry
	json.Unmarshal(resp.Body.Bytes(), &flight)
	if flight.ID != seeded[0].ID {
		t.Errorf("Expected flight %s, got %s", seeded[0].ID, flight.ID)
	}

	req, _ = http.NewRequest("GET", "/api/v1/flights/does-not-exist", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", resp.Code)
	}
}

func TestRouteAndSeasonEndpoints(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.FlightRegistry{Year: 2020, Month: 5, Origin: "JFK", Destination: "LAX", Passengers: 180})
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/api/v1/flights/routes?origin=JFK", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200 for origin filter, got %d: %s", resp.Code, resp.Body.String())
	}

	req, _ = http.NewRequest("GET", "/api/v1/flights/routes", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 with no filters, got %d", resp.Code)
	}

	req, _ = http.NewRequest("GET", "/api/v1/flights/year?year=2020&month=5", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200 for season filter, got %d: %s", resp.Code, resp.Body.String())
	}

	req, _ = http.NewRequest("GET", "/api/v1/flights/year?year=1999&month=5", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for out-of-range year, got %d", resp.Code)
	}
}

func TestMaxPaxEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedFlights(t, db, 5)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/api/v1/flights/maxPax", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var paged response.Paged
	json.Unmarshal(resp.Body.Bytes(), &paged)
	if paged.Total != 1 {
		t.Errorf("Expected one-element envelope, got %+v", paged)
	}
}

func TestAddRegistryEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	body, _ := json.Marshal(AddRegistryRequest{
		Year: 2023, Month: 4, Origin: "JFK", Destination: "LAX",
		OriginType: "International", Passengers: 210, AnnualVariation: "1.2",
	})
	req, _ := http.NewRequest("POST", "/api/v1/addRegistry", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var count int64
	db.Model(&models.FlightRegistry{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 persisted record, got %d", count)
	}
}

func TestAddRegistryEndpointRejectsBadBody(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("POST", "/api/v1/addRegistry", bytes.NewBufferString(`{"month": 13}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid body, got %d", resp.Code)
	}
}
