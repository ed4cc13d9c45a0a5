package apikeys

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// keysPath is the link path template for the paged key listing
const keysPath = "api-keys/registries"

// Service manages API key issuance and lookup
type Service struct {
	db *gorm.DB
}

// NewService creates an API key service on the given store handle
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create issues and persists a fresh key with the given role and defaults
func (s *Service) Create(tx *gorm.DB, role models.APIKeyRole) (*models.APIKey, error) {
	if tx == nil {
		tx = s.db
	}
	key := models.NewAPIKey(role)
	if err := tx.Create(&key).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

// FindByKey resolves a key record by its token value
func (s *Service) FindByKey(token string) (*models.APIKey, error) {
	var key models.APIKey
	if err := s.db.First(&key, "key = ?", token).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

// FindByID fetches a key record, as a bare entity or a not-found error
func (s *Service) FindByID(req response.RequestInfo, id string) response.Model {
	var key models.APIKey
	err := s.db.First(&key, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewError(
			"ApiKey not found",
			http.StatusNotFound,
			"The id of the api key provided might be wrong!",
			req,
		)
	}
	if err != nil {
		return response.NewError(
			"Unexpected persistence failure",
			http.StatusInternalServerError,
			"The key store could not complete the request",
			req,
		)
	}
	return response.Entity{Value: key}
}

// FindAll returns a page of every issued key. A page with no content is a
// not-found, the listing has no further boundary checks.
func (s *Service) FindAll(req response.RequestInfo, page, pageSize int) response.Model {
	var total int64
	if err := s.db.Model(&models.APIKey{}).Count(&total).Error; err != nil {
		return s.storeError(req)
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	var keys []models.APIKey
	if err := s.db.Offset(offset).Limit(pageSize).Find(&keys).Error; err != nil {
		return s.storeError(req)
	}

	if len(keys) == 0 {
		return response.NewError(
			"ApiKey not found",
			http.StatusNotFound,
			"No API keys found!",
			req,
		)
	}

	totalPages := response.TotalPages(total, pageSize)
	prev, next := response.PageLinks(keysPath, page, totalPages, pageSize)
	return response.Paged{
		Total:      int(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Data:       keys,
		PrevPage:   prev,
		NextPage:   next,
	}
}

// EnsureAdminKey creates an ADMIN key at startup when none exists, so a
// fresh store is administrable. Returns the token only on first creation.
func (s *Service) EnsureAdminKey() (string, error) {
	var count int64
	if err := s.db.Model(&models.APIKey{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", nil
	}

	key, err := s.Create(nil, models.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("create admin key: %w", err)
	}
	return key.Key, nil
}

func (s *Service) storeError(req response.RequestInfo) *response.Error {
	return response.NewError(
		"Unexpected persistence failure",
		http.StatusInternalServerError,
		"The key store could not complete the request",
		req,
	)
}
