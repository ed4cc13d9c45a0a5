package users

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/apikeys"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/auth"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// Service handles account registration and credential validation
type Service struct {
	db   *gorm.DB
	keys *apikeys.Service
	log  zerolog.Logger
}

// NewService creates a user account service
func NewService(db *gorm.DB, keys *apikeys.Service, log zerolog.Logger) *Service {
	return &Service{db: db, keys: keys, log: log}
}

// CreateUser registers an account and issues it a CLIENT key. The user and
// key writes run in one transaction so a failure cannot leave an account
// without a key.
func (s *Service) CreateUser(req response.RequestInfo, email, password string) response.Model {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return s.storeError(req)
	}
	if count > 0 {
		return response.NewError(
			"User already Exists",
			http.StatusConflict,
			"You already have an account try to login instead!",
			req,
		)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return response.NewError(
			"Error while creating your account",
			http.StatusInternalServerError,
			"We had some trouble creating your account",
			req,
		)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		key, err := s.keys.Create(tx, models.RoleClient)
		if err != nil {
			return err
		}

		user.KeyID = &key.ID
		user.Key = key
		return tx.Model(&models.User{}).Where("id = ?", user.ID).Update("key_id", key.ID).Error
	})
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("account creation failed")
		return response.NewError(
			"Error while creating your account",
			http.StatusInternalServerError,
			"We had some trouble creating your account",
			req,
		)
	}

	s.log.Info().Str("email", email).Msg("account created")
	return response.UserAccount{
		Message: "Account created Succesfully",
		User:    user,
	}
}

// ValidateUser checks credentials and returns the account with its key. An
// unknown email and a wrong password are deliberately distinct outcomes.
func (s *Service) ValidateUser(req response.RequestInfo, email, password string) response.Model {
	var user models.User
	err := s.db.Preload("Key").First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewError(
			"User not found",
			http.StatusNotFound,
			fmt.Sprintf("User with email: %s not found!", email),
			req,
		)
	}
	if err != nil {
		return s.storeError(req)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return response.NewError(
			"Wrong Password!",
			http.StatusUnauthorized,
			"The password you are using is not correct!",
			req,
		)
	}

	return response.UserAccount{
		Message: "Account info retrieved succesfully!",
		User:    user,
	}
}

func (s *Service) storeError(req response.RequestInfo) *response.Error {
	return response.NewError(
		"Unexpected persistence failure",
		http.StatusInternalServerError,
		"The user store could not complete the request",
		req,
	)
}
