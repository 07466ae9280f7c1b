package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/handlers"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	service "github.com/AlphaC137/EG-Business-Final-Project/internal/services"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProfileTest() (*repository.MockProfileRepository, *handlers.ProfileHandler) {
	mockRepo := repository.NewMockProfileRepository()
	profileHandler := handlers.NewProfileHandler(service.NewProfileService(mockRepo))

	return mockRepo, profileHandler
}

func TestProfileHandler_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Existing Profile", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		name := "Ada Okafor"
		stored := &models.Profile{ID: userID, FullName: &name, Role: "user"}
		// once for the bootstrap check, once for the read
		mockRepo.On("GetProfile", mock.Anything, userID).Return(stored, nil).Twice()

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/profile", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.GetProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Missing Profile Bootstrapped First", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		created := &models.Profile{ID: userID, Role: "user"}
		mockRepo.On("GetProfile", mock.Anything, userID).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateProfile", mock.Anything, mock.AnythingOfType("*models.Profile")).Return(nil).Once()
		mockRepo.On("GetProfile", mock.Anything, userID).Return(created, nil).Once()

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/profile", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.GetProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, profileHandler := setupProfileTest()
		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/profile", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.GetProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		name := "Ada Okafor"
		updated := &models.Profile{ID: userID, FullName: &name}
		mockRepo.On("UpdateProfile", mock.Anything, userID, mock.AnythingOfType("*models.UpdateProfileRequest")).
			Return(updated, nil).Once()

		body, _ := json.Marshal(models.UpdateProfileRequest{FullName: &name})
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/profile", bytes.NewBuffer(body), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.UpdateProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Avatar URL", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/profile",
			bytes.NewBufferString(`{"avatar_url":"not-a-url"}`), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.UpdateProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_Privacy(t *testing.T) {
	userID := uuid.New()

	t.Run("GetPrivacy - Defaults When Never Saved", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		mockRepo.On("GetPrivacy", mock.Anything, userID).Return(nil, sql.ErrNoRows).Once()

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/profile/privacy", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.GetPrivacy()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)

		data, _ := json.Marshal(resp.Data)
		var settings models.PrivacySettings
		require.NoError(t, json.Unmarshal(data, &settings))
		assert.False(t, settings.ShowEmail)
		assert.False(t, settings.ShowPhone)
		assert.False(t, settings.ShowLocation)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UpdatePrivacy - Success", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		mockRepo.On("SavePrivacy", mock.Anything, mock.MatchedBy(func(s *models.PrivacySettings) bool {
			return s.ProfileID == userID && s.ShowEmail && !s.ShowPhone
		})).Return(nil).Once()

		body, _ := json.Marshal(models.UpdatePrivacyRequest{ShowEmail: true})
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/profile/privacy", bytes.NewBuffer(body), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.UpdatePrivacy()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UpdatePrivacy - Empty Body Rejected", func(t *testing.T) {
		// Arrange
		mockRepo, profileHandler := setupProfileTest()
		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/profile/privacy", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		profileHandler.UpdatePrivacy()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockRepo.AssertNotCalled(t, "SavePrivacy", mock.Anything, mock.Anything)
	})
}
