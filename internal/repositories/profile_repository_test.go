package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfileRepoTest(t *testing.T) (repository.ProfileRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProfileRepo(db), mock
}

func TestGetProfile(t *testing.T) {
	selectSQL := regexp.QuoteMeta("FROM profiles")
	profileID := uuid.New()
	profileColumns := []string{"id", "full_name", "avatar_url", "role", "created_at", "updated_at"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow(profileID, "Ada Okafor", "https://img.example.com/a.png", "user", now, now))

		// Act
		profile, err := repo.GetProfile(t.Context(), profileID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, profileID, profile.ID)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Ada Okafor", *profile.FullName)
		assert.Equal(t, "user", profile.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Null Name And Avatar", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow(profileID, nil, nil, "user", now, now))

		// Act
		profile, err := repo.GetProfile(t.Context(), profileID)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, profile.FullName)
		assert.Nil(t, profile.AvatarURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found Passes Through", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnError(sql.ErrNoRows)

		// Act
		profile, err := repo.GetProfile(t.Context(), profileID)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, profile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error Is Wrapped", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		dbErr := errors.New("connection lost")
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnError(dbErr)

		// Act
		profile, err := repo.GetProfile(t.Context(), profileID)

		// Assert
		require.Error(t, err)
		assert.ErrorContains(t, err, "querying database")
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, profile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateProfile(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO profiles")

	name := "Ada Okafor"
	profile := &models.Profile{
		ID:       uuid.New(),
		FullName: &name,
		Role:     "user",
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		mock.ExpectQuery(insertSQL).
			WithArgs(profile.ID, profile.FullName, profile.AvatarURL, profile.Role).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateProfile(t.Context(), profile)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, now, profile.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		dbErr := errors.New("insert failed")
		mock.ExpectQuery(insertSQL).
			WithArgs(profile.ID, profile.FullName, profile.AvatarURL, profile.Role).
			WillReturnError(dbErr)

		// Act
		err := repo.CreateProfile(t.Context(), profile)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProfile(t *testing.T) {
	updateSQL := regexp.QuoteMeta("UPDATE profiles")
	profileID := uuid.New()
	profileColumns := []string{"id", "full_name", "avatar_url", "role", "created_at", "updated_at"}

	t.Run("Success - Partial Update Keeps Existing Columns", func(t *testing.T) {
		// Arrange: only the name travels; avatar_url stays NULL so COALESCE keeps it
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		name := "Ada Okafor"
		req := &models.UpdateProfileRequest{FullName: &name}

		mock.ExpectQuery(updateSQL).
			WithArgs(req.FullName, req.AvatarURL, profileID).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow(profileID, name, "https://img.example.com/kept.png", "user", now, now))

		// Act
		profile, err := repo.UpdateProfile(t.Context(), profileID, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, name, *profile.FullName)
		require.NotNil(t, profile.AvatarURL)
		assert.Equal(t, "https://img.example.com/kept.png", *profile.AvatarURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Profile Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		mock.ExpectQuery(updateSQL).
			WillReturnError(sql.ErrNoRows)

		// Act
		profile, err := repo.UpdateProfile(t.Context(), profileID, &models.UpdateProfileRequest{})

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, profile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPrivacy(t *testing.T) {
	selectSQL := regexp.QuoteMeta("FROM profile_privacy")
	profileID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnRows(sqlmock.NewRows([]string{"show_email", "show_phone", "show_location", "updated_at"}).
				AddRow(true, false, true, now))

		// Act
		settings, err := repo.GetPrivacy(t.Context(), profileID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, profileID, settings.ProfileID)
		assert.True(t, settings.ShowEmail)
		assert.False(t, settings.ShowPhone)
		assert.True(t, settings.ShowLocation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Never Saved Passes Through", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		mock.ExpectQuery(selectSQL).
			WithArgs(profileID).
			WillReturnError(sql.ErrNoRows)

		// Act
		settings, err := repo.GetPrivacy(t.Context(), profileID)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSavePrivacy(t *testing.T) {
	upsertSQL := regexp.QuoteMeta("INSERT INTO profile_privacy")
	profileID := uuid.New()

	t.Run("Success - Upsert", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		now := time.Now()
		settings := &models.PrivacySettings{ProfileID: profileID, ShowEmail: true}

		mock.ExpectQuery(upsertSQL).
			WithArgs(profileID, true, false, false).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		// Act
		err := repo.SavePrivacy(t.Context(), settings)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, now, settings.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Upsert Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProfileRepoTest(t)
		dbErr := errors.New("upsert failed")
		mock.ExpectQuery(upsertSQL).
			WillReturnError(dbErr)

		// Act
		err := repo.SavePrivacy(t.Context(), &models.PrivacySettings{ProfileID: profileID})

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
