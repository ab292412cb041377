package repositories

import (
	"testing"
	"time"

	"karigar_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository_Roundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository()

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    1,
		Role:      models.UserRoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.NoError(t, repo.Create(db, session))

	found, err := repo.FindByToken(db, session.Token)
	assert.NoError(t, err)
	assert.Equal(t, session.UserID, found.UserID)
	assert.False(t, found.Expired())
}

func TestSessionRepository_FindByToken_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository()

	_, err := repo.FindByToken(db, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_DeleteByToken_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository()

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    1,
		Role:      models.UserRoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.NoError(t, repo.Create(db, session))

	assert.NoError(t, repo.DeleteByToken(db, session.Token))
	assert.NoError(t, repo.DeleteByToken(db, session.Token))

	_, err := repo.FindByToken(db, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository()

	assert.NoError(t, repo.Create(db, &models.Session{
		Token: uuid.NewString(), UserID: 1, Role: models.UserRoleCustomer,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	assert.NoError(t, repo.Create(db, &models.Session{
		Token: uuid.NewString(), UserID: 2, Role: models.UserRoleProvider,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	removed, err := repo.DeleteExpired(db)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}
