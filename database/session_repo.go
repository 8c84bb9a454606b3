package database

import (
	"errors"
	"time"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

// SessionRepo is the persistent backing for auth.Manager. Concurrent access
// is safe because every call goes through the database's own locking; there
// is no in-process session state.
type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db}
}

// Add inserts a new session into the database
func (r *SessionRepo) Add(session *models.Session) error {
	return r.db.Create(session).Error
}

// FindByID returns a session by id, or nil if no such session exists
func (r *SessionRepo) FindByID(id string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session from the database by id
func (r *SessionRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Session{}).Error
}

// DeleteExpired removes every session that expired at or before the given time
func (r *SessionRepo) DeleteExpired(before time.Time) error {
	return r.db.Where("expires_at <= ?", before).Delete(&models.Session{}).Error
}
