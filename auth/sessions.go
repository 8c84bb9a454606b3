package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/harshityadav/portfolio-backend/models"
)

// DefaultSessionTTL matches the one-day cookie lifetime of the admin panel.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists sessions. The database package provides the
// production implementation; tests may substitute their own.
type SessionStore interface {
	Add(session *models.Session) error
	FindByID(id string) (*models.Session, error)
	Delete(id string) error
	DeleteExpired(before time.Time) error
}

// Manager owns the session lifecycle: Anonymous -> Authenticated (Create) ->
// Anonymous (Destroy or expiry). TTL is fixed from creation.
type Manager struct {
	store SessionStore
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store SessionStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// TTL returns the configured session lifetime, used to size the cookie MaxAge.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create establishes a new session for the user and returns it.
func (m *Manager) Create(userID uint) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.store.Add(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the session for the given id, or nil if it is absent or
// expired. Expired rows are deleted on the way out so they cannot linger.
func (m *Manager) Resolve(id string) (*models.Session, error) {
	if id == "" {
		return nil, nil
	}

	session, err := m.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(m.now()) {
		if err := m.store.Delete(session.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return session, nil
}

// Destroy removes the session. Destroying an absent session is not an error.
func (m *Manager) Destroy(id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(id)
}

// PurgeExpired removes every session past its lifetime.
func (m *Manager) PurgeExpired() error {
	return m.store.DeleteExpired(m.now())
}
