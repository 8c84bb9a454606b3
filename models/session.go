package models

import "time"

// Session is a server-side login session. The ID is the opaque value carried
// by the session cookie; a session past ExpiresAt behaves as if absent.
type Session struct {
	ID        string    `json:"id" db:"id" gorm:"type:text;primaryKey"`
	UserID    uint      `json:"userId" db:"user_id" gorm:"not null;index:idx_sessions_user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at" gorm:"not null;index:idx_sessions_expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Expired reports whether the session is past its lifetime at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
