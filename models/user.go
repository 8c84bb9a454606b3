package models

import "time"

// User is an account that can sign in to the admin panel. The Password column
// stores "hex(scrypt key).hex(salt)", never the plaintext.
type User struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	IsAdmin   bool      `json:"isAdmin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// PublicUser is the subset of User that is safe to return to clients.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Public strips the credential fields from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
