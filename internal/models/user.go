package models

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
