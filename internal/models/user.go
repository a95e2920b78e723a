package models

// User is a registered account. The bcrypt hash is never serialized back to clients.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
