package models

// Credential is the internal registry entry matched on login. It is never
// exposed through the API; the public identity is User.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
}
