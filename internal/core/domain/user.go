package domain

// User represents an application user. PasswordHash is the bcrypt hash of the
// user's password and never leaves the service layer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
