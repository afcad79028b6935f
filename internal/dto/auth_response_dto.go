package dto

// LoginResponse carries the issued JWT after a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
	Name   string `json:"name"`
}
