package models

// AuthResponse is returned by successful registration and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MessageResponse carries a human-readable outcome. It is used both for error
// bodies and for operations without a payload (e.g. book deletion).
type MessageResponse struct {
	Message string `json:"message"`
}
