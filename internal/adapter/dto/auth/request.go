package auth

// LoginRequest carries the Fireflies API key to exchange for an access token
type LoginRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}
