// internal/transport/dto/auth_dto.go
package dto

// GoogleLoginRequest carries the ID token credential posted by the client
// after the Google sign-in flow.
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// RegisterRequest defines the structure for local account registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the structure for local credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new access token. The token
// may also arrive via the refresh cookie; the handler fills this in.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is the token pair issued on every successful login.
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}
