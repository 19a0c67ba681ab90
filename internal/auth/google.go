// internal/auth/google.go
package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GooglePayload is the subset of the verified ID token the auth service
// cares about.
type GooglePayload struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleVerifier validates a Google ID token credential. An interface so
// tests can substitute a canned payload.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GooglePayload, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a verifier bound to the OAuth client id the
// frontend uses.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, credential string) (*GooglePayload, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	p := &GooglePayload{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		p.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		p.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		p.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		p.Picture = picture
	}
	return p, nil
}
