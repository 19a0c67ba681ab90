// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"jobtrack-api/internal/auth"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	tokenCookie         = "token"
	identityCtx         = "identity" // Key to store the caller identity in context
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  models.Role
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

// extractToken pulls the bearer token from the Authorization header, falling
// back to the token cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) == 2 && strings.ToLower(headerParts[0]) == "bearer" {
			return headerParts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth creates a Gin middleware that verifies the access token and
// resolves its subject to a live account. The handler never runs on a
// missing, malformed, or expired token.
func RequireAuth(tokens *auth.TokenManager, users storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			log.Println("Auth middleware: no credentials presented")
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			log.Printf("Auth middleware: token rejected: %v", err)
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: malformed token subject '%s': %v", claims.Subject, err)
			abortUnauthorized(c, "Invalid user identifier in token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: userID})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Printf("Auth middleware: token subject %s no longer exists", userID)
				abortUnauthorized(c, "Account no longer exists")
				return
			}
			log.Printf("Auth middleware: error loading user %s: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
			return
		}

		c.Set(identityCtx, Identity{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		})
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is presented
// and lets the request through either way.
func OptionalAuth(tokens *auth.TokenManager, users storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: userID})
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityCtx, Identity{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		})
		c.Next()
	}
}

// GetIdentity returns the caller identity stored by RequireAuth.
func GetIdentity(c *gin.Context) (Identity, error) {
	identityAny, exists := c.Get(identityCtx)
	if !exists {
		return Identity{}, errors.New("identity not found in context")
	}

	identity, ok := identityAny.(Identity)
	if !ok {
		return Identity{}, errors.New("identity in context is of invalid type")
	}

	return identity, nil
}

// SetIdentity stores a caller identity directly. Test helper.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityCtx, identity)
}

// GetUserIDFromContext returns just the caller's id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	identity, err := GetIdentity(c)
	if err != nil {
		return uuid.Nil, err
	}
	return identity.ID, nil
}
