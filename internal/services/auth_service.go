package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobtrack-api/internal/auth"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo storage.UserRepository
	tokens   *auth.TokenManager
	google   auth.GoogleVerifier
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo storage.UserRepository, tokens *auth.TokenManager, google auth.GoogleVerifier) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, google: google}
}

// GoogleLogin verifies the posted Google credential and resolves it to an
// account: by Google subject id first, then by email (linking the subject id
// to an existing local account), creating a fresh account otherwise.
func (s *authService) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	if s.google == nil {
		return nil, fmt.Errorf("%w: google sign-in is not configured", ErrUnauthorized)
	}

	payload, err := s.google.Verify(ctx, req.Credential)
	if err != nil {
		log.Printf("AuthService: Google credential verification failed: %v", err)
		return nil, fmt.Errorf("%w: invalid google credential", ErrInvalidCredentials)
	}
	if payload.Email == "" {
		return nil, fmt.Errorf("%w: google credential carries no email", ErrInvalidCredentials)
	}

	user, err := s.userRepo.GetByGoogleID(ctx, &dto.GetUserByGoogleIDRequest{GoogleID: payload.Subject})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, "looking up google account")
		}
		user, err = s.resolveByEmail(ctx, payload)
		if err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

// resolveByEmail links the Google subject to an account with a matching
// email, or creates a new account when none exists.
func (s *authService) resolveByEmail(ctx context.Context, payload *auth.GooglePayload) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: payload.Email})
	if err == nil {
		linked, err := s.userRepo.LinkGoogleID(ctx, &dto.LinkGoogleIDRequest{ID: existing.ID, GoogleID: payload.Subject})
		if err != nil {
			return nil, mapRepoError(err, "linking google account")
		}
		return linked, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "looking up account by email")
	}

	name := payload.Name
	if name == "" {
		name = strings.Split(payload.Email, "@")[0]
	}
	googleID := payload.Subject
	created, err := s.userRepo.Create(ctx, &dto.CreateUserRequest{
		Name:           name,
		Email:          payload.Email,
		GoogleID:       &googleID,
		ProfilePicture: payload.Picture,
	})
	if err != nil {
		return nil, mapRepoError(err, "creating account from google login")
	}
	log.Printf("AuthService: created account %s from google login", created.ID)
	return created, nil
}

// Register creates a local account with a bcrypt-hashed password and issues
// the token pair.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("AuthService: Error hashing password for %s: %v", req.Email, err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	hash := string(hashed)
	user, err := s.userRepo.Create(ctx, &dto.CreateUserRequest{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, mapRepoError(err, "registering account")
	}

	return s.issueTokens(user)
}

// Login checks local credentials and issues the token pair. OAuth-only
// accounts have no password hash and always fail here.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: req.Email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, mapRepoError(err, "looking up account for login")
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		log.Printf("AuthService: refresh token rejected: %v", err)
		return "", fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: malformed token subject", ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, &dto.GetUserByIdRequest{ID: userID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: account no longer exists", ErrUnauthorized)
		}
		return "", mapRepoError(err, "loading account for refresh")
	}

	accessToken, err := s.tokens.SignAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("internal error signing access token: %w", err)
	}
	return accessToken, nil
}

// Me returns the caller's own account row.
func (s *authService) Me(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "loading current account")
	}
	return user, nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.SignAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("internal error signing access token: %w", err)
	}
	refreshToken, err := s.tokens.SignRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("internal error signing refresh token: %w", err)
	}
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}
