package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// AuthService issues tokens for restaurant accounts. Credentials are checked
// against the identity store only; the account document never participates in
// authentication.
type AuthService struct {
	identity  ports.IdentityStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(identity ports.IdentityStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{identity: identity, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	rec, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(rec)
	if err != nil {
		return "", "", err
	}
	return token, rec.ID, nil
}

func (s *AuthService) generateToken(rec *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   rec.ID,
		"email": rec.Email,
		"name":  rec.DisplayName,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

var _ ports.AuthService = (*AuthService)(nil)
