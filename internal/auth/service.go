package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dclhub/dcl-hub-backend/config"
)

const (
	AdminSubject = "admin"
	RoleAdmin    = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotConfigured      = errors.New("admin access is not configured")
)

// Claims carried by admin tokens
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service interface {
	Login(in LoginInput) (*TokenResponse, error)
	IssueToken(subject string) (*TokenResponse, error)
	ParseToken(tokenStr string) (*Claims, error)
}

type service struct {
	secret       []byte
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewService(cfg *config.Config) Service {
	ttl := time.Duration(cfg.AdminTokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &service{
		secret:       []byte(cfg.AdminJWTSecret),
		passwordHash: []byte(cfg.AdminPasswordHash),
		ttl:          ttl,
		now:          time.Now,
	}
}

// =============================
// Login
// =============================

type LoginInput struct {
	Password string
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (s *service) Login(in LoginInput) (*TokenResponse, error) {
	if len(s.secret) == 0 || len(s.passwordHash) == 0 {
		return nil, ErrNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.IssueToken(AdminSubject)
}

// IssueToken signs an HS256 admin token for subject.
func (s *service) IssueToken(subject string) (*TokenResponse, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &TokenResponse{AccessToken: signed, ExpiresAt: expiresAt.UTC()}, nil
}

// =============================
// Verify
// =============================

func (s *service) ParseToken(tokenStr string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
