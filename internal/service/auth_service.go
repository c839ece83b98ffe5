package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"blogql/internal/config"
)

// bcrypt cost matches the original deployment.
const hashCost = 12

// Identity is the authenticated caller attached to a request. The zero
// value means "no identity".
type Identity struct {
	UserID string
	Email  string
}

func (id Identity) Authenticated() bool {
	return id.UserID != ""
}

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
	IssueToken(userID, email string) (string, error)
	ParseToken(tokenString string) (Identity, error)
}

type authService struct {
	secret   string
	duration time.Duration
	now      func() time.Time
}

func NewAuthService(cfg *config.Config) AuthService {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = time.Hour
	}

	return &authService{
		secret:   cfg.JWTSecretKey,
		duration: duration,
		now:      time.Now,
	}
}

func (s *authService) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedPassword), nil
}

func (s *authService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) IssueToken(userID, email string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry. Any failure yields an empty
// identity; callers treat it as "not authenticated", never as a fatal error.
func (s *authService) ParseToken(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
