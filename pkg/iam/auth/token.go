package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carevo/platform/pkg/kernel"
)

// Claims is the payload carried inside an access token.
type Claims struct {
	UserID   kernel.UserID   `json:"user_id"`
	Email    kernel.Email    `json:"email"`
	UserType kernel.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, userType kernel.UserType) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
}

// JWTService signs HS256 access tokens with a shared secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, userType kernel.UserType) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", ErrTokenGeneration().WithCause(err)
	}
	return signed, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}
	return claims, nil
}
