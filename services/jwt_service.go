package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims issued at login. The role claim is
// copied from the resolved user record; authorization never looks anywhere
// else.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and verification.
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key.
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: secretKey}
	return nil
}

// GetJWTService returns the initialized JWT service.
func GetJWTService() *JWTService {
	if jwtService == nil {
		jwtService = &JWTService{secretKey: "dev-secret-key-change-in-production"}
	}
	return jwtService
}

// GenerateToken creates a token for a user. Tokens expire in 24 hours.
func (j *JWTService) GenerateToken(user models.User) (string, error) {
	if user.ID == "" || user.Email == "" {
		return "", errors.New("user ID and email cannot be empty")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "vibecart-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken verifies and parses a token, returning its claims.
func (j *JWTService) VerifyToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

// Convenience functions that use the global service

func GenerateToken(user models.User) (string, error) {
	return GetJWTService().GenerateToken(user)
}

func VerifyToken(tokenString string) (*SessionClaims, error) {
	return GetJWTService().VerifyToken(tokenString)
}
