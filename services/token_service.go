package services

import (
	"errors"
	"time"

	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but is past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrInvalidToken covers malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService mints and verifies the signed bearer tokens used for
// session identity. The signing secret and lifetime are fixed at
// construction; rotating the secret invalidates all outstanding tokens.
type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

// NewTokenService creates a token service with the given secret and lifetime
func NewTokenService(secretKey string, expiresIn time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		expiresIn: expiresIn,
	}
}

// Issue signs a new token binding the user id and an expiry
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks the signature and expiry of a token and returns the
// embedded user id
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
