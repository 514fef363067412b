package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateServiceToken(caller string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("sellerpay-secret")

// SetSecret overrides the signing secret from configuration.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	Caller string `json:"caller"`
	jwt.StandardClaims
}

type JWTService struct{}

// GenerateServiceToken issues a token for a machine caller, e.g. the payout
// scheduler or an operator CLI.
func (s *JWTService) GenerateServiceToken(caller string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Caller: caller,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "sellerpay",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Caller == "" || claims.Issuer != "sellerpay" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
