package utils

import (
	"errors"
	"fmt"

	"github.com/ScheffChuk/drive-t3-s/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity-provider subject. The service never issues
// tokens itself, it only verifies what the provider signed.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) OwnerID() string {
	return c.Subject
}

func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if iss := config.AppConfig.Auth.Issuer; iss != "" {
		tokenIss, err := claims.GetIssuer()
		if err != nil || tokenIss != iss {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}
