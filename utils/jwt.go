package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued token stays usable. There is no
// refresh mechanism; clients log in again.
const TokenValidity = 14 * 24 * time.Hour

func GenerateJWT(userID uint, username string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(userID),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenValidity).Unix(),
	})
	return token.SignedString(secret)
}

// ParseJWT validates signature and expiry and returns the identity the
// token carries.
func ParseJWT(tokenString string, secret []byte) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("sub claim missing")
	}
	username, _ := claims["username"].(string)

	return uint(sub), username, nil
}
