package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 token carrying the user id and admin flag.
func GenerateJWT(secret []byte, userID uint, isAdmin bool, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(userID),
		"is_admin": isAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
	})

	return token.SignedString(secret)
}
