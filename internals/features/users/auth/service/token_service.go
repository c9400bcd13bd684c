// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"profoli_backend/internals/features/users/auth/model"
)

const tokenTTL = 24 * time.Hour

// GenerateToken emite o access token do painel (HS256, 24h).
func GenerateToken(user model.UserModel, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"username": user.UserUsername,
		"role":     user.UserRole,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
