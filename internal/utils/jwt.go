package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore_back_end/internal/config"
	"bookstore_back_end/internal/models"
)

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
