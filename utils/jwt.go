package utils

import (
	"os"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 token carrying the user ID and the already
// validated role.
func GenerateJWT(userID uint, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   role.String(),
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
