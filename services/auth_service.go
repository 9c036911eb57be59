package services

import (
	"errors"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/config"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/utils"
)

// RegisterUser validates the role once, here, so every later check is a
// typed comparison instead of a string parse.
func RegisterUser(email, password, fullName, role string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Role:     r.String(),
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	role, err := models.ParseRole(user.Role)
	if err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.ID, role)
}
