package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/config"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/utils"
)

type ProfileInput struct {
	FullName          string `json:"full_name"`
	SobrietyStartDate string `json:"sobriety_start_date"` // sent as YYYY-MM-DD
	Avatar            string `json:"avatar"`              // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	sobrietyStart := ""
	if !user.SobrietyStartDate.IsZero() {
		sobrietyStart = user.SobrietyStartDate.Format("2006-01-02")
	}

	return map[string]interface{}{
		"id":                  user.ID,
		"email":               user.Email,
		"full_name":           user.FullName,
		"role":                user.Role,
		"avatar_url":          user.AvatarURL,
		"sobriety_start_date": sobrietyStart,
		"mfa_enabled":         user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.SobrietyStartDate != "" {
		if d, err := time.Parse("2006-01-02", input.SobrietyStartDate); err == nil {
			user.SobrietyStartDate = d
		}
	}
	if input.Avatar != "" {
		url, err := utils.UploadAvatar(input.Avatar, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
