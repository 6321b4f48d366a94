package auth_service

import (
	"errors"

	"github.com/Altaway/wabridge-server/src/database"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Login exchanges a credential pair for a signed token.
func Login(body user_model.Login) (user_model.LoginResponse, error) {
	var user user_entity.User
	err := database.DB.
		Model(&user).
		Where(&user_entity.User{Email: body.Email}).
		First(&user).Error
	if err != nil {
		return user_model.LoginResponse{}, ErrInvalidCredentials
	}

	if err := user.ComparePassword(body.Password); err != nil {
		return user_model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		return user_model.LoginResponse{}, err
	}

	return user_model.LoginResponse{Token: token}, nil
}
