package user_entity

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an operator account of this server.
type User struct {
	common_model.Audit
	Name     string          `json:"name" example:"Jane Operator"`
	Email    string          `gorm:"uniqueIndex;not null" json:"email" example:"jane@example.com"`
	Password string          `gorm:"not null" json:"-"`
	Role     user_model.Role `gorm:"default:user" json:"role" example:"user"`
}

// BeforeSave hashes the password whenever a plaintext value is written.
// Already-hashed values pass through untouched so partial updates stay safe.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(u.Password)); err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ComparePassword checks a plaintext candidate against the stored hash.
func (u *User) ComparePassword(candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
}
