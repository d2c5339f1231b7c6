package ds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	UserID   uint   `gorm:"primaryKey;column:user_id" json:"id"`
	Login    string `gorm:"column:login;unique;not null" json:"login"`
	Password string `gorm:"column:password;not null" json:"-"`
	Role     string `gorm:"column:role;not null;default:user" json:"role"`
}

// Хук для хеширования пароля перед сохранением
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (User) TableName() string {
	return "users"
}
