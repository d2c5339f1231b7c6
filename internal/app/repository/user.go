package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shiptracker/internal/app/ds"
)

// GetUserByLogin returns user by login
func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.WithContext(ctx).Where("login = ?", login).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser saves a new credential record; the password is hashed by the
// BeforeCreate hook on ds.User.
func (r *Repository) CreateUser(ctx context.Context, user *ds.User) error {
	if user.Password == "" {
		return fmt.Errorf("password is empty")
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// Authenticate возвращает пользователя, если логин+пароль верны.
// Неизвестный логин и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование пользователя.
func (r *Repository) Authenticate(ctx context.Context, login, password string) (*ds.User, error) {
	user, err := r.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ds.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ds.ErrInvalidCredentials
	}
	// не отдаём хэш дальше
	user.Password = ""
	return user, nil
}
