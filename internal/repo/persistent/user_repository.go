package persistent

import (
	"errors"
	"fmt"

	"microblog/internal/entity"
	"microblog/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

var demoUsers = []model.UserModel{
	{ID: "1", Username: "user1", Password: "password1"},
	{ID: "2", Username: "user2", Password: "password2"},
}

// SeedDemoUsers inserts the fixed demo accounts if they are not already
// present. Safe to run on every startup.
func SeedDemoUsers(db *gorm.DB) error {
	for _, u := range demoUsers {
		var existing model.UserModel
		err := db.Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&u).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}
	return nil
}
