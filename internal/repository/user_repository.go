package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postline/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", translateErr(err))
	}
	return nil
}

func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Posts").Where("uuid = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// GetAuth loads only the columns the auth paths need.
func (r *UserRepository) GetAuth(id uuid.UUID) (*model.UserAuth, error) {
	var auth model.UserAuth
	err := r.db.Model(&model.User{}).
		Select("uuid", "username", "password_hash").
		Where("uuid = ?", id).
		First(&auth).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user auth failed: %w", err)
	}
	return &auth, nil
}

// UpdateFields applies only the given columns, leaving the rest untouched.
func (r *UserRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.User{}).Where("uuid = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update user failed: %w", translateErr(err))
	}
	return nil
}

func (r *UserRepository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	err := r.db.Model(&model.User{}).
		Where("uuid = ?", id).
		Update("password_hash", passwordHash).Error
	if err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}
	return nil
}

// Delete removes the user row; posts, subscription edges and notifications
// go with it through the foreign-key cascades.
func (r *UserRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("uuid = ?", id).Delete(&model.User{}).Error; err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}
