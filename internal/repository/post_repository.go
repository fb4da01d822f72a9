package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postline/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", translateErr(err))
	}
	return nil
}

func (r *PostRepository) GetByID(id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("uuid = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) GetByTitleAndAuthor(title string, authorID uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.Where("title = ? AND author_user_id = ?", title, authorID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by title failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update post failed: %w", translateErr(err))
	}
	return nil
}

func (r *PostRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("uuid = ?", id).Delete(&model.Post{}).Error; err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
