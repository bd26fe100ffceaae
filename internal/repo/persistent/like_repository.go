package persistent

import (
	"errors"

	"microblog/internal/entity"
	"microblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(userID, postID string) error
	Delete(userID, postID string) (bool, error)
	Exists(userID, postID string) (bool, error)
	CountByPost(postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(userID, postID string) error {
	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		// Two concurrent likes race to the unique (user_id, post_id)
		// index; the loser is an ordinary already-liked conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (r *likeRepository) Delete(userID, postID string) (bool, error) {
	result := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) Exists(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
