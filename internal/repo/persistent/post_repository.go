package persistent

import (
	"errors"

	"microblog/internal/entity"
	"microblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	ListByOwner(ownerID string) ([]*entity.Post, error)
	Delete(id string) error
	Exists(id string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("timestamp DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListByOwner(ownerID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("owner_id = ?", ownerID).Order("timestamp DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Delete removes the post row only. Like rows referencing the post are
// intentionally left in place.
func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
