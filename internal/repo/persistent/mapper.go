package persistent

import (
	"microblog/internal/entity"
	"microblog/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:       e.ID,
		Username: e.Username,
		Password: e.Password,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:            m.ID,
		Text:          m.Text,
		Timestamp:     m.Timestamp,
		OwnerID:       m.OwnerID,
		OwnerUsername: m.OwnerUsername,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:            e.ID,
		Text:          e.Text,
		Timestamp:     e.Timestamp,
		OwnerID:       e.OwnerID,
		OwnerUsername: e.OwnerUsername,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		CreatedAt: e.CreatedAt,
	}
}
