package usecase

import (
	"fmt"
	"time"

	"microblog/internal/entity"
	"microblog/internal/repo/persistent"
	"microblog/pkg/logger"
)

type PostUseCase interface {
	ListPosts(callerID string) ([]*entity.PostWithLikes, error)
	ListUserPosts(username, callerID string) ([]*entity.PostWithLikes, error)
	CreatePost(ownerID, ownerUsername, text string) (*entity.Post, error)
	DeletePost(postID, callerID string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	likeRepo persistent.LikeRepository
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) ListPosts(callerID string) ([]*entity.PostWithLikes, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return uc.withLikes(posts, callerID)
}

func (uc *postUseCase) ListUserPosts(username, callerID string) ([]*entity.PostWithLikes, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.ListByOwner(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for %s: %w", username, err)
	}
	return uc.withLikes(posts, callerID)
}

func (uc *postUseCase) withLikes(posts []*entity.Post, callerID string) ([]*entity.PostWithLikes, error) {
	result := make([]*entity.PostWithLikes, 0, len(posts))
	for _, post := range posts {
		count, err := uc.likeRepo.CountByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes for post %s: %w", post.ID, err)
		}

		likedByMe := false
		if callerID != "" {
			liked, err := uc.likeRepo.Exists(callerID, post.ID)
			if err != nil {
				uc.logger.Error("Failed to check like status for post %s: %v", post.ID, err)
			} else {
				likedByMe = liked
			}
		}

		result = append(result, &entity.PostWithLikes{
			Post:       *post,
			LikesCount: count,
			LikedByMe:  likedByMe,
		})
	}
	return result, nil
}

func (uc *postUseCase) CreatePost(ownerID, ownerUsername, text string) (*entity.Post, error) {
	post := &entity.Post{
		Text:          text,
		Timestamp:     time.Now().UTC(),
		OwnerID:       ownerID,
		OwnerUsername: ownerUsername,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) DeletePost(postID, callerID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.OwnerID != callerID {
		return entity.ErrNotPostOwner
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
