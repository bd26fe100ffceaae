package usecase

import (
	"fmt"

	"microblog/internal/entity"
	"microblog/internal/repo/persistent"
	"microblog/pkg/logger"
)

type LikeUseCase interface {
	LikePost(userID, postID string) error
	UnlikePost(userID, postID string) error
}

type likeUseCase struct {
	likeRepo persistent.LikeRepository
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo: likeRepo,
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *likeUseCase) LikePost(userID, postID string) error {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to check post %s: %v", postID, err)
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return entity.ErrPostNotFound
	}

	liked, err := uc.likeRepo.Exists(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return fmt.Errorf("failed to check like status: %w", err)
	}
	if liked {
		return entity.ErrAlreadyLiked
	}

	// The repo reports a lost race on the unique index as ErrAlreadyLiked.
	return uc.likeRepo.Create(userID, postID)
}

func (uc *likeUseCase) UnlikePost(userID, postID string) error {
	deleted, err := uc.likeRepo.Delete(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to delete like: %v", err)
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if !deleted {
		return entity.ErrLikeNotFound
	}
	return nil
}
