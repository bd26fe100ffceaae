package http

import (
	"errors"
	"net/http"

	"microblog/internal/entity"
	"microblog/internal/usecase"
	"microblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// LikePost godoc
// @Summary      Like a post
// @Description  Like a post; at most one like per user and post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) LikePost(c *gin.Context) {
	err := h.likeUseCase.LikePost(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrAlreadyLiked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already liked"})
		default:
			h.logger.Error("Failed to like post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Liked"})
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Description  Remove the caller's like from a post
// @Tags         likes
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [delete]
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	err := h.likeUseCase.UnlikePost(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrLikeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
			return
		}
		h.logger.Error("Failed to unlike post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	c.Status(http.StatusNoContent)
}
