package http

import (
	"errors"
	"net/http"

	"microblog/internal/entity"
	"microblog/internal/usecase"
	"microblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

// ListPosts godoc
// @Summary      List all posts
// @Description  List all posts newest first, each with its like count and whether the caller has liked it
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.PostWithLikes
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListUserPosts godoc
// @Summary      List posts of one user
// @Description  List the named user's posts newest first
// @Tags         posts
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {array}   entity.PostWithLikes
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{username}/posts [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListUserPosts(c.Param("username"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to list user posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a new text post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post content"
// @Success      201  {object}  entity.Post
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(c.GetString("user_id"), c.GetString("username"), req.Text)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post; only its owner may do this
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	err := h.postUseCase.DeletePost(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrNotPostOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		default:
			h.logger.Error("Failed to delete post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
