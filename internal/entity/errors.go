package entity

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrLikeNotFound       = errors.New("like not found")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrNotPostOwner       = errors.New("not authorized to delete this post")
)
