package entity

import "time"

type Post struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Timestamp     time.Time `json:"timestamp"`
	OwnerID       string    `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
}

// PostWithLikes is the list representation of a post, enriched with the
// like count and whether the calling user has liked it. Anonymous callers
// always see LikedByMe as false.
type PostWithLikes struct {
	Post
	LikesCount int64 `json:"likes_count"`
	LikedByMe  bool  `json:"liked_by_me"`
}
