package ports

import (
	"context"
	"time"

	"github.com/craftlink/community-api/internal/core/domain"
)

// ForumRepository defines persistence operations for the community feed.
type ForumRepository interface {
	Create(ctx context.Context, p *domain.ForumPost) error
	// List returns the newest posts first. limit <= 0 applies the
	// repository default.
	List(ctx context.Context, limit int) ([]*domain.ForumPost, error)
}

// PostView is a feed entry with the author's current profile joined in.
type PostView struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Author    *ProfileSummary `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ForumService defines use-case operations for the feed.
type ForumService interface {
	CreatePost(ctx context.Context, authorID, content string) (*domain.ForumPost, error)
	ListPosts(ctx context.Context, limit int) ([]PostView, error)
}
