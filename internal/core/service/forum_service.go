package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

// ForumService implements the community feed.
type ForumService struct {
	posts      ports.ForumRepository
	identities ports.IdentityRepository
	logger     zerolog.Logger
}

func NewForumService(posts ports.ForumRepository, identities ports.IdentityRepository, logger zerolog.Logger) *ForumService {
	return &ForumService{posts: posts, identities: identities, logger: logger}
}

func (s *ForumService) CreatePost(ctx context.Context, authorID, content string) (*domain.ForumPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrValidation
	}

	post := &domain.ForumPost{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to create post")
		return nil, err
	}
	return post, nil
}

// ListPosts returns the newest posts with author profiles joined at read
// time, so renamed authors show their current name.
func (s *ForumService) ListPosts(ctx context.Context, limit int) ([]ports.PostView, error) {
	posts, err := s.posts.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		view := ports.PostView{
			ID:        p.ID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		}
		if author, err := s.identities.FindByID(ctx, p.AuthorID); err == nil {
			view.Author = toProfileSummary(author)
		}
		views = append(views, view)
	}
	return views, nil
}
