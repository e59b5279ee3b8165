package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PointsReader reads reputation points from Redis. Points are written by
// an external awarding process; this side only ever reads.
// Key format: points:<identity_id>
type PointsReader struct {
	client *redis.Client
}

// NewPointsReader creates a PointsReader wrapping the given Redis client.
func NewPointsReader(client *redis.Client) *PointsReader {
	return &PointsReader{client: client}
}

// Points returns the awarded total for identityID, 0 when no award exists.
func (p *PointsReader) Points(ctx context.Context, identityID string) (int64, error) {
	n, err := p.client.Get(ctx, p.key(identityID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("points lookup: %w", err)
	}
	return n, nil
}

func (p *PointsReader) key(identityID string) string {
	return fmt.Sprintf("points:%s", identityID)
}
