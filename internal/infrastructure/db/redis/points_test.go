package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestReader(t *testing.T) (*PointsReader, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPointsReader(client), mr
}

func TestPointsReader_ReturnsStoredTotal(t *testing.T) {
	reader, mr := newTestReader(t)
	mr.Set("points:identity_1", "340")

	points, err := reader.Points(context.Background(), "identity_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points != 340 {
		t.Errorf("expected 340, got %d", points)
	}
}

func TestPointsReader_MissingKeyIsZero(t *testing.T) {
	reader, _ := newTestReader(t)

	points, err := reader.Points(context.Background(), "never_awarded")
	if err != nil {
		t.Fatalf("a missing key must not be an error: %v", err)
	}
	if points != 0 {
		t.Errorf("expected 0, got %d", points)
	}
}

func TestPointsReader_NonNumericValue(t *testing.T) {
	reader, mr := newTestReader(t)
	mr.Set("points:identity_1", "not-a-number")

	_, err := reader.Points(context.Background(), "identity_1")
	if err == nil {
		t.Fatal("a corrupt value must surface an error")
	}
}
