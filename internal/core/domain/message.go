package domain

import (
	"strings"
	"time"
)

// Message is one turn in a two-party conversation. Messages are immutable
// once created; creation time is the sole ordering key, with insertion
// order breaking ties.
type Message struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SenderID   string    `json:"sender_id" bson:"sender_id"`
	ReceiverID string    `json:"receiver_id" bson:"receiver_id"`
	Body       string    `json:"body" bson:"body"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// PairKey returns the canonical key for the unordered pair {a, b}.
// Both orderings of the same two identities map to the same key, so a
// conversation has exactly one subscription channel and one history.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}
