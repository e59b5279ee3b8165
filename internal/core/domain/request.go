package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a collaboration or
// mentorship request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// Accepted and rejected are terminal.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {StatusAccepted, StatusRejected},
}

// RequestKind discriminates the two request variants the platform supports.
type RequestKind string

const (
	KindCollaboration RequestKind = "collaboration"
	KindMentorship    RequestKind = "mentorship"
)

var ErrRequestNotFound = errors.New("request not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrSelfRequest = errors.New("cannot send a request to yourself")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("invalid input")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidKind reports whether k is one of the supported request kinds.
func ValidKind(k RequestKind) bool {
	return k == KindCollaboration || k == KindMentorship
}

// Request is a directed ask from one identity to another. Only the
// recipient may move it out of pending, and exactly once.
type Request struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Kind        RequestKind   `json:"kind" bson:"kind"`
	SenderID    string        `json:"sender_id" bson:"sender_id"`
	RecipientID string        `json:"recipient_id" bson:"recipient_id"`
	Message     string        `json:"message" bson:"message"`
	Status      RequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// Direction describes a request relative to the identity viewing it.
// It is derived per viewer and never persisted.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// DirectionFor returns the request's direction from the point of view of id.
func (r *Request) DirectionFor(id string) Direction {
	if r.SenderID == id {
		return DirectionSent
	}
	return DirectionReceived
}
