// Package session persists per-conversation triage state. The conversation
// service serializes access per session id, so drivers only need atomic
// whole-session reads and writes.
package session

import (
	"context"
	"errors"
	"time"
)

// Common errors for session store operations.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidStoreType = errors.New("invalid store type")
	ErrNotFound         = errors.New("session not found")
)

// Turn is a single conversation turn. Role is "user" or "assistant".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Session is the accumulated state of one triage conversation.
//
// DetectedSymptoms preserves insertion order and never shrinks except on an
// explicit reset. History is capped by the conversation service.
type Session struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Language           string    `json:"language"`
	QuestionsAsked     int       `json:"questions_asked"`
	DetectedSymptoms   []string  `json:"detected_symptoms"`
	History            []Turn    `json:"history"`
	AssessmentComplete bool      `json:"assessment_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// New returns an empty session for the given ids.
func New(id, userID, language string) *Session {
	return &Session{
		ID:       id,
		UserID:   userID,
		Language: language,
	}
}

// Reset clears the accumulated evidence for a fresh interaction.
func (s *Session) Reset() {
	s.DetectedSymptoms = nil
	s.QuestionsAsked = 0
	s.AssessmentComplete = false
}

// Store is the persistence boundary for sessions.
type Store interface {
	// Get retrieves a session by id.
	// Returns (nil, nil) when the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Save persists the session, creating it if absent.
	Save(ctx context.Context, s *Session) error

	// Delete removes a session by id.
	Delete(ctx context.Context, id string) error

	// Close releases driver resources.
	Close() error
}
