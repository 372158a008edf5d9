package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUserRequired    = errors.New("user id is required")
)

// ConversationFactory builds the conversation handle for a new user.
type ConversationFactory func(userID string) (*Conversation, error)

// SessionStore keeps at most one conversation per user for the process lifetime.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Conversation
}

// NewSessionStore bootstraps the in-memory store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Conversation),
	}
}

// Get retrieves the conversation bound to userID.
func (s *SessionStore) Get(_ context.Context, userID string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// GetOrCreate returns the existing conversation for userID or stores the one built by
// factory. Concurrent callers for the same user always observe the same conversation.
func (s *SessionStore) GetOrCreate(ctx context.Context, userID string, factory ConversationFactory) (*Conversation, bool, error) {
	if userID == "" {
		return nil, false, ErrUserRequired
	}

	if conv, err := s.Get(ctx, userID); err == nil {
		return conv, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.sessions[userID]; ok {
		return conv, false, nil
	}

	conv, err := factory(userID)
	if err != nil {
		return nil, false, err
	}
	s.sessions[userID] = conv
	return conv, true, nil
}

// Len reports how many users hold a conversation.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// LoadTranscript returns stored messages for the provided user.
func (s *SessionStore) LoadTranscript(ctx context.Context, userID string) (chat.Session, []chat.Message, error) {
	conv, err := s.Get(ctx, userID)
	if err != nil {
		return chat.Session{}, nil, err
	}
	return conv.Session(), conv.Transcript(), nil
}
