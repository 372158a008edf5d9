package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/chesscoach/chess-coach/backend/internal/config"
	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
	"github.com/chesscoach/chess-coach/backend/internal/service/ai"
)

// ErrEmptyMessage is returned when the message is blank after trimming.
var ErrEmptyMessage = errors.New("message cannot be empty")

// Gateway routes chat messages to per-user conversations.
//
// A nil provider means no credential was configured: every user gets an
// echo reply and no conversation is ever stored.
type Gateway struct {
	store    *SessionStore
	provider ai.Provider
}

// NewGateway wires the session store to the provider selected at startup.
func NewGateway(store *SessionStore, provider ai.Provider) *Gateway {
	return &Gateway{store: store, provider: provider}
}

// Store exposes the underlying session store.
func (g *Gateway) Store() *SessionStore {
	return g.store
}

// ProviderName reports the active provider, or "none" in echo mode.
func (g *Gateway) ProviderName() string {
	if g.provider == nil {
		return "none"
	}
	return g.provider.Name()
}

// SendMessage forwards message to the user's conversation.
//
// Only ErrEmptyMessage is returned as an error. Provider failures come back as a
// successful response whose text describes the failure.
func (g *Gateway) SendMessage(ctx context.Context, userID, message string) (chat.ChatResponse, error) {
	return g.exchange(ctx, userID, message, func(conv *Conversation) (string, error) {
		return conv.Predict(ctx, message)
	})
}

// StreamMessage is SendMessage with incremental delivery through onDelta.
// Echo and error replies are delivered as a single final response without deltas.
func (g *Gateway) StreamMessage(ctx context.Context, userID, message string, onDelta func(string)) (chat.ChatResponse, error) {
	return g.exchange(ctx, userID, message, func(conv *Conversation) (string, error) {
		return conv.PredictStream(ctx, message, onDelta)
	})
}

func (g *Gateway) exchange(ctx context.Context, userID, message string, run func(*Conversation) (string, error)) (chat.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return chat.ChatResponse{}, ErrEmptyMessage
	}
	if userID == "" {
		userID = chat.DefaultUserID
	}

	conv, err := g.conversation(ctx, userID)
	if errors.Is(err, config.ErrNoCredential) {
		return chat.ChatResponse{Response: "Echo (no API key): " + message, UserID: userID}, nil
	}
	if err != nil {
		return g.failure(userID, err), nil
	}

	reply, err := run(conv)
	if err != nil {
		return g.failure(userID, err), nil
	}

	log.Printf("[chat] user=%s session=%s message_len=%d response_len=%d", userID, conv.Session().ID, len(message), len(reply))
	return chat.ChatResponse{Response: reply, UserID: userID}, nil
}

// conversation resolves the user's handle, checking the credential before anything is built.
func (g *Gateway) conversation(ctx context.Context, userID string) (*Conversation, error) {
	if conv, err := g.store.Get(ctx, userID); err == nil {
		return conv, nil
	}
	if g.provider == nil {
		return nil, config.ErrNoCredential
	}

	conv, created, err := g.store.GetOrCreate(ctx, userID, func(id string) (*Conversation, error) {
		return NewConversation(id, g.provider), nil
	})
	if err != nil {
		return nil, err
	}
	if created {
		log.Printf("[chat] created session=%s for user=%s provider=%s", conv.Session().ID, userID, g.provider.Name())
	}
	return conv, nil
}

func (g *Gateway) failure(userID string, err error) chat.ChatResponse {
	log.Printf("[chat] provider error for user=%s: %v", userID, err)
	return chat.ChatResponse{
		Response: fmt.Sprintf("Error processing message: %v", err),
		UserID:   userID,
	}
}
