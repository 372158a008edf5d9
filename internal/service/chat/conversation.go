package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
	"github.com/chesscoach/chess-coach/backend/internal/service/ai"
)

var errEmptyStream = errors.New("provider stream produced no output")

// Conversation is the per-user handle: provider plus accumulated dialogue.
// Exchanges on one conversation are serialised so turns stay ordered.
type Conversation struct {
	mu       sync.Mutex
	session  chat.Session
	provider ai.Provider
	messages []chat.Message
}

// NewConversation provisions a conversation for userID backed by provider.
func NewConversation(userID string, provider ai.Provider) *Conversation {
	return &Conversation{
		session: chat.Session{
			ID:        uuid.NewString(),
			UserID:    userID,
			Provider:  provider.Name(),
			CreatedAt: time.Now().UTC(),
		},
		provider: provider,
		messages: make([]chat.Message, 0, 16),
	}
}

// Session returns the conversation metadata.
func (c *Conversation) Session() chat.Session {
	return c.session
}

// Transcript returns a copy of the turns exchanged so far.
func (c *Conversation) Transcript() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]chat.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Predict sends input with the full history and records both turns on success.
func (c *Conversation) Predict(ctx context.Context, input string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	response, err := c.provider.Generate(ctx, ai.HistoryMessages(c.messages), input)
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", fmt.Errorf("%s returned an empty response", c.provider.Name())
	}

	c.appendExchange(input, response.Content)
	return response.Content, nil
}

// PredictStream behaves like Predict but hands each non-empty chunk to onDelta.
func (c *Conversation) PredictStream(ctx context.Context, input string, onDelta func(string)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stream, err := c.provider.Stream(ctx, ai.HistoryMessages(c.messages), input)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" && onDelta != nil {
			onDelta(chunk.Content)
		}
	}

	if len(chunks) == 0 {
		return "", errEmptyStream
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", fmt.Errorf("failed to merge stream chunks: %w", err)
	}

	c.appendExchange(input, response.Content)
	return response.Content, nil
}

func (c *Conversation) appendExchange(input, reply string) {
	now := time.Now().UTC()
	c.messages = append(c.messages,
		chat.Message{ID: uuid.NewString(), SessionID: c.session.ID, Sender: chat.SenderUser, Content: input, CreatedAt: now},
		chat.Message{ID: uuid.NewString(), SessionID: c.session.ID, Sender: chat.SenderAssistant, Content: reply, CreatedAt: now},
	)
}
