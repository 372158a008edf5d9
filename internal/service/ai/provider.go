package ai

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
)

// Provider generates assistant replies from a conversation history.
//
// history holds the turns already exchanged, oldest first; query is the new user turn
// and is not part of history.
type Provider interface {
	Name() string
	Generate(ctx context.Context, history []*schema.Message, query string) (*schema.Message, error)
	Stream(ctx context.Context, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error)
}

// HistoryMessages converts stored turns into model messages, skipping unknown senders.
func HistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}
