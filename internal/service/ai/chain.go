package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ChainProvider runs a compiled eino chain (prompt template -> chat model).
type ChainProvider struct {
	name  string
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewChainProvider compiles the coaching chain around chatModel.
func NewChainProvider(ctx context.Context, name string, chatModel model.BaseChatModel) (*ChainProvider, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ChainProvider{name: name, chain: runnable}, nil
}

func (p *ChainProvider) Name() string {
	return p.name
}

// Generate invokes the chain with the full history.
func (p *ChainProvider) Generate(ctx context.Context, history []*schema.Message, query string) (*schema.Message, error) {
	response, err := p.chain.Invoke(ctx, buildChainInput(history, query))
	if err != nil {
		return nil, fmt.Errorf("failed to run AI chain: %w", err)
	}

	log.Printf("[ai] %s generated response, history=%d, length=%d", p.name, len(history), len(response.Content))
	return response, nil
}

// Stream streams the chain output chunk by chunk.
func (p *ChainProvider) Stream(ctx context.Context, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	stream, err := p.chain.Stream(ctx, buildChainInput(history, query))
	if err != nil {
		return nil, fmt.Errorf("failed to stream AI chain output: %w", err)
	}
	return stream, nil
}

func buildChainInput(history []*schema.Message, query string) map[string]any {
	return map[string]any{
		"system":  coachSystemPrompt,
		"history": history,
		"query":   query,
	}
}
