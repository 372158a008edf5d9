package ai

import (
	"context"
	"fmt"

	"github.com/chesscoach/chess-coach/backend/internal/config"
)

// NewProvider builds the provider selected by cfg.Provider.
// It returns config.ErrNoCredential when the selected provider has no credential.
func NewProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%s provider: %w", cfg.Provider, config.ErrNoCredential)
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		provider, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Temperature)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		provider, err := NewChainProvider(ctx, config.ProviderArk, chatModel)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}
}
