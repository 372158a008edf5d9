package ai

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// EchoName identifies the echo provider in session metadata.
const EchoName = "echo"

// EchoProvider stands in for a real provider that could not be constructed.
// It keeps the API shape intact and only repeats the query back.
type EchoProvider struct{}

// NewEchoProvider returns the fallback provider.
func NewEchoProvider() *EchoProvider {
	return &EchoProvider{}
}

func (p *EchoProvider) Name() string {
	return EchoName
}

func (p *EchoProvider) Generate(_ context.Context, _ []*schema.Message, query string) (*schema.Message, error) {
	return schema.AssistantMessage("Echo: "+query, nil), nil
}

func (p *EchoProvider) Stream(ctx context.Context, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	msg, err := p.Generate(ctx, history, query)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}
