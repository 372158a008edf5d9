package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiName identifies the Gemini provider in session metadata.
const GeminiName = "gemini"

var errEmptyCandidate = errors.New("gemini returned no text candidates")

// GeminiProvider talks to Gemini through a fresh chat session per call,
// seeded with the stored history.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider creates a Gemini client for modelName.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, temperature float64) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(temperature))
	model.SystemInstruction = genai.NewUserContent(genai.Text(coachSystemPrompt))

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return GeminiName
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) Generate(ctx context.Context, history []*schema.Message, query string) (*schema.Message, error) {
	cs := p.model.StartChat()
	cs.History = geminiHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(query))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errEmptyCandidate
	}

	log.Printf("[ai] gemini generated response, history=%d, length=%d", len(history), len(text))
	return schema.AssistantMessage(text, nil), nil
}

func (p *GeminiProvider) Stream(ctx context.Context, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	cs := p.model.StartChat()
	cs.History = geminiHistory(history)

	iter := cs.SendMessageStream(ctx, genai.Text(query))
	reader, writer := schema.Pipe[*schema.Message](8)

	go func() {
		defer writer.Close()
		for {
			resp, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				writer.Send(nil, fmt.Errorf("gemini stream: %w", err))
				return
			}
			if text := responseText(resp); text != "" {
				if closed := writer.Send(schema.AssistantMessage(text, nil), nil); closed {
					return
				}
			}
		}
	}()

	return reader, nil
}

// geminiHistory maps model messages onto Gemini's user/model roles.
func geminiHistory(history []*schema.Message) []*genai.Content {
	if len(history) == 0 {
		return nil
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		if msg == nil {
			continue
		}
		role := "user"
		switch msg.Role {
		case schema.Assistant:
			role = "model"
		case schema.User:
		default:
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
		break
	}
	return builder.String()
}
