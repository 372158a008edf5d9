package ai

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"

	"github.com/chesscoach/chess-coach/backend/internal/config"
	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
)

// fakeChatModel records the messages it receives and replies with a fixed answer.
type fakeChatModel struct {
	reply  string
	chunks []string
	err    error
	inputs [][]*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	chunks := make([]*schema.Message, 0, len(f.chunks))
	for _, c := range f.chunks {
		chunks = append(chunks, schema.AssistantMessage(c, nil))
	}
	return schema.StreamReaderFromArray(chunks), nil
}

func drain(t *testing.T, stream *schema.StreamReader[*schema.Message]) string {
	t.Helper()
	defer stream.Close()

	var out string
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out += chunk.Content
	}
}

func TestEchoProvider(t *testing.T) {
	p := NewEchoProvider()
	require.Equal(t, EchoName, p.Name())

	msg, err := p.Generate(context.Background(), nil, "e4")
	require.NoError(t, err)
	require.Equal(t, "Echo: e4", msg.Content)

	stream, err := p.Stream(context.Background(), nil, "d4")
	require.NoError(t, err)
	require.Equal(t, "Echo: d4", drain(t, stream))
}

func TestChainProviderSendsSystemHistoryAndQuery(t *testing.T) {
	fake := &fakeChatModel{reply: "Play the Italian."}
	p, err := NewChainProvider(context.Background(), "ark", fake)
	require.NoError(t, err)
	require.Equal(t, "ark", p.Name())

	history := []*schema.Message{
		schema.UserMessage("hi"),
		schema.AssistantMessage("hello, ready to train?", nil),
	}
	msg, err := p.Generate(context.Background(), history, "what should I open with?")
	require.NoError(t, err)
	require.Equal(t, "Play the Italian.", msg.Content)

	require.Len(t, fake.inputs, 1)
	sent := fake.inputs[0]
	require.Len(t, sent, 4)
	require.Equal(t, schema.System, sent[0].Role)
	require.Equal(t, SystemPrompt(), sent[0].Content)
	require.Equal(t, "hi", sent[1].Content)
	require.Equal(t, schema.Assistant, sent[2].Role)
	require.Equal(t, schema.User, sent[3].Role)
	require.Equal(t, "what should I open with?", sent[3].Content)
}

func TestChainProviderWrapsModelError(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("quota exceeded")}
	p, err := NewChainProvider(context.Background(), "ark", fake)
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), nil, "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestChainProviderStream(t *testing.T) {
	fake := &fakeChatModel{chunks: []string{"Control ", "the ", "center."}}
	p, err := NewChainProvider(context.Background(), "ark", fake)
	require.NoError(t, err)

	stream, err := p.Stream(context.Background(), nil, "tip?")
	require.NoError(t, err)
	require.Equal(t, "Control the center.", drain(t, stream))
}

func TestNewChainProviderRequiresModel(t *testing.T) {
	_, err := NewChainProvider(context.Background(), "ark", nil)
	require.Error(t, err)
}

func TestHistoryMessagesSkipsUnknownSenders(t *testing.T) {
	got := HistoryMessages([]chat.Message{
		{Sender: chat.SenderUser, Content: "q"},
		{Sender: "system", Content: "ignored"},
		{Sender: chat.SenderAssistant, Content: "a"},
	})
	require.Len(t, got, 2)
	require.Equal(t, schema.User, got[0].Role)
	require.Equal(t, schema.Assistant, got[1].Role)
	require.Nil(t, HistoryMessages(nil))
}

func TestGeminiHistoryRoles(t *testing.T) {
	got := geminiHistory([]*schema.Message{
		schema.UserMessage("q"),
		schema.SystemMessage("skip"),
		schema.AssistantMessage("a", nil),
		nil,
	})
	require.Len(t, got, 2)
	require.Equal(t, "user", got[0].Role)
	require.Equal(t, "model", got[1].Role)
	require.Equal(t, genai.Text("a"), got[1].Parts[0])
}

func TestResponseText(t *testing.T) {
	require.Empty(t, responseText(nil))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Nf3 "), genai.Text("d5")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	require.Equal(t, "Nf3 d5", responseText(resp))
}

func TestNewProviderWithoutCredential(t *testing.T) {
	_, err := NewProvider(context.Background(), config.AIConfig{Provider: config.ProviderArk})
	require.ErrorIs(t, err, config.ErrNoCredential)

	_, err = NewProvider(context.Background(), config.AIConfig{Provider: config.ProviderGemini, GeminiModel: "m"})
	require.ErrorIs(t, err, config.ErrNoCredential)
}
