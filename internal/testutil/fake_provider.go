package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/schema"
)

// FakeProvider is a test double for ai.Provider. Replies include the number of
// prior turns so callers can assert the history was forwarded.
type FakeProvider struct {
	mu sync.Mutex

	// FailOnCall makes the Nth call (1-based) return Err. Zero disables it.
	FailOnCall int
	Err        error
	// Chunks splits streamed replies; when empty the reply is sent as one chunk.
	Chunks []string

	calls     int
	histories [][]*schema.Message
}

// NewFakeProvider creates a provider that never fails.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{}
}

func (f *FakeProvider) Name() string {
	return "fake"
}

// Calls reports how many generate or stream calls were made.
func (f *FakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Histories returns the history slices received, one per call.
func (f *FakeProvider) Histories() [][]*schema.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]*schema.Message(nil), f.histories...)
}

func (f *FakeProvider) Generate(_ context.Context, history []*schema.Message, query string) (*schema.Message, error) {
	reply, err := f.record(history, query)
	if err != nil {
		return nil, err
	}
	return schema.AssistantMessage(reply, nil), nil
}

func (f *FakeProvider) Stream(_ context.Context, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	reply, err := f.record(history, query)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	parts := append([]string(nil), f.Chunks...)
	f.mu.Unlock()
	if len(parts) == 0 {
		parts = []string{reply}
	}

	chunks := make([]*schema.Message, 0, len(parts))
	for _, p := range parts {
		chunks = append(chunks, schema.AssistantMessage(p, nil))
	}
	return schema.StreamReaderFromArray(chunks), nil
}

func (f *FakeProvider) record(history []*schema.Message, query string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.histories = append(f.histories, history)
	if f.FailOnCall > 0 && f.calls == f.FailOnCall {
		err := f.Err
		if err == nil {
			err = fmt.Errorf("fake provider failure on call %d", f.calls)
		}
		return "", err
	}

	seen := make([]string, 0, len(history))
	for _, msg := range history {
		if msg.Role == schema.User {
			seen = append(seen, msg.Content)
		}
	}
	return fmt.Sprintf("reply to %q after %d turns [%s]", query, len(history), strings.Join(seen, "|")), nil
}
