package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesscoach/chess-coach/backend/internal/cli/client"
	"github.com/chesscoach/chess-coach/backend/internal/handler"
	chatService "github.com/chesscoach/chess-coach/backend/internal/service/chat"
	"github.com/chesscoach/chess-coach/backend/internal/testutil"
)

func TestChatLoopSendsEachLine(t *testing.T) {
	provider := testutil.NewFakeProvider()
	store := chatService.NewSessionStore()
	srv := httptest.NewServer(handler.NewRouter(chatService.NewGateway(store, provider), nil))
	defer srv.Close()

	apiClient, err := client.NewAPIClient(srv.URL)
	require.NoError(t, err)

	chatUserID = "loop-user"
	in := strings.NewReader("first question\n\n   \nsecond question\nexit\nnever sent\n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(context.Background(), apiClient, in, &out))
	require.Equal(t, 2, provider.Calls())
	require.Equal(t, 1, store.Len())
	require.Contains(t, out.String(), "you> ")
}

func TestNewClientUsesEnvironment(t *testing.T) {
	t.Setenv("COACH_API_URL", "coach.internal:9000")

	c, err := newClient()
	require.NoError(t, err)
	require.Equal(t, "http://coach.internal:9000", c.Server())
}
