package chat

import (
	"log"
	"net/http"
	"strings"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
	"github.com/chesscoach/chess-coach/backend/pkg/utils"
)

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event    string `json:"event"`
	Content  string `json:"content,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleStream streams the reply for ?message=...&userId=... as Server-Sent Events.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	req := chat.ChatRequest{
		Message: r.URL.Query().Get("message"),
		UserID:  r.URL.Query().Get("userId"),
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, detailEmptyMessage)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	userID := req.ResolvedUserID()
	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "start", UserID: userID})

	resp, err := h.gateway.StreamMessage(r.Context(), userID, req.Message, func(delta string) {
		utils.SendSSEChunk(w, flusher, StreamResponse{Event: "delta", UserID: userID, Content: delta})
	})
	if err != nil {
		utils.SendSSEChunk(w, flusher, StreamResponse{Event: "error", UserID: userID, Error: err.Error()})
		return
	}

	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "message", UserID: resp.UserID, Content: resp.Response})
	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "end", UserID: resp.UserID, Finished: true})

	log.Printf("[stream] completed response for user=%s", userID)
}
