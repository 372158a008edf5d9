package chat

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
	chatService "github.com/chesscoach/chess-coach/backend/internal/service/chat"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 54 * time.Second
	writeWait    = 10 * time.Second
)

type wsError struct {
	Error string `json:"error"`
}

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// handleWebSocket runs one chat exchange per inbound JSON frame.
// A frame without userId falls back to the userId query parameter.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	defaultUser := chat.ChatRequest{UserID: r.URL.Query().Get("userId")}.ResolvedUserID()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] new connection for user: %s", defaultUser)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go pingLoop(ctx, conn)

	for {
		var req chat.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		userID := defaultUser
		if req.UserID != "" {
			userID = req.ResolvedUserID()
		}

		resp, err := h.gateway.SendMessage(ctx, userID, req.Message)
		var out any = resp
		if errors.Is(err, chatService.ErrEmptyMessage) {
			out = wsError{Error: detailEmptyMessage}
		} else if err != nil {
			out = wsError{Error: err.Error()}
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(out); err != nil {
			log.Printf("[ws] write error: %v", err)
			return
		}
	}
}

func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
