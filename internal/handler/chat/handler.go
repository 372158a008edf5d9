package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
	chatService "github.com/chesscoach/chess-coach/backend/internal/service/chat"
	"github.com/chesscoach/chess-coach/backend/pkg/utils"
)

const (
	detailEmptyMessage   = "Message cannot be empty"
	detailInvalidBody    = "invalid request body"
	detailSessionMissing = "Session not found"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	gateway  *chatService.Gateway
	upgrader websocket.Upgrader
}

// New 创建聊天处理器，allowedOrigins 用于校验 WebSocket 的 Origin 头
func New(gateway *chatService.Gateway, allowedOrigins []string) *Handler {
	return &Handler{
		gateway:  gateway,
		upgrader: newUpgrader(allowedOrigins),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/message", h.handleMessage)
		r.Get("/stream", h.handleStream)
		r.Get("/ws", h.handleWebSocket)
		r.Get("/history/{userID}", h.handleHistory)
	})
}

// handleMessage 处理聊天消息；模型错误以 200 响应返回
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload chat.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, detailInvalidBody)
		return
	}

	resp, err := h.gateway.SendMessage(r.Context(), payload.ResolvedUserID(), payload.Message)
	if errors.Is(err, chatService.ErrEmptyMessage) {
		utils.RespondError(w, http.StatusBadRequest, detailEmptyMessage)
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

type historyResponse struct {
	UserID    string         `json:"userId"`
	SessionID string         `json:"sessionId"`
	Provider  string         `json:"provider"`
	Messages  []chat.Message `json:"messages"`
}

// handleHistory 返回用户的会话记录
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	session, messages, err := h.gateway.Store().LoadTranscript(r.Context(), userID)
	if errors.Is(err, chatService.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, detailSessionMissing)
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, historyResponse{
		UserID:    userID,
		SessionID: session.ID,
		Provider:  session.Provider,
		Messages:  messages,
	})
}
