package chess

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chesscoach/chess-coach/backend/pkg/utils"
)

// Handler 国际象棋相关占位接口
type Handler struct{}

// New 创建国际象棋处理器
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes 注册国际象棋相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chess", func(r chi.Router) {
		r.Post("/analyze", h.handleAnalyze)
		r.Get("/opening/{openingName}", h.handleOpening)
	})
}

// handleAnalyze 局面分析，尚未实现
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Chess analysis endpoint - coming soon",
	})
}

// handleOpening 返回开局说明，名称原样回显
func (h *Handler) handleOpening(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "openingName")
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"opening":     name,
		"description": fmt.Sprintf("Information about %s opening - coming soon", name),
	})
}
