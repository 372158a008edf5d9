package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chesscoach/chess-coach/backend/pkg/utils"
)

const (
	ServiceName = "Chess Coach AI API"
	Version     = "1.0.0"
)

// Handler 根路径与健康检查
type Handler struct{}

// New 创建健康检查处理器
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes 注册根路径与健康检查路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": ServiceName,
		"version": Version,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}
