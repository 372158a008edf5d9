package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chesscoach/chess-coach/backend/internal/handler/chat"
	"github.com/chesscoach/chess-coach/backend/internal/handler/chess"
	"github.com/chesscoach/chess-coach/backend/internal/handler/health"
	middlewarePkg "github.com/chesscoach/chess-coach/backend/internal/middleware"
	chatService "github.com/chesscoach/chess-coach/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(gateway *chatService.Gateway, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	health.New().RegisterRoutes(r)

	r.Route("/py-api", func(api chi.Router) {
		chat.New(gateway, allowedOrigins).RegisterRoutes(api)
		chess.New().RegisterRoutes(api)
	})

	return r
}
