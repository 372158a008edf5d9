package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chesscoach/chess-coach/backend/internal/config"
	"github.com/chesscoach/chess-coach/backend/internal/handler"
	"github.com/chesscoach/chess-coach/backend/internal/service/ai"
	"github.com/chesscoach/chess-coach/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider := selectProvider(ctx, cfg.AI)
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	gateway := chat.NewGateway(chat.NewSessionStore(), provider)
	router := handler.NewRouter(gateway, cfg.CORS.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

// selectProvider decides once at startup how chat messages are answered.
// A nil provider puts the gateway in echo mode.
func selectProvider(ctx context.Context, cfg config.AIConfig) ai.Provider {
	if !cfg.Enabled() {
		log.Printf("%s credentials not configured, chat replies will echo input", cfg.Provider)
		return nil
	}

	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		log.Printf("warning: failed to initialize %s provider: %v", cfg.Provider, err)
		log.Println("continuing with echo provider")
		return ai.NewEchoProvider()
	}

	log.Printf("%s provider initialized successfully", provider.Name())
	return provider
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Chess Coach AI API listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
