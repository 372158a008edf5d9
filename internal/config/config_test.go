package config

import (
	"context"
	"errors"
	"testing"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AI_PROVIDER", "ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL",
		"ARK_BASE_URL", "ARK_REGION", "AI_TEMPERATURE", "GEMINI_API_KEY", "GEMINI_MODEL",
		"CORS_ALLOWED_ORIGINS", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderArk {
		t.Fatalf("unexpected provider: %s", cfg.AI.Provider)
	}
	if cfg.AI.Temperature != DefaultTemperature {
		t.Fatalf("unexpected temperature: %f", cfg.AI.Temperature)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected AI disabled without credentials")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5174" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		want    string
		wantErr bool
	}{
		{"bare port", "9000", ":9000", false},
		{"host and port", "127.0.0.1:9000", "127.0.0.1:9000", false},
		{"contains space", "90 00", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)
			got, err := loadServerConfig()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadServerConfig err: %v", err)
			}
			if got.Addr != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Addr)
			}
		})
	}
}

func TestLoadAIConfigProviders(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("ARK_API_KEY", "ark-key")
	t.Setenv("AI_TEMPERATURE", "0.2")

	cfg, err := loadAIConfig()
	if err != nil {
		t.Fatalf("loadAIConfig err: %v", err)
	}
	if !cfg.Enabled() {
		t.Fatal("expected ark provider enabled with api key")
	}
	if cfg.Temperature != 0.2 {
		t.Fatalf("unexpected temperature: %f", cfg.Temperature)
	}

	t.Setenv("AI_PROVIDER", "gemini")
	cfg, err = loadAIConfig()
	if err != nil {
		t.Fatalf("loadAIConfig err: %v", err)
	}
	if cfg.Enabled() {
		t.Fatal("expected gemini provider disabled without GEMINI_API_KEY")
	}

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	cfg, err = loadAIConfig()
	if err != nil {
		t.Fatalf("loadAIConfig err: %v", err)
	}
	if !cfg.Enabled() || cfg.GeminiModel != DefaultGeminiModel {
		t.Fatalf("unexpected gemini config: %+v", cfg)
	}
}

func TestLoadAIConfigRejectsInvalidValues(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "openai")
	if _, err := loadAIConfig(); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_TEMPERATURE", "warm")
	if _, err := loadAIConfig(); err == nil {
		t.Fatal("expected error for invalid temperature")
	}
}

func TestLoadCORSConfigOverride(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://coach.example.com , ,http://localhost:3000")

	got := loadCORSConfig()
	if len(got.AllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", got.AllowedOrigins)
	}
	if got.AllowedOrigins[0] != "https://coach.example.com" {
		t.Fatalf("unexpected first origin: %s", got.AllowedOrigins[0])
	}
}

func TestNewChatModelWithoutCredential(t *testing.T) {
	cfg := AIConfig{Provider: ProviderArk, Model: DefaultArkModel}
	if _, err := cfg.NewChatModel(context.Background()); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}
