// Command server runs the AI travel planner web application.
//
// It serves an embedded trip form at GET /, runs the five-stage planning
// pipeline at POST /api/plan (streaming AG-UI events over SSE), and
// renders plan downloads at POST /api/plan/download.
//
// Configuration is via environment variables (a .env file is honored):
//
//	PORT                    - Server port (default: 8000)
//	LOG_LEVEL               - debug, info, warn, error (default: info)
//	WAYFINDER_PROVIDER      - google, anthropic, or openai (default: google)
//	WAYFINDER_MODEL         - Model ID override (optional)
//	WAYFINDER_MAX_STEPS     - Max agent iterations per stage (default: 5)
//	WAYFINDER_STAGE_TIMEOUT - Per-stage timeout (default: 5m)
//	GOOGLE_API_KEY          - Google API key
//	ANTHROPIC_API_KEY       - Anthropic API key
//	OPENAI_API_KEY          - OpenAI API key
//	TAVILY_API_KEY          - Tavily key for web search (DuckDuckGo fallback)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/client"
	"github.com/wayfinder-ai/wayfinder/model"
	"github.com/wayfinder-ai/wayfinder/planner"
	"github.com/wayfinder-ai/wayfinder/search"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	clientEvents := make(chan client.Event, 64)
	go logClientEvents(clientEvents)

	chatClient, err := createClient(cfg, clientEvents)
	if err != nil {
		slog.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	searchProvider := createSearchProvider(cfg)

	p, err := planner.New(chatClient, searchProvider,
		planner.WithMaxAgentSteps(cfg.MaxAgentSteps),
		planner.WithStageTimeout(cfg.StageTimeout),
	)
	if err != nil {
		slog.Error("failed to create planner", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.Handle("/api/plan", corsMiddleware(NewPlanHandler(p)))
	mux.Handle("/api/plan/download", corsMiddleware(NewDownloadHandler()))
	mux.HandleFunc("/healthz", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("travel planner starting",
		"port", cfg.Port,
		"provider", cfg.Provider,
		"max_steps", cfg.MaxAgentSteps,
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func createClient(cfg *Config, events chan<- client.Event) (*client.Client, error) {
	var chatModel ai.Model

	if cfg.Model != "" {
		m, ok := model.Lookup(cfg.Model)
		if !ok {
			return nil, fmt.Errorf("unknown model: %s", cfg.Model)
		}
		chatModel = m
	} else {
		m, ok := model.DefaultFor(ai.Provider(cfg.Provider))
		if !ok {
			return nil, fmt.Errorf("no default model for provider: %s", cfg.Provider)
		}
		chatModel = m
	}

	return client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: cfg.AnthropicKey,
			OpenAI:    cfg.OpenAIKey,
			Google:    cfg.GoogleKey,
		},
		Defaults: client.Defaults{
			Chat: chatModel,
		},
		Events: events,
	}), nil
}

// logClientEvents logs per-request token usage and the estimated cost
// for known models. Runs until the channel closes.
func logClientEvents(events <-chan client.Event) {
	for ev := range events {
		switch ev.Type {
		case client.EventRequestComplete:
			attrs := []any{
				"operation", ev.Operation,
				"provider", ev.Provider,
				"model", ev.Model,
				"duration_ms", ev.Duration.Milliseconds(),
			}
			if ev.Usage != nil {
				attrs = append(attrs,
					"input_tokens", ev.Usage.InputTokens,
					"output_tokens", ev.Usage.OutputTokens,
				)
				if m, ok := model.Lookup(ev.Model); ok {
					attrs = append(attrs, "cost_usd", fmt.Sprintf("%.6f", m.Cost(*ev.Usage)))
				}
			}
			slog.Info("llm request complete", attrs...)
		case client.EventRequestError:
			slog.Warn("llm request failed",
				"operation", ev.Operation,
				"provider", ev.Provider,
				"model", ev.Model,
				"error", ev.Error,
			)
		}
	}
}

// createSearchProvider prefers Tavily when a key is configured and falls
// back to DuckDuckGo, which needs no key but is rate limited.
func createSearchProvider(cfg *Config) search.Provider {
	if cfg.TavilyKey != "" {
		slog.Info("using tavily search")
		return search.NewTavily(cfg.TavilyKey, "basic")
	}
	slog.Info("using duckduckgo search (set TAVILY_API_KEY for better results)")
	return search.NewDuckDuckGo()
}
