// Package main is the entry point for the portfolio backend server.
// It loads configuration, wires the content loader, rate limiter, and
// mail dispatcher, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/config"
	"devfolio/internal/content"
	"devfolio/internal/handlers"
	"devfolio/internal/mail"
	"devfolio/internal/ratelimit"
	"devfolio/internal/router"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"contentDir", cfg.ContentDir,
	)

	// Content loader over the flat-file blog directory.
	loader := content.NewLoader(cfg.ContentDir)
	if _, err := loader.ListSlugs(); err != nil {
		slog.Error("content directory unusable", "dir", cfg.ContentDir, "error", err)
		os.Exit(1)
	}

	// Rate-limit store: Valkey when configured, otherwise in-process.
	var limiter ratelimit.Store
	if cfg.ValkeyHost != "" {
		client, err := ratelimit.Connect(cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, falling back to in-memory rate limiting", "error", err)
		} else {
			defer client.Close()
			limiter = ratelimit.NewValkeyStore(client, cfg.RateLimitMax, cfg.RateLimitWindow)
		}
	}
	if limiter == nil {
		store := ratelimit.NewMemoryStore(cfg.RateLimitMax, cfg.RateLimitWindow)
		defer store.Stop()
		limiter = store
	}

	// Mail dispatcher: configured provider or the default fallback chain.
	dispatcher := mail.NewDispatcher(cfg.EmailProvider, map[string]mail.ProviderConfig{
		"resend":   {APIKey: cfg.ResendAPIKey},
		"sendgrid": {APIKey: cfg.SendgridAPIKey},
		"postmark": {APIKey: cfg.PostmarkToken},
	})
	slog.Info("mail dispatch configured", "chain", dispatcher.Chain())

	blog := handlers.NewBlog(loader)
	contact := handlers.NewContact(limiter, dispatcher, cfg.ContactTo, cfg.ContactFrom)

	r := router.New(blog, contact)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
