package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/starvote/aitext"
	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/cliparse"
	"github.com/danielhkuo/starvote/commentary"
	"github.com/danielhkuo/starvote/db"
	"github.com/danielhkuo/starvote/live"
	"github.com/danielhkuo/starvote/middleware"
	"github.com/danielhkuo/starvote/models"
	"github.com/danielhkuo/starvote/router"
	"github.com/danielhkuo/starvote/seed"
	"github.com/danielhkuo/starvote/store"
)

func main() {
	var err error

	// A missing .env is fine; real env and flags still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Candidate seed
	candidates, err := seed.Load(cfg.SeedFile)
	if err != nil {
		slog.Error("seed load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Candidates loaded", "count", len(candidates))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, candidates)
	if err != nil {
		slog.Error("store setup failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// AI text; without a key every call takes the fallback path
	var gen aitext.Generator = aitext.Unavailable{}
	if cfg.APIKey != "" {
		g, err := aitext.NewGeminiGenerator(ctx, cfg.APIKey)
		if err != nil {
			slog.Error("gemini client setup failed", "error", err)
			os.Exit(1)
		}
		gen = g
	} else {
		slog.Warn("no Gemini API key configured, using fallback text")
	}
	ai := aitext.NewService(gen, aitext.WithModel(cfg.Model), aitext.WithTimeout(cfg.AITimeout))

	hub := live.NewHub()
	a := arena.New(st, ai,
		arena.WithSlot(commentary.NewSlot(cfg.CommentaryPolicy)),
		arena.WithNotifier(hub),
	)

	refresher := commentary.NewRefresher(a, cfg.CommentaryInterval)
	refresher.Start(ctx)

	// Create router
	mux := router.NewRouter(a, hub, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)

		// Wait for Ctrl-C signal
		<-ctx.Done()
		refresher.Stop()

		// Shutdown does not wait for hijacked websocket connections,
		// so release them through the hub first
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown did not drain in time", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType, "commentary_policy", cfg.CommentaryPolicy)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return
	}

	// In-flight requests finish before the store closes
	<-drained
	slog.Info("Server closed")
}

func openStore(ctx context.Context, cfg cliparse.Config, candidates []models.Candidate) (store.Store, error) {
	if cfg.StoreType == cliparse.StoreMemory {
		return store.NewMemory(candidates), nil
	}

	dbType := db.TypeSQLite
	if cfg.StoreType == cliparse.StorePostgres {
		dbType = db.TypePostgres
	}
	conn, err := db.Open(dbType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	s, err := store.NewSQL(ctx, conn, candidates)
	if err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "type", dbType)
	return s, nil
}
