package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/puzzlesuite-go/internal/api"
	"github.com/mcoot/puzzlesuite-go/internal/factory"
	redisstorage "github.com/mcoot/puzzlesuite-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the lexicon: word list file if present, stored copy otherwise
	lexiconPath := os.Getenv("LEXICON_PATH")
	if lexiconPath == "" {
		lexiconPath = "data/words.txt"
	}
	if err := app.LexiconService.LoadFromFile(context.Background(), lexiconPath); err != nil {
		logger.Warn("could not load word list file, trying storage", slog.String("error", err.Error()))
		if err := app.LexiconService.LoadFromStorage(context.Background()); err != nil {
			logger.Warn("lexicon unavailable until loaded", slog.String("error", err.Error()))
		}
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		LexiconService:  app.LexiconService,
		SearchService:   app.SearchService,
		ScoringService:  app.ScoringService,
		ClearingService: app.ClearingService,
		SolverService:   app.SolverService,
		SudokuService:   app.SudokuService,
		WordgenService:  app.WordgenService,
		ColumnsService:  app.ColumnsService,
		PuzzlesService:  app.PuzzlesService,
	})

	// Serve the browser UI next to the API
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", http.FileServer(http.Dir(findStaticDir())))

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"web/static",
		"./web/static",
		filepath.Join(os.Getenv("PWD"), "web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "web/static"
}
