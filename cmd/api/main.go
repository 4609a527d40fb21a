package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-me/config"
	_ "todo-me/docs" // Swagger docs
	"todo-me/internal/httpserver"
	projectRepo "todo-me/internal/project/repository/sqlite"
	"todo-me/internal/quickadd"
	"todo-me/internal/recurrence"
	"todo-me/pkg/datemath"
	"todo-me/pkg/log"
	"todo-me/pkg/sqlite"
)

// @title       todo-me API
// @description Natural-language task input: dates, priorities, #projects and recurring rules.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo-me...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s, start of week: %d, date format: %s",
		cfg.Parser.DefaultTimezone, cfg.Parser.StartOfWeek, cfg.Parser.DateFormat)

	// 3. Storage
	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := projectRepo.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Clock:       datemath.SystemClock{},
		ParserDefaults: quickadd.Defaults{
			Timezone:    cfg.Parser.DefaultTimezone,
			StartOfWeek: cfg.Parser.StartOfWeek,
			DateFormat:  cfg.Parser.DateFormat,
		},
		RecurrenceCache: recurrence.CacheConfig{
			Size: cfg.Recurrence.CacheSize,
			TTL:  cfg.Recurrence.CacheTTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
