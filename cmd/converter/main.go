package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"blk2json/internal/common/config"
	"blk2json/internal/common/middleware"
	"blk2json/internal/converter/handlers"
	"blk2json/internal/converter/models"
	"blk2json/internal/history/repository"
	"blk2json/internal/history/storage"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Converter Service
// ============================================================

func main() {
	cfg := config.Load()

	order, err := models.ParseKeyOrder(cfg.KeyOrder)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.OpenSQLite(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	outputs := storage.NewOutputStorage(cfg.OutputDir)
	handler := handlers.NewHandler(repo, outputs, order, cfg.LabelLang)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "BLK Converter Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Routes
	// ============================================================

	handlers.Register(app, handler)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Converter Service on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Saving converted files to %s", outputs.Root())

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
