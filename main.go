package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/sundayvolley/volleyrank/config"
	_ "github.com/sundayvolley/volleyrank/docs"
	"github.com/sundayvolley/volleyrank/internal/auth"
	"github.com/sundayvolley/volleyrank/internal/player"
	"github.com/sundayvolley/volleyrank/routes"
)

// @title VolleyRank REST API
// @version 1.0
// @description Roster ratings and leaderboard for the Sunday volleyball crew 🏐.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&player.Player{}, &auth.User{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := os.MkdirAll(filepath.Join(cfg.App.UploadDir, "players"), 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
