package main

import (
	"log"

	"github.com/joho/godotenv"

	"courier/config"
	"courier/internal/api"
	"courier/internal/database"
	"courier/internal/group"
	"courier/internal/history"
	"courier/internal/message"
	"courier/internal/user"
	"courier/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := user.NewService(user.NewPostgresRepository(db.SQL()))
	groups := group.NewService(group.NewPostgresRepository(db.SQL()))
	messages := message.NewService(message.NewPostgresRepository(db.SQL()))
	histories := history.NewService(history.NewPostgresRepository(db.SQL()))
	tokens := jwt.NewJWT(cfg.JWTSecret, cfg.TokenTTL)

	server := api.NewServer(users, groups, messages, histories, tokens)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
