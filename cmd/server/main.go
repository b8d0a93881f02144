package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"spendlog/internal/config"
	"spendlog/internal/handlers"
	"spendlog/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	st, err := store.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer st.Close(ctx)
	log.Println("Connected to MongoDB")

	gin.SetMode(cfg.GinMode)
	router := setupRouter(st, cfg)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func setupRouter(st store.Store, cfg *config.Config) *gin.Engine {
	h := handlers.NewHandlers(st)
	return handlers.NewRouter(h, cfg.SessionSecret, cfg.TemplateDir)
}
