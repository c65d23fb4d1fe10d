package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/VIPUlNEGI1/Flight/internal/app"
	"github.com/VIPUlNEGI1/Flight/internal/config"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
