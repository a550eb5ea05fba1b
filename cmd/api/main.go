package main

import (
	"log"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/wedifit/wedifit-services/api/internal/config"
	"github.com/wedifit/wedifit-services/api/internal/server"
)

func main() {
	// .env is a local-development convenience; deployed environments set
	// real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env 파일을 불러오지 않습니다: %v", err)
	}

	cfg := config.Load()

	app := server.New(cfg)
	if err := app.Run(); err != nil {
		log.Fatalf("서버 기동에 실패했습니다: %v", err)
	}
}
