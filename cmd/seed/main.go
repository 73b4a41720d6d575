package main

import (
	"context"
	"log"
	"os"

	"tireshop/internal/config"
	"tireshop/internal/db"
	productrepo "tireshop/internal/repository/product"
	"tireshop/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, productrepo.NewPostgres(pool)); err != nil {
		logger.Fatalf("seed: %v", err)
	}

	logger.Println("seed data applied")
}
