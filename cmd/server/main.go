package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"stockinfo/internal/app/di"
	"stockinfo/internal/app/router"
	stockadapters "stockinfo/internal/feature/stock/adapters"
	stockhandler "stockinfo/internal/feature/stock/transport/handler"
	stockusecase "stockinfo/internal/feature/stock/usecase"
	infradb "stockinfo/internal/platform/db"
	infraredis "stockinfo/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Price responses will not be cached.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository and external sources
	stockRepo := stockadapters.NewStockRepository(db)
	prices := di.NewPriceSource(rdb)
	narratives := di.NewNarrativeSource()

	// Usecase
	stockUC := stockusecase.NewStockUsecase(stockRepo, prices, narratives)

	// Handler
	stockH := stockhandler.NewStockHandler(stockUC)

	router := router.NewRouter(stockH)

	if os.Getenv("POLYGON_API_KEY") == "" {
		log.Println("[WARN] POLYGON_API_KEY is not set. Resolving unseeded symbols will fail.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
