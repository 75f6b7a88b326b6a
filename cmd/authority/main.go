package main

import (
	"fmt"
	"log"

	"report-console/internal/authority"
	"report-console/internal/config"
	"report-console/internal/database"
)

func main() {
	cfg := config.LoadAuthority()

	db := database.Connect(cfg.DBDSN)
	if err := database.SeedAdmin(db, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	var revoker authority.Revoker
	if cfg.RedisAddr != "" {
		rdb, err := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		revoker = authority.NewRedisRevoker(rdb)
		log.Printf("token revocation backed by redis at %s", cfg.RedisAddr)
	} else {
		revoker = authority.NewMemoryRevoker()
		log.Println("REDIS_ADDR not set, token revocation kept in memory")
	}

	api := authority.NewAPI(
		database.NewRepository(db),
		authority.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		revoker,
	)
	r := authority.NewRouter(api, cfg.APIPrefix)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting authority on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
