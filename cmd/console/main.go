package main

import (
	"fmt"
	"log"
	"net/http"

	"report-console/internal/config"
	"report-console/internal/server"
)

func main() {
	cfg := config.LoadConsole()
	client := server.NewClient(cfg)

	r, err := server.NewRouter(cfg, client)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting console on %s (backend %s%s)", addr, cfg.APIOrigin, cfg.APIPrefix)
	if err := http.ListenAndServe(addr, server.Protect(cfg, r)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
