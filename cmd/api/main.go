package main

import (
	"log"

	"github.com/rajan170/ai-resume-analyzer/internal/shared/config"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("starting api server env=%s addr=%s", cfg.Env, addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
