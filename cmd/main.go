package main

import (
	"log"

	"github.com/myloyo/bd-8/config"
	"github.com/myloyo/bd-8/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
