package main

import (
	"net/http"

	"artha/internal/adminapi"
	"artha/internal/ai"
	"artha/pkg/config"
	pdb "artha/pkg/db"
	"artha/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	app := adminapi.New(
		log,
		pdb.MustConnect(cfg, log),
		ai.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		cfg,
	)

	log.Infof("admin-api listening at %s", cfg.AdminAddr)
	if err := http.ListenAndServe(cfg.AdminAddr, app.Handler()); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
