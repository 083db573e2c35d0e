package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/hirepath/hirepath/internal/config"
	"github.com/hirepath/hirepath/internal/database"
	"github.com/hirepath/hirepath/internal/handlers"
	"github.com/hirepath/hirepath/internal/logger"
)

func main() {
	// 1. Environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on environment")
	}

	// 2. Configuration and logging
	cfg := config.Get()
	logger.Setup(cfg)
	if cfg.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Database
	db, err := database.Connect(cfg.DBDsn)
	if err != nil {
		log.Fatal(err)
	}

	// 4. Router (services + handlers + auth gate)
	r := handlers.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server failed to start: ", err)
	}
}
