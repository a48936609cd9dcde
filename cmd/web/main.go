package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"travelagency/config"
	"travelagency/internal/bootstrap"
	"travelagency/internal/web"
	"travelagency/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := web.NewClient(cfg.Web.APIBaseURL, time.Duration(cfg.Web.TimeoutSeconds)*time.Second)

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob(cfg.Web.TemplatesGlob)
	web.NewHandler(client, logger.Component(zlog, "web")).Register(router)

	if err := bootstrap.Run(ctx, cfg.Web.Address, router, zlog); err != nil {
		zlog.Fatalw("server error", "error", err)
	}
}
