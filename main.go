package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardgen/config"
	"git.thinkinpower.net/cardgen/data"
	"git.thinkinpower.net/cardgen/export"
	"git.thinkinpower.net/cardgen/middleware"
	"git.thinkinpower.net/cardgen/route"
)

func setMode(mode string) {
	switch mode {
	case data.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case data.RunModeTest:
		gin.SetMode(gin.TestMode)
	case data.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logger.InfoLevel)

	cfg := config.Load()
	port := flag.Int("p", cfg.Port, "-p 8080")
	mode := flag.String("m", cfg.Mode, "-m [dev|test|release]")
	tempDir := flag.String("d", cfg.TempDir, "-d /home/testuser/cardgen/temp")
	flag.Parse()
	cfg.Port = *port
	cfg.Mode = *mode
	cfg.TempDir = *tempDir

	if cfg.TempDir != "" {
		cleaner := export.NewCleaner(cfg.TempDir, cfg.ExportTTL)
		go func() { cleaner.Watch() }()
	}

	//启动http服务
	logger.Info("启动http服务...")
	setMode(cfg.Mode)
	r := gin.New()
	r.Use(middleware.RequestId())
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	route.Register(r, cfg)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil {
			logger.Infof("listen: %s", err.Error())
		}
	}()
	logger.Infof("启动http服务成功, port: %d", cfg.Port)

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down Server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server Shutdown failure.", err)
	}
	logger.Info("Server exit.")
}
