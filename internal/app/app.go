// Package app configures and runs application.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bmc-toolkit/hwisolation/config"
	httpcontroller "github.com/bmc-toolkit/hwisolation/internal/controller/http"
	"github.com/bmc-toolkit/hwisolation/internal/registry"
	"github.com/bmc-toolkit/hwisolation/internal/sysbus"
	"github.com/bmc-toolkit/hwisolation/internal/usecase/isolation"
	"github.com/bmc-toolkit/hwisolation/pkg/httpserver"
	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: " + cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	// Remote object model
	bus, err := sysbus.New(log, sysbus.CallTimeout(cfg.Bus.CallTimeout))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - sysbus.New: %w", err))
	}

	defer bus.Close()

	// Use case
	usecase := isolation.New(bus, registry.GetManager(), log)

	handler := setupHTTPHandler(cfg, log, usecase)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecase *isolation.UseCase) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpcontroller.NewRouter(handler, log, usecase, cfg)

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
