// Package startup prepares the application server
package startup

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/application/container"
	"github.com/sauntrix/sauntrix-go/internal/presentation/http/server"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

// Initialize performs the complete startup sequence: wire singletons, bulk
// load the content cache, open the realtime streams, then serve HTTP until a
// shutdown signal arrives.
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("\033[35m" + `
  ███████╗ █████╗ ██╗   ██╗███╗   ██╗████████╗██████╗ ██╗██╗  ██╗
  ██╔════╝██╔══██╗██║   ██║████╗  ██║╚══██╔══╝██╔══██╗██║╚██╗██╔╝
  ███████╗███████║██║   ██║██╔██╗ ██║   ██║   ██████╔╝██║ ╚███╔╝
  ╚════██║██╔══██║██║   ██║██║╚██╗██║   ██║   ██╔══██╗██║ ██╔██╗
  ███████║██║  ██║╚██████╔╝██║ ╚████║   ██║   ██║  ██║██║██╔╝ ██╗
  ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝╚═╝╚═╝  ╚═╝
` + "\033[97m" + `
  Stronger Together, Shining Forever
` + "\033[0m")

	// Step 1: Create dependency injection container
	log.Println("Initializing dependency injection container...")
	appContainer := container.NewContainer()

	logger := appContainer.Logger
	logger.Startup().Info("Container initialization complete - switching to channeled logging")

	// Step 2: Bulk load the content cache
	logger.Startup().Info("Loading content from remote store...")
	startLoadTime := time.Now()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), config.StoreTimeout*2)
	appContainer.LoaderService.LoadAll(loadCtx)
	cancelLoad()

	logger.Startup().Info("Content load finished", "duration", time.Since(startLoadTime))

	// Step 3: Open realtime change streams
	logger.Startup().Info("Starting realtime sync...")
	if err := appContainer.SyncService.Start(); err != nil {
		logger.Startup().Error("Realtime sync failed to start", "error", err.Error())
	}

	// Step 4: Start HTTP server
	port := config.ServerPort
	httpServer := server.New(port, appContainer)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Step 5: Wait for shutdown signal
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	<-gracefulShutdown

	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	shutdownStart := time.Now()

	logger.Shutdown().Info("Stopping realtime sync...")
	appContainer.SyncService.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing remote store client...")
	appContainer.Store.Close()

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
