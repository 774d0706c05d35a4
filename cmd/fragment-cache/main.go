package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// Initialize composition root with all dependencies
	root, err := NewCompositionRoot()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Ensure cleanup on exit
	defer func() {
		if err := root.Cleanup(); err != nil {
			root.Logger.Error("Failed to cleanup resources", zap.Error(err))
		}
	}()

	// Serve on a Unix socket when configured, otherwise TCP
	go func() {
		var err error
		if socketPath := root.Config.Server.SocketPath; socketPath != "" {
			root.Logger.Info("Starting fragment cache on Unix socket", zap.String("socket_path", socketPath))
			err = root.HTTPServer.StartUnixSocket(socketPath)
		} else {
			root.Logger.Info("Starting fragment cache", zap.String("addr", root.Config.Server.ListenAddr))
			err = root.HTTPServer.Start(root.Config.Server.ListenAddr)
		}
		if err != nil {
			root.Logger.Error("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	root.Logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := root.HTTPServer.Stop(ctx); err != nil {
		root.Logger.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	root.Logger.Info("Server exited")
}
