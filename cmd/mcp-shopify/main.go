package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tailabs/mcp-shopify/internal/config"
	"github.com/tailabs/mcp-shopify/internal/middleware"
	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"
	_ "github.com/tailabs/mcp-shopify/internal/tools"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func main() {
	var transport string
	var listenAddr string
	flag.StringVar(&transport, "transport", "stdio", "Transport mode: stdio or sse")
	flag.StringVar(&listenAddr, "listen", ":8080", "Listen address for the SSE transport")
	flag.Parse()

	// Initialize logging. Stdout carries protocol frames in stdio mode, so
	// logs always go to stderr.
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logrus.SetLevel(cfg.ParsedLogLevel())

	// The single shared Admin API client used by every tool handler.
	client := shopify.NewClient(cfg, nil)

	s := server.NewMCPServer(
		"mcp-shopify",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithHooks(middleware.NewSessionHooks()),
		server.WithToolHandlerMiddleware(middleware.Logging),
	)

	// Register the full tool catalog using the global registry
	registry.RegisterAllTools(s, client)

	if transport == "stdio" {
		logrus.Info("Starting MCP Shopify server on stdio...")
		if err := server.ServeStdio(s); err != nil {
			logrus.Fatalf("Stdio server error: %v", err)
		}
		return
	}

	// Setup graceful shutdown for the SSE transport
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sse := server.NewSSEServer(s)
	go func() {
		logrus.WithField("listen", listenAddr).Info("Starting MCP Shopify SSE server...")
		if err := sse.Start(listenAddr); err != nil {
			logrus.Fatalf("Failed to start SSE server: %v", err)
		}
	}()

	<-sigChan
	logrus.Info("Received shutdown signal, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sse.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Failed to shut down SSE server")
	} else {
		logrus.Info("Server shutdown successfully")
	}
}
