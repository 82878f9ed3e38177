// ABOUTME: Main entry point for the MCP weather server
// ABOUTME: Loads configuration and starts HTTP, WebSocket, and management servers

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/weather-mcp/internal/config"
	"github.com/harper/weather-mcp/internal/httpapi"
	"github.com/harper/weather-mcp/internal/insights"
	"github.com/harper/weather-mcp/internal/logger"
	"github.com/harper/weather-mcp/internal/management"
	"github.com/harper/weather-mcp/internal/mcp"
	"github.com/harper/weather-mcp/internal/weather"
	ws "github.com/harper/weather-mcp/internal/websocket"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weather-mcp",
		Short: "MCP weather server exposing weather data and AI advisories over JSON-RPC",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	serveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.DefaultYAML()
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	// .env is optional; environment wins over config file values either way.
	_ = godotenv.Load()

	logger.SetVerbose(verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	weatherSvc := weather.NewService(cfg.Weather.APIKey,
		weather.WithBaseURL(cfg.Weather.BaseURL),
		weather.WithTimeout(time.Duration(cfg.Weather.RequestTimeoutSeconds)*time.Second),
	)
	insightSvc := insights.NewService(weatherSvc, cfg.Insights.OpenAIAPIKey,
		insights.WithModel(cfg.Insights.Model),
		insights.WithMaxTokens(cfg.Insights.MaxTokens),
		insights.WithTemperature(cfg.Insights.Temperature),
	)

	dispatcher := mcp.NewDispatcher(weatherSvc, insightSvc)

	apiSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.HTTPHost, cfg.Server.HTTPPort),
		Handler:           httpapi.NewServer(dispatcher, cfg.CORS),
		ReadHeaderTimeout: 10 * time.Second,
	}
	wsSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.WebSocketHost, cfg.Server.WebSocketPort),
		Handler:           wsHandler(ws.NewServer(dispatcher)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	mgmtSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.ManagementHost, cfg.Server.ManagementPort),
		Handler:           management.NewServer(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 3)
	go func() {
		logger.Info("MCP HTTP transport listening on %s (POST /mcp)", apiSrv.Addr)
		errCh <- apiSrv.ListenAndServe()
	}()
	go func() {
		logger.Info("MCP WebSocket transport listening on %s (/mcp/ws)", wsSrv.Addr)
		errCh <- wsSrv.ListenAndServe()
	}()
	go func() {
		logger.Info("management API listening on %s", mgmtSrv.Addr)
		errCh <- mgmtSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, srv := range []*http.Server{apiSrv, wsSrv, mgmtSrv} {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown: %v", err)
		}
	}

	return nil
}

func wsHandler(srv *ws.Server) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp/ws", srv)
	return mux
}
