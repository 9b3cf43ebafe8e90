// Command shinnku-server starts the catalogue/search HTTP API: it loads
// the TOML configuration, bootstraps the tree and search index from the
// two bucket catalogues, and serves the HTTP surface described in
// spec.md §6.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shinnku-nikaidou/shinnku-com/internal/appstate"
	"github.com/shinnku-nikaidou/shinnku-com/internal/config"
	"github.com/shinnku-nikaidou/shinnku-com/internal/httpapi"
	"github.com/shinnku-nikaidou/shinnku-com/internal/proxyfwd"
	"github.com/shinnku-nikaidou/shinnku-com/internal/wikicache"
	"github.com/shinnku-nikaidou/shinnku-com/internal/workerpool"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("bootstrap failed: cannot load config", "error", err)
		os.Exit(1)
	}

	state, err := appstate.Bootstrap(cfg.Catalogue.ShinnkuPath, cfg.Catalogue.Galgame0Path)
	if err != nil {
		log.Error("bootstrap failed: cannot load catalogues", "error", err)
		os.Exit(1)
	}
	log.Info("catalogues loaded", "search_index_size", len(state.SearchIndex))

	redisAddr := cfg.Redis.Host + ":" + strconv.Itoa(cfg.Redis.Port)
	wiki := wikicache.New(redisAddr, cfg.Redis.Password, cfg.Redis.Database, log)
	defer wiki.Close()

	server := &httpapi.Server{
		State:     state,
		Pool:      workerpool.New(0),
		WikiCache: wiki,
		Proxy:     proxyfwd.New(cfg.Server.ProxyBaseURL, &http.Client{Timeout: 30 * time.Second}),
		Log:       log,
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           server.NewMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(httpServer, log)
}

func waitForShutdown(httpServer *http.Server, log *slog.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down")
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
