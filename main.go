package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/common"
	"github.com/matst80/slask-directory/pkg/config"
	"github.com/matst80/slask-directory/pkg/messaging"
	"github.com/matst80/slask-directory/pkg/server"
	"github.com/matst80/slask-directory/pkg/storage"
	"github.com/matst80/slask-directory/pkg/types"
)

func startDebugServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	go func() {
		log.Printf("starting debug server on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("debug server error: %v", err)
		}
	}()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	db := storage.NewDiskStorage(cfg.Data.Folder)

	var tools []*types.Tool
	if err := db.LoadTools(&tools); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No tool data found in %s, starting empty", cfg.Data.Folder)
		} else {
			log.Fatalf("Could not load tools: %v", err)
		}
	}
	log.Printf("Loaded %d tools", len(tools))

	if err := db.LoadSettings(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Could not load settings: %v", err)
	}

	var currencies []*types.Currency
	if err := db.LoadCurrencies(&currencies); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Could not load currencies: %v", err)
	}
	var prices []*types.PlanPrice
	if err := db.LoadPrices(&prices); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Could not load prices: %v", err)
	}

	c := catalog.NewCatalog()
	c.SetTools(tools)

	srv := &server.WebServer{
		Catalog:    c,
		Db:         db,
		Currencies: currencies,
		Prices:     prices,
	}

	if cfg.HasRedis() {
		srv.Cache = server.NewCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Database)
		log.Printf("Response cache enabled, url: %s", cfg.Redis.Addr)
	}
	if cfg.HasAmqp() {
		events, err := messaging.NewDirectoryEvents(cfg.Amqp.Url, cfg.Amqp.Prefix)
		if err != nil {
			log.Fatalf("Could not connect to broker: %v", err)
		}
		srv.Events = events
		log.Printf("Event publishing enabled, prefix: %s", cfg.Amqp.Prefix)
	}

	startDebugServer(cfg.Server.DebugAddr)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.CreateHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	common.RunServerWithShutdown(httpServer, "directory api", cfg.Server.ShutdownTimeout, 0,
		func(ctx context.Context) error {
			return db.SaveSettings()
		},
		func(ctx context.Context) error {
			srv.Cache.Close()
			return srv.Events.Close()
		},
	)
}
