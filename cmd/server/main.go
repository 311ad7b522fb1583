package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/juryboard/juryboard/internal/app"
	"github.com/juryboard/juryboard/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to start service: %v", err)
	}
	defer service.Close()

	mux := handlers.NewRouter(service)
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting juryboard server on %s", service.Config.Server.Port)
	if service.Config.Server.EnableAuth {
		logger.Debug.Printf("Admin auth enabled, token header: %s", service.Config.Auth.TokenHeader)
	}
	if err := http.ListenAndServe(service.Config.Server.Port, mux); err != nil {
		logger.Error.Fatalf("Juryboard server failed: %v", err)
	}
}
