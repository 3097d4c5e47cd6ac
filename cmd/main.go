package main

import (
	"context"
	"livebets/parse_bovada/cmd/config"
	"livebets/parse_bovada/internal/api"
	"livebets/parse_bovada/internal/display"
	"livebets/parse_bovada/internal/entity"
	"livebets/parse_bovada/internal/sender"
	"livebets/parse_bovada/internal/service"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
}

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())

	// Logs go to stderr, the monitor itself draws on stdout.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger.Info().Msg(">> Starting parse_bovada")
	appConfig, err := config.ProvideAppMPConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load app configuration")
	}

	sendChan := make(chan entity.Snapshot, 16)
	defer close(sendChan)

	api := api.New(appConfig.APIConfig)
	console := display.New(os.Stdout)
	sender := sender.New(sendChan, &logger)
	service := service.New(api, console, sendChan, &logger)

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go sender.Run(ctx, wg)

	logger.Info().Msgf("Start polling: %s", api.EventsURL())

	wg.Add(1)
	go service.Run(ctx, appConfig.APIConfig, wg)

	http.HandleFunc("/health", HealthCheckHandler)
	http.HandleFunc("/output", sender.HandleClientConn)

	server := &http.Server{Addr: ":" + appConfig.Port}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	cancelFunc()
	wg.Wait()

	if err = server.Shutdown(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to stop server")
	}

	logger.Info().Msg(">> Stopping parse_bovada")
}
