package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geocoord/internal/api"
	"geocoord/internal/app"
	"geocoord/internal/config"
	"geocoord/internal/platform/logging"

	log "github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"
)

// main is the application composition root.
// It wires concrete adapters (HTTP redirects, zone tables) behind ports and starts the HTTP server.
func main() {
	config.Load()
	settings := config.FromEnv()

	if err := logging.Configure(os.Stderr, settings.LogLevel, settings.LogFormat); err != nil {
		log.Fatal(err)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.WithError(err).Warn("set GOMAXPROCS failed")
	}

	parser, closeParser, err := app.NewParser(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer closeParser()

	router := api.NewRouter(parser)

	// Write timeout leaves room for a redirect lookup with retries.
	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      settings.RedirectTimeout*4 + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown failed")
		}
	}()

	log.WithField("addr", srv.Addr).Info("Server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
