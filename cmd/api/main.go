package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JusmeJr93/random-user-gen-backend/config"
	"github.com/JusmeJr93/random-user-gen-backend/generator"
	"github.com/JusmeJr93/random-user-gen-backend/hub"
	"github.com/JusmeJr93/random-user-gen-backend/locale"
	"github.com/JusmeJr93/random-user-gen-backend/logger"
)

func main() {
	config, err := config.New()
	if err != nil {
		stdlog.Fatalf("failed to get config: %v", err)
	}

	log := logger.New(config)

	table, err := locale.NewTable()
	if err != nil {
		log.Fatalf("failed to load locale profiles: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := &handlers{
		config: config,
		log:    log,
		table:  table,
		gen:    generator.New(table, log, generator.Options{ReproducibleErrors: config.ReproducibleErrors}),
		hub:    hub.New(log),
	}
	go h.hub.Run(ctx)

	srv := &http.Server{
		Addr:         config.APIAddr,
		Handler:      newRouter(h),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		log.Println("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}()

	log.Printf("starting HTTP server on http://%s", config.APIAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("error serving HTTP: %v", err)
	}
	<-idle
}
