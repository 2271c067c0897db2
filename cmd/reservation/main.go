// Command reservation is the interactive seat booking menu for one flight.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/flight-seat-reservation/internal/cli"
	"github.com/iliyamo/flight-seat-reservation/internal/config"
	"github.com/iliyamo/flight-seat-reservation/internal/logger"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
	"github.com/iliyamo/flight-seat-reservation/internal/service"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logger.Init(cfg) // logs go to LOG_FILE so stdout stays the menu
	log := logger.For("menu")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	view := &cli.ViewBuffer{}
	svc, closeArchive, err := service.Setup(ctx, cfg, reservation.WithRenderer(view))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start: %v\n", err)
		log.WithError(err).Fatal("setup failed")
	}
	defer func() { _ = closeArchive() }()

	if err := cli.NewMenu(svc, view, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("menu stopped")
	}
}
