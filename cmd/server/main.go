package main // Entry point of the HTTP API

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"                     // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // recover + request id
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/flight-seat-reservation/internal/config"
	"github.com/iliyamo/flight-seat-reservation/internal/handler"
	"github.com/iliyamo/flight-seat-reservation/internal/logger"
	"github.com/iliyamo/flight-seat-reservation/internal/middleware"
	"github.com/iliyamo/flight-seat-reservation/internal/queue"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
	"github.com/iliyamo/flight-seat-reservation/internal/router"
	"github.com/iliyamo/flight-seat-reservation/internal/service"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadServer() // Load environment config
	logger.Init(cfg)
	log := logger.For("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, closeArchive, err := service.Setup(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("setup failed")
	}
	defer func() { _ = closeArchive() }()

	// Pick up the last snapshot, if any.
	if res, err := svc.Load(ctx); err != nil && !errors.Is(err, reservation.ErrNoSnapshot) {
		log.WithError(err).Warn("startup load failed; starting empty")
	} else if err == nil {
		log.WithFields(logrus.Fields{"loaded": res.Loaded, "skipped": res.Skipped}).Info("snapshot restored")
	}

	if cfg.EventsEnabled {
		go func() {
			err := queue.StartBookingConsumer(ctx, cfg.AMQPURL, cfg.EventsQueue, logger.Writer(cfg.BookingLogFile))
			log.WithError(err).Info("booking consumer stopped")
		}()
	}

	// Rate limiting is optional: without Redis every request passes.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unreachable; rate limiting disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	bookings := handler.NewBookingHandler(svc)
	router.RegisterRoutes(e, bookings) // Register application routes
	router.RegisterAPI(e,
		handler.NewAuthHandler(cfg),
		bookings,
		cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "flight": cfg.FlightCode}).Info("listening")

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
