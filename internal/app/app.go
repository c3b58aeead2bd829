package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/hotelier/internal/config"
	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/inventory"
	"github.com/avstrong/hotelier/internal/logger"
	"github.com/avstrong/hotelier/internal/transport/web"
)

func Run(l *logger.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	h := hotel.New(l, conf.Hotel.Name, nil)
	if err := inventory.Up(l, h); err != nil {
		return fmt.Errorf("seed room inventory: %w", err)
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Server.Host,
		Port:              conf.Server.Port,
		ReadHeaderTimeout: time.Duration(conf.Server.ReadHeaderTimeoutSeconds),
		LivenessEndpoint:  conf.Server.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, h)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(conf.Server.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Hotel %v is taking bookings on %v:%v...", h.Name(), webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
