package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/logger"
)

type Server struct {
	srv    *http.Server
	router *http.ServeMux
	l      *logger.Logger
	conf   Conf
	hotel  *hotel.Hotel
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, h *hotel.Hotel) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:    srv,
		router: mux,
		l:      conf.L,
		conf:   conf,
		hotel:  h,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
