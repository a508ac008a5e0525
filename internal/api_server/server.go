package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/client"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/dispatch"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flagstore"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
	handlers "github.com/adi1zhexen0v/erp-safari-hr/internal/handlers/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/i18n"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/pkg/log"
	"github.com/adi1zhexen0v/erp-safari-hr/pkg/metrics"
	"github.com/adi1zhexen0v/erp-safari-hr/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	flags    flagstore.Store
	listener net.Listener
}

// New returns a new instance of the HR workflow API server.
func New(
	cfg *config.Config,
	store store.Store,
	flags flagstore.Store,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		flags:    flags,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		log.Logger(zap.L(), "router"),
		chiMiddleware.Recoverer,
	)

	producer := events.NewEventProducer(&events.StdoutWriter{})
	translator := i18n.Default()

	dispatcher := dispatch.NewDispatcher(
		flight.NewRegistry(),
		client.NewSigningClient(s.cfg.Service.SigningBaseUrl, s.cfg.Service.SigningAPIKey),
		service.NewEventNotifier(producer),
		service.NewEventInvalidator(producer),
		translator,
	)

	handler := handlers.NewServiceHandler(
		service.NewApplicationService(s.store, producer),
		service.NewContractService(s.store, dispatcher, producer, s.cfg.Service.DocumentsBaseUrl),
		service.NewJobApplicationService(s.store),
		service.NewOnboardingService(s.store, s.flags, producer),
		translator,
	)
	handler.RegisterRoutes(router)

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)

		if err := producer.Close(); err != nil {
			zap.S().Named("api_server").Warnw("failed to close event producer", "error", err)
		}
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
