package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"aurora-grand/internal/storefront/api/http/handle"
	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/app/services"
	"aurora-grand/internal/xpkg/config"
	"aurora-grand/internal/xpkg/db"
	"aurora-grand/internal/xpkg/logger"

	brokermessage "aurora-grand/internal/storefront/adapter/broker_message"
	catalogadapter "aurora-grand/internal/storefront/adapter/catalog"
	dbadapter "aurora-grand/internal/storefront/adapter/db"
	"aurora-grand/internal/storefront/adapter/gateway"
	"aurora-grand/internal/storefront/adapter/notifier"

	"github.com/google/uuid"
)

var ErrServerClosed = errors.New("Server closed")

type Server struct {
	mux      *http.ServeMux
	cfg      *config.Config
	srv      *http.Server
	params   *core.StorefrontParams
	mylog    logger.Logger
	database *db.DB
	mb       *brokermessage.RabbitMQ
	notify   core.INotifier
	ctx      context.Context
	appCtx   context.Context
	mu       sync.Mutex
}

func NewServer(ctx, appCtx context.Context, cfg *config.Config, params *core.StorefrontParams, mylog logger.Logger) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		params: params,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run wires the adapters and services, then listens until the context is
// cancelled or the listener fails.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	if s.cfg.Catalog.Source == "database" {
		if err := s.initializeDatabase(); err != nil {
			mylog.Action("db_connection_failed").Error("Failed to connect to database", err)
			return err
		}
		mylog.Action("db_connected").Info("Successful database connection")
	}

	if s.cfg.RMQ.Enabled {
		if err := s.initializeRabbitMQ(); err != nil {
			mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
			return err
		}
		mylog.Action("mb_connected").Info("Successful message broker connection")
		s.notify = s.mb
	} else {
		s.notify = notifier.NewLog(s.mylog)
	}

	if err := s.Configure(); err != nil {
		mylog.Action("configure_failed").Error("Failed to configure storefront", err)
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.params.Port),
		Handler: s.withRequestID(s.mux),
	}
	s.mu.Unlock()

	mylog.With("port", s.params.Port, "catalog_source", s.cfg.Catalog.Source).Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.database != nil {
		if err := s.database.Close(); err != nil {
			s.mylog.Action("db_close_failed").Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Action("db_closed").Info("Database closed")
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
			return fmt.Errorf("mb close: %w", err)
		}
		s.mylog.Action("mb_closed").Info("Message broker closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) initializeDatabase() error {
	database, err := db.Start(s.appCtx, s.cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.database = database
	return nil
}

func (s *Server) initializeRabbitMQ() error {
	mb, err := brokermessage.New(s.cfg.RMQ, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	return nil
}

// Configure builds the catalog, cart and checkout services and registers the
// storefront routes.
func (s *Server) Configure() error {
	var source core.ICatalogSource
	switch s.cfg.Catalog.Source {
	case "database":
		source = dbadapter.NewCatalogRepo(s.database)
	default:
		source = catalogadapter.NewStatic(time.Duration(s.cfg.Catalog.FetchDelayMs) * time.Millisecond)
	}

	menuService, err := services.NewMenuService(s.appCtx, source, s.mylog)
	if err != nil {
		return err
	}

	pricing := services.Pricing{
		TaxRate:               s.cfg.Checkout.TaxRate,
		DeliveryFee:           s.cfg.Checkout.DeliveryFee,
		FreeDeliveryThreshold: s.cfg.Checkout.FreeDeliveryThreshold,
	}

	cartService := services.NewCartService(s.notify, s.mylog)
	payGateway := gateway.NewMock(time.Duration(s.cfg.Checkout.ProcessingDelayMs) * time.Millisecond)
	checkoutService := services.NewCheckoutService(cartService, pricing, payGateway, s.notify, s.mylog)

	menuHandler := handle.NewMenuHandler(menuService, s.mylog)
	cartHandler := handle.NewCartHandler(cartService, menuService, pricing, s.mylog)
	checkoutHandler := handle.NewCheckoutHandler(checkoutService, s.mylog)

	s.mux.Handle("GET /menu", menuHandler.List())
	s.mux.Handle("GET /cart", cartHandler.Get())
	s.mux.Handle("POST /cart/items", cartHandler.AddItem())
	s.mux.Handle("POST /cart/items/{id}/increment", cartHandler.Increment())
	s.mux.Handle("POST /cart/items/{id}/decrement", cartHandler.Decrement())
	s.mux.Handle("DELETE /cart/items/{id}", cartHandler.Remove())
	s.mux.Handle("POST /checkout", checkoutHandler.Submit())
	s.mux.Handle("POST /checkout/reset", checkoutHandler.Reset())
	return nil
}

// withRequestID tags every request with a request id for the logs.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		s.mylog.With("request_id", requestID).Debug("Request received", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
