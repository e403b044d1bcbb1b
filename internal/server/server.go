package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/refilllocal/directory/pkg/configuration"
	"github.com/refilllocal/directory/pkg/httpapi"
	"github.com/refilllocal/directory/pkg/middleware"
)

// Controller is anything that can mount its routes onto the API router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

type Options struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Pool          *pgxpool.Pool
	Controllers   []Controller
}

type HTTPServer struct {
	logger      *logrus.Logger
	conf        *configuration.Configuration
	pool        *pgxpool.Pool
	controllers []Controller
	srv         *http.Server
}

func New(options *Options) *HTTPServer {
	return &HTTPServer{
		logger:      options.Logger,
		conf:        options.Configuration,
		pool:        options.Pool,
		controllers: options.Controllers,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(
		middleware.WithLogger(s.logger),
		middleware.WithPool(s.pool),
	)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	for _, controller := range s.controllers {
		controller.Register(api)
	}
	return r
}

func (s *HTTPServer) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.conf.Origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(s.Router())
}

func (s *HTTPServer) Start(socketAddress string) error {
	s.srv = &http.Server{
		Addr:              socketAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		httpapi.WriteError(w, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database is unreachable", nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
