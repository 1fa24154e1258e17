package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Handler serves the dashboard routes
type Handler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDecomposition(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler Handler
	router  *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(handler Handler, router *mux.Router) *Router {
	return &Router{
		handler: handler,
		router:  router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(logRequests)

	r.router.HandleFunc("/", r.handler.GetDashboard).Methods(http.MethodGet)
	r.router.HandleFunc("/api/v1/decomposition", r.handler.GetDecomposition).Methods(http.MethodGet)
	r.router.HandleFunc("/ping", r.handler.Ping).Methods(http.MethodGet)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
