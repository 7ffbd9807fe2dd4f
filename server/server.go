package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/manager"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/pagination"
	"github.com/kasuboski/mediarec/pkg/recommend"
)

const (
	shutdownTimeout = time.Second * 3
	defaultPopular  = 5
	maxPopular      = 20
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the recommendation server
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.MediaManager
	// mu serializes requests, the manager is not safe for concurrent use
	mu *sync.Mutex
}

// New creates a new recommendation server
func New(logger *zap.SugaredLogger, manager *manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		mu:         &sync.Mutex{},
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// statusFor maps manager errors to response codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, manager.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, manager.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, recommend.ErrCollaboratorUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Router builds the handler serving every route
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware(), s.MetricsMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()
	v1.Use(s.SerializeMiddleware())

	v1.HandleFunc("/lookup/{type}", s.Lookup()).Methods(http.MethodGet)
	v1.HandleFunc("/recommendations", s.Recommendations()).Methods(http.MethodGet)
	v1.HandleFunc("/popular/{type}", s.Popular()).Methods(http.MethodGet)
	v1.HandleFunc("/people/{role}", s.SearchPeople()).Methods(http.MethodGet)
	v1.HandleFunc("/genres/{type}/{name}", s.SearchGenre()).Methods(http.MethodGet)
	v1.HandleFunc("/stats", s.Stats()).Methods(http.MethodGet)
	v1.HandleFunc("/history", s.History()).Methods(http.MethodGet)

	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{http.MethodGet}),
		)(rtr),
	)
}

// Serve starts the http server and is a blocking call. The snapshot is saved
// once more when the server stops.
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.manager.Save(logger.WithCtx(shutdownCtx, s.baseLogger))

	return err
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

func mediaType(r *http.Request) (media.Type, error) {
	return media.ParseType(mux.Vars(r)["type"])
}

// Lookup looks a title up and returns it with its recommendations
func (s Server) Lookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		mt, err := mediaType(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		query := r.URL.Query().Get("query")
		result, err := s.manager.Lookup(r.Context(), mt, query)
		if err != nil {
			log.Debugw("lookup failed", "query", query, "error", err)
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// Recommendations returns the personalized recommendations
func (s Server) Recommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{
			Response: s.manager.Personalized(r.Context()),
		})
	}
}

// Popular returns the popular titles of a media type
func (s Server) Popular() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mt, err := mediaType(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		n := defaultPopular
		if raw := r.URL.Query().Get("n"); raw != "" {
			n, err = strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxPopular {
				writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("n must be between 1 and %d", maxPopular))
				return
			}
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: s.manager.Popular(r.Context(), mt, n),
		})
	}
}

// SearchPeople lists the top movies of an actor or director
func (s Server) SearchPeople() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		role, err := manager.ParseRole(mux.Vars(r)["role"])
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		query := r.URL.Query().Get("query")
		result, err := s.manager.SearchPeople(r.Context(), query, role)
		if err != nil {
			log.Debugw("people search failed", "query", query, "error", err)
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// SearchGenre lists popular titles of a genre
func (s Server) SearchGenre() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		mt, err := mediaType(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		name := mux.Vars(r)["name"]
		result, err := s.manager.SearchGenre(r.Context(), name, mt)
		if err != nil {
			log.Debugw("genre search failed", "genre", name, "error", err)
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// Stats summarizes what has been learned
func (s Server) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{
			Response: s.manager.Stats(r.Context()),
		})
	}
}

type HistoryResponse struct {
	Titles []string        `json:"titles"`
	Meta   pagination.Meta `json:"meta"`
}

// History pages through the watch history, most recent first
func (s Server) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		titles, meta := pagination.Slice(s.manager.History(), params)
		writeResponse(w, http.StatusOK, GenericResponse{
			Response: HistoryResponse{Titles: titles, Meta: meta},
		})
	}
}
