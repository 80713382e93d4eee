package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/moralmaze/pkg/api/handlers"
	"github.com/cbodonnell/moralmaze/pkg/api/middleware"
	"github.com/cbodonnell/moralmaze/pkg/game"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port    int
	TLS     *TLSConfig
	Session *game.SessionController
	// Stream serves GET /api/stream. Optional.
	Stream        http.Handler
	AllowedOrigin string
}

// NewRouter routes every session operation under /api.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	session := opts.Session

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/ping", handlers.HandlePing()).Methods(http.MethodGet)
	api.HandleFunc("/state", handlers.HandleGetState(session)).Methods(http.MethodGet)
	api.HandleFunc("/state/restart", handlers.HandleRestart(session)).Methods(http.MethodPost)
	api.HandleFunc("/maze", handlers.HandleGetMaze(session)).Methods(http.MethodGet)
	api.HandleFunc("/maze/mutations", handlers.HandleMutateWalls(session)).Methods(http.MethodPost)
	api.HandleFunc("/decisions/active", handlers.HandleSetActiveDecisions(session)).Methods(http.MethodPost)

	player := api.PathPrefix("/player").Subrouter()
	player.HandleFunc("/move", handlers.HandleMove(session)).Methods(http.MethodPost)
	player.HandleFunc("/jump", handlers.HandleJump(session)).Methods(http.MethodPost)
	player.HandleFunc("/sync_position", handlers.HandleSyncPosition(session)).Methods(http.MethodPost)

	ally := api.PathPrefix("/ally").Subrouter()
	ally.HandleFunc("/lift/start", handlers.HandleLiftStart(session)).Methods(http.MethodPost)
	ally.HandleFunc("/lift/throw", handlers.HandleLiftThrow(session)).Methods(http.MethodPost)
	ally.HandleFunc("/dissolve", handlers.HandleDissolve(session)).Methods(http.MethodPost)
	ally.HandleFunc("/trap", handlers.HandlePlaceTrap(session)).Methods(http.MethodPost)
	ally.HandleFunc("/freeze/hit", handlers.HandleFreezeHit(session)).Methods(http.MethodPost)
	ally.HandleFunc("/blink", handlers.HandleBlink(session)).Methods(http.MethodPost)
	ally.HandleFunc("/jump", handlers.HandleAllyJump(session)).Methods(http.MethodPost)
	ally.HandleFunc("/expand", handlers.HandleExpand(session)).Methods(http.MethodPost)

	hero := api.PathPrefix("/hero").Subrouter()
	hero.HandleFunc("/escape", handlers.HandleEscape(session)).Methods(http.MethodPost)
	hero.HandleFunc("/shield", handlers.HandleActivateShield(session)).Methods(http.MethodPost)

	decision := api.PathPrefix("/decision").Subrouter()
	decision.HandleFunc("/start", handlers.HandleStartDecision(session)).Methods(http.MethodPost)
	decision.HandleFunc("/submit", handlers.HandleSubmitDecision(session)).Methods(http.MethodPost)

	api.HandleFunc("/timeline", handlers.HandleGetTimeline(session)).Methods(http.MethodGet)
	if opts.Stream != nil {
		api.Handle("/stream", opts.Stream).Methods(http.MethodGet)
	}

	return middleware.NewCORSMiddleware(opts.AllowedOrigin)(r)
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
