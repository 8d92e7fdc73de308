package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/view"
)

// Directory is the brewery data source the handlers query.
type Directory interface {
	view.Searcher
	view.Fetcher
}

// Options configures NewHTTPServer.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Directory    Directory
	Logger       zerolog.Logger
	// SurfaceDetailErrors shows an error on the brewery page when the
	// directory cannot provide the brewery.
	SurfaceDetailErrors bool
}

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(opts Options) (*http.Server, error) {
	server, err := newHTTPServer(opts)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         opts.Addr,
		Handler:      server.routes(),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}, nil
}

type httpServer struct {
	log                 zerolog.Logger
	directory           Directory
	surfaceDetailErrors bool
	pages               *renderer
}

func newHTTPServer(opts Options) (*httpServer, error) {
	directory := opts.Directory
	if directory == nil {
		directory = dal.NewClient(dal.DefaultBaseURL, dal.WithLogger(opts.Logger))
	}
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &httpServer{
		log:                 opts.Logger.With().Str("component", "server").Logger(),
		directory:           directory,
		surfaceDetailErrors: opts.SurfaceDetailErrors,
		pages:               pages,
	}, nil
}

func (h *httpServer) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(
		hlog.NewHandler(h.log),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		hlog.AccessHandler(h.logAccess),
	)

	r.HandleFunc("/", h.GetIndex).Methods(http.MethodGet)
	r.HandleFunc("/about", h.GetAbout).Methods(http.MethodGet)
	r.HandleFunc("/brewery/{breweryId}", h.GetBrewery).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/breweries", h.GetBreweriesJSON).Methods(http.MethodGet)
	api.HandleFunc("/breweries/{breweryId}", h.GetBreweryJSON).Methods(http.MethodGet)

	r.HandleFunc("/healthz", h.GetHealth).Methods(http.MethodGet)
	r.NotFoundHandler = hlog.NewHandler(h.log)(http.HandlerFunc(h.notFound))
	return r
}

func (h *httpServer) logAccess(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
