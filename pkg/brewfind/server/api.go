package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/view"
)

type errorResponse struct {
	Error string `json:"error"`
}

// GetBreweriesJSON defines a GET handler returning the search view as JSON
func (h *httpServer) GetBreweriesJSON(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()
	logger := hlog.FromRequest(r)

	city, err := validateCity(w, vars)
	if err != nil {
		logger.Info().Err(err).Msg("city validation failed")
		return
	}

	typ, err := validateType(w, vars)
	if err != nil {
		logger.Info().Err(err).Msg("type validation failed")
		return
	}

	search := view.NewSearchView(h.directory, *logger)
	if err := search.Submit(r.Context(), city, typ); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snap := search.Snapshot()
	status := http.StatusOK
	if snap.State == view.StateError {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, snap)
}

// GetBreweryJSON defines a GET handler returning the detail view as JSON
func (h *httpServer) GetBreweryJSON(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["breweryId"]

	detail := view.NewDetailView(h.directory, *hlog.FromRequest(r), view.WithSurfacedErrors(h.surfaceDetailErrors))
	if err := detail.Load(r.Context(), id); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snap := detail.Snapshot()
	status := detailStatus(snap)
	if snap.State == view.StateLoading {
		status = http.StatusAccepted
	}
	writeJSON(w, status, snap)
}

// GetHealth reports that the process is serving.
func (h *httpServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validateCity(w http.ResponseWriter, vars url.Values) (string, error) {
	city := strings.TrimSpace(vars.Get("city"))
	if city == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: view.ErrCityRequired.Error()})
		return "", view.ErrCityRequired
	}
	return city, nil
}

func validateType(w http.ResponseWriter, vars url.Values) (dal.BreweryType, error) {
	typ, err := dal.ParseBreweryType(vars.Get("type"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return dal.TypeAny, err
	}
	return typ, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

