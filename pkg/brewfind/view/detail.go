package view

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

// DetailSnapshot is a point in time copy of a DetailView.
type DetailSnapshot struct {
	State   State              `json:"state"`
	ID      string             `json:"id"`
	Message string             `json:"message,omitempty"`
	Brewery *dal.BreweryDetail `json:"brewery,omitempty"`
	// NotFound is set when the directory reported the identifier as unknown.
	NotFound bool `json:"not_found,omitempty"`
}

// DetailView loads one brewery by identifier.
type DetailView struct {
	client        Fetcher
	log           zerolog.Logger
	surfaceErrors bool

	mu       sync.Mutex
	state    State
	id       string
	brewery  *dal.BreweryDetail
	message  string
	notFound bool
}

// DetailOption configures a DetailView.
type DetailOption func(*DetailView)

// WithSurfacedErrors makes a failed load move the view to StateError with a
// user facing message. Without it a failed load is only logged and the view
// stays in StateLoading.
func WithSurfacedErrors(enabled bool) DetailOption {
	return func(v *DetailView) {
		v.surfaceErrors = enabled
	}
}

// NewDetailView returns an idle DetailView backed by client.
func NewDetailView(client Fetcher, logger zerolog.Logger, opts ...DetailOption) *DetailView {
	v := &DetailView{
		client: client,
		log:    logger.With().Str("component", "detail").Logger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches the brewery identified by id.
func (v *DetailView) Load(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDRequired
	}

	v.mu.Lock()
	v.state = StateLoading
	v.id = id
	v.brewery = nil
	v.message = ""
	v.notFound = false
	v.mu.Unlock()

	v.log.Debug().Str("id", id).Msg("fetching brewery")
	brewery, err := v.client.GetBrewery(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		var statusErr *dal.StatusError
		event := v.log.Error().Err(err).Str("id", id)
		if errors.As(err, &statusErr) {
			event = event.Int("status", statusErr.Code)
		}
		event.Msg("failed to fetch brewery")

		if !v.surfaceErrors {
			return nil
		}
		v.state = StateError
		v.notFound = errors.Is(err, dal.ErrNotFound)
		if v.notFound {
			v.message = MsgNotFound
		} else {
			v.message = MsgFetchFailed
		}
		return nil
	}

	v.state = StatePopulated
	v.brewery = &brewery
	return nil
}

// Snapshot copies the current state of the view.
func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := DetailSnapshot{
		State:    v.state,
		ID:       v.id,
		Message:  v.message,
		NotFound: v.notFound,
	}
	if v.brewery != nil {
		b := *v.brewery
		snap.Brewery = &b
	}
	return snap
}
