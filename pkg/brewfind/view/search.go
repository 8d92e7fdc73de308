package view

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

// SearchSnapshot is a point in time copy of a SearchView.
type SearchSnapshot struct {
	State     State                `json:"state"`
	City      string               `json:"city"`
	Type      dal.BreweryType      `json:"type"`
	Total     int                  `json:"total"`
	Message   string               `json:"message,omitempty"`
	Breweries []dal.BrewerySummary `json:"breweries"`
	Histogram dal.PostalHistogram  `json:"histogram"`
}

// SearchView issues by-city searches and keeps the latest result set along
// with its postal histogram.
type SearchView struct {
	client Searcher
	log    zerolog.Logger

	mu        sync.Mutex
	state     State
	city      string
	typ       dal.BreweryType
	breweries []dal.BrewerySummary
	histogram dal.PostalHistogram
	message   string
}

// NewSearchView returns an idle SearchView backed by client.
func NewSearchView(client Searcher, logger zerolog.Logger) *SearchView {
	return &SearchView{
		client:    client,
		log:       logger.With().Str("component", "search").Logger(),
		histogram: dal.PostalHistogram{},
	}
}

// Submit runs one search. A blank city is rejected with ErrCityRequired before
// any request is made. Failures of the directory are reported through the
// view state and message, not the returned error.
//
// Submits are not cancelled by later ones: whichever response arrives last
// determines the state.
func (v *SearchView) Submit(ctx context.Context, city string, typ dal.BreweryType) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityRequired
	}

	v.mu.Lock()
	v.state = StateLoading
	v.city = city
	v.typ = typ
	v.mu.Unlock()

	breweries, err := v.client.SearchBreweries(ctx, dal.SearchQuery{City: city, Type: typ})

	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case err != nil:
		v.log.Error().Err(err).Str("city", city).Str("type", typ.String()).Msg("search failed")
		v.state = StateError
		v.message = MsgFetchFailed
	case len(breweries) == 0:
		v.state = StateEmpty
		v.message = MsgNoBreweries
		v.setBreweries(nil)
	default:
		v.log.Debug().Str("city", city).Int("count", len(breweries)).Msg("search populated")
		v.state = StatePopulated
		v.message = ""
		v.setBreweries(breweries)
	}
	return nil
}

// setBreweries replaces the result set and recomputes the histogram. Callers
// hold v.mu.
func (v *SearchView) setBreweries(breweries []dal.BrewerySummary) {
	v.breweries = breweries
	v.histogram = dal.Tally(breweries)
}

// Snapshot copies the current state of the view.
func (v *SearchView) Snapshot() SearchSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	breweries := make([]dal.BrewerySummary, len(v.breweries))
	copy(breweries, v.breweries)

	histogram := make(dal.PostalHistogram, len(v.histogram))
	for code, n := range v.histogram {
		histogram[code] = n
	}

	return SearchSnapshot{
		State:     v.state,
		City:      v.city,
		Type:      v.typ,
		Total:     len(breweries),
		Message:   v.message,
		Breweries: breweries,
		Histogram: histogram,
	}
}
