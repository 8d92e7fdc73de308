// Package view holds the search and detail view models. A view owns the
// state of one page and moves through idle, loading and one of populated,
// empty or error on each request.
package view

import (
	"context"
	"errors"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

// State is the lifecycle position of a view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateError
)

var stateNames = map[State]string{
	StateIdle:      "idle",
	StateLoading:   "loading",
	StatePopulated: "populated",
	StateEmpty:     "empty",
	StateError:     "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the state by name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// User facing messages.
const (
	MsgNoBreweries = "No breweries found in this city. Try a different one."
	MsgFetchFailed = "An error occurred while fetching data. Please try again."
	MsgNotFound    = "Brewery not found."
)

var (
	// ErrCityRequired is returned when a search is submitted without a city.
	ErrCityRequired = errors.New("city is required")
	// ErrIDRequired is returned when a detail view is loaded without an identifier.
	ErrIDRequired = errors.New("brewery id is required")
)

// Searcher lists breweries by city.
type Searcher interface {
	SearchBreweries(ctx context.Context, q dal.SearchQuery) ([]dal.BrewerySummary, error)
}

// Fetcher loads a single brewery.
type Fetcher interface {
	GetBrewery(ctx context.Context, id string) (dal.BreweryDetail, error)
}
