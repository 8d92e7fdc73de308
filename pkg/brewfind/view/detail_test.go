package view

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type fakeFetcher struct {
	calls     []string
	breweries map[string]dal.BreweryDetail
	err       error
}

func (f *fakeFetcher) GetBrewery(_ context.Context, id string) (dal.BreweryDetail, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return dal.BreweryDetail{}, f.err
	}
	b, ok := f.breweries[id]
	if !ok {
		return dal.BreweryDetail{}, fmt.Errorf("get brewery %q: %w", id, &dal.StatusError{Code: http.StatusNotFound, Status: "404 Not Found"})
	}
	return b, nil
}

var stoneBrewing = dal.BreweryDetail{
	ID:          "b1",
	Name:        "Stone",
	BreweryType: "regional",
	City:        "Escondido",
	State:       "California",
	WebsiteURL:  "https://stonebrewing.com",
}

func TestDetailViewLoad(t *testing.T) {
	fetcher := &fakeFetcher{breweries: map[string]dal.BreweryDetail{"b1": stoneBrewing}}
	v := NewDetailView(fetcher, zerolog.Nop())

	require.NoError(t, v.Load(context.Background(), "b1"))

	snap := v.Snapshot()
	assert.Equal(t, StatePopulated, snap.State)
	assert.Equal(t, "b1", snap.ID)
	require.NotNil(t, snap.Brewery)
	assert.Equal(t, stoneBrewing, *snap.Brewery)
	assert.Equal(t, []string{"b1"}, fetcher.calls)
}

func TestDetailViewNotFoundStaysLoading(t *testing.T) {
	fetcher := &fakeFetcher{}
	v := NewDetailView(fetcher, zerolog.Nop())

	require.NoError(t, v.Load(context.Background(), "123"))

	snap := v.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Nil(t, snap.Brewery)
	assert.Empty(t, snap.Message)
	assert.False(t, snap.NotFound)
}

func TestDetailViewSurfacedErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessage  string
		wantNotFound bool
	}{
		{name: "NotFound", wantMessage: MsgNotFound, wantNotFound: true},
		{name: "Transport", err: errors.New("dial tcp: timeout"), wantMessage: MsgFetchFailed},
		{
			name:        "ServerError",
			err:         &dal.StatusError{Code: http.StatusBadGateway, Status: "502 Bad Gateway"},
			wantMessage: MsgFetchFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewDetailView(&fakeFetcher{err: tc.err}, zerolog.Nop(), WithSurfacedErrors(true))

			require.NoError(t, v.Load(context.Background(), "123"))

			snap := v.Snapshot()
			assert.Equal(t, StateError, snap.State)
			assert.Equal(t, tc.wantMessage, snap.Message)
			assert.Equal(t, tc.wantNotFound, snap.NotFound)
		})
	}
}

func TestDetailViewRequiresID(t *testing.T) {
	fetcher := &fakeFetcher{}
	v := NewDetailView(fetcher, zerolog.Nop())

	require.ErrorIs(t, v.Load(context.Background(), " "), ErrIDRequired)
	assert.Empty(t, fetcher.calls)
	assert.Equal(t, StateIdle, v.Snapshot().State)
}

func TestDetailViewReload(t *testing.T) {
	fetcher := &fakeFetcher{breweries: map[string]dal.BreweryDetail{"b1": stoneBrewing}}
	v := NewDetailView(fetcher, zerolog.Nop())

	require.NoError(t, v.Load(context.Background(), "b1"))
	require.NoError(t, v.Load(context.Background(), "missing"))

	snap := v.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, "missing", snap.ID)
	assert.Nil(t, snap.Brewery)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "populated", StatePopulated.String())
	assert.Equal(t, "unknown", State(42).String())

	text, err := StateEmpty.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "empty", string(text))
}
