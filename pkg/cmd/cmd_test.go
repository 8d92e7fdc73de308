package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/config"
	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/view"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func newDirectory(t *testing.T) (*httptest.Server, *int64) {
	t.Helper()

	var calls int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("by_city") {
		case "Brooklyn":
			_, _ = w.Write([]byte(`[
				{"id":"b1","name":"Other Half","postal_code":"11201"},
				{"id":"b2","name":"Grimm","postal_code":"11201"},
				{"id":"b3","name":"Sweetwater","postal_code":"30301"}
			]`))
		case "Broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func TestSearchCmd(t *testing.T) {
	ts, _ := newDirectory(t)

	out, err := run(t, "search", "--api-base-url", ts.URL, "--city", "Brooklyn")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Breweries: 3")
	assert.Contains(t, out, "Other Half")
	assert.Contains(t, out, "Breweries by Postal Code")
	assert.Contains(t, out, "11201        "+strings.Repeat("#", histogramBarWidth)+" 2")
	assert.Contains(t, out, "30301        "+strings.Repeat("#", histogramBarWidth/2)+" 1")
}

func TestSearchCmdNoResults(t *testing.T) {
	ts, _ := newDirectory(t)

	out, err := run(t, "search", "--api-base-url", ts.URL, "--city", "Nowhere", "--type", "nano")
	require.NoError(t, err)
	assert.Contains(t, out, view.MsgNoBreweries)
	assert.Contains(t, out, "Total Breweries: 0")
	assert.NotContains(t, out, "Breweries by Postal Code")
}

func TestSearchCmdErrors(t *testing.T) {
	ts, calls := newDirectory(t)

	_, err := run(t, "search", "--api-base-url", ts.URL, "--city", "Broken")
	require.EqualError(t, err, view.MsgFetchFailed)

	_, err = run(t, "search", "--api-base-url", ts.URL, "--city", "  ")
	require.ErrorIs(t, err, view.ErrCityRequired)

	_, err = run(t, "search", "--api-base-url", ts.URL, "--city", "Brooklyn", "--type", "taproom")
	require.Error(t, err)

	_, err = run(t, "search", "--api-base-url", ts.URL)
	require.Error(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestConfigShowCmd(t *testing.T) {
	out, err := run(t, "config", "show", "--api-base-url", "http://localhost:4000/v1")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: http://localhost:4000/v1")
	assert.Contains(t, out, "surface_errors: false")
}

func TestConfigShowRejectsBadConfig(t *testing.T) {
	_, err := run(t, "config", "show", "--log-format", "xml")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	assert.Equal(t, zerolog.InfoLevel, newLogger(config.LogConfig{Level: "loud"}, &buf).GetLevel())
}
