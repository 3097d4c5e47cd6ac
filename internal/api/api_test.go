package api

import (
	"context"
	"errors"
	"livebets/parse_bovada/cmd/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(serverURL string) *API {
	return New(config.APIConfig{
		Url:        serverURL,
		EventsUrl:  "/events",
		RefererUrl: "/sports/basketball/college-basketball",
		UserAgent:  "test-agent/1.0",
		Timeout:    5,
	})
}

func TestFetchEvents_OK(t *testing.T) {
	var gotUserAgent, gotAccept, gotReferer string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotReferer = r.Header.Get("Referer")
		w.Write([]byte(`{"events": [{"id": 1}]}`))
	}))
	defer ts.Close()

	api := newTestAPI(ts.URL)

	payload, err := api.FetchEvents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-agent/1.0", gotUserAgent)
	assert.Equal(t, "application/json,text/plain,*/*", gotAccept)
	assert.Equal(t, ts.URL+"/sports/basketball/college-basketball", gotReferer)

	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "events")
}

func TestFetchEvents_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	api := newTestAPI(ts.URL)

	_, err := api.FetchEvents(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, ts.URL+"/events", statusErr.URL)
}

func TestFetchEvents_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer ts.Close()

	api := newTestAPI(ts.URL)

	_, err := api.FetchEvents(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
