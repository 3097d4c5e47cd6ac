package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"livebets/parse_bovada/cmd/config"
	"net/http"
	"net/url"
	"time"
)

// StatusError is a non-2xx answer from the events endpoint. The display
// layer shows it with a remediation hint, everything else stays generic.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s from %s", e.Status, e.URL)
}

type API struct {
	cfg    config.APIConfig
	client *http.Client
}

func New(cfg config.APIConfig) *API {
	transport := &http.Transport{}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			fmt.Printf("[ERROR] bad proxy URL: %v\n", err)
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   time.Second * time.Duration(cfg.Timeout),
	}

	return &API{
		cfg:    cfg,
		client: client,
	}
}

// EventsURL is the full URL polled each cycle, shown in the console header.
func (api *API) EventsURL() string {
	return api.cfg.Url + api.cfg.EventsUrl
}

// FetchEvents does a single GET and decodes the body as arbitrary JSON.
// The payload shape is undocumented and unstable, so no struct decoding
// here - the parse package digs values out defensively.
func (api *API) FetchEvents(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.EventsURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", api.cfg.UserAgent)
	req.Header.Set("Accept", "application/json,text/plain,*/*")
	req.Header.Set("Referer", api.cfg.Url+api.cfg.RefererUrl)

	resp, err := api.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			URL:    api.EventsURL(),
			Code:   resp.StatusCode,
			Status: resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload any
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}
