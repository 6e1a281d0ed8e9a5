package weatherservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"
	// The forecast call only needs "current" and "daily".
	oneCallExclude = "minutely,hourly,alerts"
)

type ClientOptions struct {
	APIKey     string
	BaseURL    string
	OneCallURL string
	Units      string
	Lang       string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the OpenWeatherMap "weather" and "onecall" endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	oneCallURL string
	units      string
	lang       string
	http       *http.Client
	log        *zap.Logger
}

func NewClient(opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	oneCall := strings.TrimRight(opts.OneCallURL, "/")
	if oneCall == "" {
		oneCall = base
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	units := opts.Units
	if units == "" {
		units = UnitsMetric
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    base,
		oneCallURL: oneCall,
		units:      units,
		lang:       opts.Lang,
		http:       hc,
		log:        logger,
	}, nil
}

// Units returns the unit system requested from the provider.
func (c *Client) Units() string { return c.units }

// CurrentByTown fetches current conditions for a town name.
func (c *Client) CurrentByTown(ctx context.Context, town string) (*Current, error) {
	town = strings.TrimSpace(town)
	if town == "" {
		return nil, ErrEmptyTown
	}

	q := url.Values{}
	q.Set("q", town)

	var cur Current
	if err := c.get(ctx, c.baseURL+"/weather", q, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

// CurrentByPosition fetches current conditions for a coordinate pair.
func (c *Client) CurrentByPosition(ctx context.Context, lat, lon float64) (*Current, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))

	var cur Current
	if err := c.get(ctx, c.baseURL+"/weather", q, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

// OneCall fetches the current + daily forecast block for a coordinate pair.
func (c *Client) OneCall(ctx context.Context, lat, lon float64) (*OneCall, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("exclude", oneCallExclude)

	var oc OneCall
	if err := c.get(ctx, c.oneCallURL+"/onecall", q, &oc); err != nil {
		return nil, err
	}
	return &oc, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("units", c.units)
	if c.lang != "" {
		q.Set("lang", c.lang)
	}
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", redact(endpoint, q), err)
	}
	defer resp.Body.Close()

	c.log.Debug("weather api call",
		zap.String("url", redact(endpoint, q)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// redact drops the api key from a URL before it is logged or surfaced in an error.
func redact(endpoint string, q url.Values) string {
	clean := url.Values{}
	for k, v := range q {
		if k == "appid" {
			continue
		}
		clean[k] = v
	}
	return endpoint + "?" + clean.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
