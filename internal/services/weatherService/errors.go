package weatherservice

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no OpenWeatherMap key is configured.
	ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key (set FORECAST_API_KEY or api.key)")
	// ErrEmptyTown is returned when a town lookup is requested with a blank name.
	ErrEmptyTown = errors.New("town name cannot be empty")
	// ErrNoLocation is returned when automatic location detection yields nothing usable.
	ErrNoLocation = errors.New("no location info in detection response")
	ErrEmptyQuery = errors.New("query needs a town, coordinates or auto-detection")
)

// APIError is a non-2xx reply from the weather provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather api: %s (HTTP %d)", e.Message, e.StatusCode)
}
