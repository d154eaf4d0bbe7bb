package hadatetime

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Log is the package logger. Fetches log one record each at a level
// derived from the outcome, so the default info level stays silent while
// things work.
var Log = logrus.New()

// Fetcher queries one date/time sensor. Config may be reassigned or
// mutated between calls; each call works on its own copy.
type Fetcher struct {
	Config Config

	id string
}

func New(cfg Config) *Fetcher {
	return &Fetcher{Config: cfg, id: uuid.NewString()}
}

// CurrentDateTime fetches the sensor state and maps it onto a Result.
// Every failure comes back as a Result carrying an error message; there
// is no error return and the call never panics.
func (f *Fetcher) CurrentDateTime() *Result {
	cfg := f.Config.trimmed()
	if field := cfg.missing(); field != "" {
		return ErrorResult(field + " is not set.")
	}

	reqURL := cfg.BaseURL + statesPath + cfg.SensorName
	headers := http.Header{
		"Authorization": {"Bearer " + cfg.APIToken},
		"Content-Type":  {"application/json"},
	}

	var state SensorState
	start := time.Now()
	status, err := getJSON(reqURL, headers, &state)
	f.report(reqURL, status, time.Since(start), err)
	if err != nil {
		return ErrorResult(fetchErrorMessage(err, cfg.SensorName))
	}

	if state.State == nil {
		return ErrorResult("No 'state' field in sensor data.")
	}
	return NewResult(*state.State, cfg.Timezone)
}

// Map a fetch error onto its user-facing message
func fetchErrorMessage(err error, sensor string) string {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP error for '%s': %v (status %d)", sensor, statusErr, statusErr.StatusCode)
	case isTimeout(err):
		return fmt.Sprintf("Timeout while fetching '%s'.", sensor)
	case isDecodeError(err):
		return fmt.Sprintf("Invalid JSON from sensor '%s'.", sensor)
	default:
		return fmt.Sprintf("Network error fetching '%s': %v", sensor, err)
	}
}

// Log one record per fetch, level chosen by outcome
func (f *Fetcher) report(reqURL string, status int, elapsed time.Duration, err error) {
	entry := Log.WithFields(logrus.Fields{
		"fetcher":       f.id,
		"method":        http.MethodGet,
		"url":           reqURL,
		"status":        status,
		"response_time": elapsed,
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	switch {
	case err != nil || status >= 400:
		entry.Error("fetch sensor state")
	case status >= 300:
		entry.Warn("fetch sensor state")
	default:
		entry.Debug("fetch sensor state")
	}
}
