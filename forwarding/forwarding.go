package forwarding

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinRetries     = 1
	MaxRetries     = 10
	DefaultRetries = 5

	MinTimeout     = 5
	MaxTimeout     = 120
	DefaultTimeout = 30

	MaxTargetURLLength = 2048
	MaxErrorLength     = 500

	// LogPageSize is the number of attempts shown per log page.
	LogPageSize = 50
)

var (
	ErrNotFound = errors.New("forwarding config not found")
	ErrInvalid  = errors.New("invalid forwarding config")
	ErrInactive = errors.New("forwarding not configured or inactive")
)

/* Config is the relay target of one endpoint
 * An endpoint has at most one
 */
type Config struct {
	ID             string
	EndpointID     string
	TargetURL      string
	Active         bool
	MaxRetries     int
	TimeoutSeconds int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Settings is the user-editable part of a Config.
type Settings struct {
	TargetURL      string
	Active         bool
	MaxRetries     int
	TimeoutSeconds int
}

func DefaultSettings() Settings {
	return Settings{Active: true, MaxRetries: DefaultRetries, TimeoutSeconds: DefaultTimeout}
}

/* Normalize trims the target and clamps the numeric fields into range
 * It fails only on the target URL, which is never rewritten
 */
func (s Settings) Normalize() (Settings, error) {
	s.TargetURL = strings.TrimSpace(s.TargetURL)
	if s.TargetURL == "" {
		return Settings{}, fmt.Errorf("%w: target URL is required", ErrInvalid)
	}
	if !strings.HasPrefix(s.TargetURL, "http://") && !strings.HasPrefix(s.TargetURL, "https://") {
		return Settings{}, fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalid)
	}
	if utf8.RuneCountInString(s.TargetURL) > MaxTargetURLLength {
		return Settings{}, fmt.Errorf("%w: target URL must be at most %d characters", ErrInvalid, MaxTargetURLLength)
	}
	s.MaxRetries = clamp(s.MaxRetries, MinRetries, MaxRetries)
	s.TimeoutSeconds = clamp(s.TimeoutSeconds, MinTimeout, MaxTimeout)
	return s, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Log records one delivery attempt. Append-only.
type Log struct {
	ID             string
	ConfigID       string
	RequestID      string
	StatusCode     *int
	Success        bool
	ErrorMessage   string
	Attempt        int
	ResponseTimeMs *int64
	CreatedAt      time.Time
}

// Totals are the raw aggregates a store computes over the logs of one config.
type Totals struct {
	Total     int64
	Successes int64
	// AvgResponseMs averages only attempts with a measured response time.
	AvgResponseMs float64
}

type Stats struct {
	Total         int64
	Successes     int64
	Failures      int64
	SuccessRate   float64
	AvgResponseMs int64
}

// NewStats rounds the success rate to one decimal and truncates the average.
func NewStats(t Totals) Stats {
	s := Stats{
		Total:         t.Total,
		Successes:     t.Successes,
		Failures:      t.Total - t.Successes,
		AvgResponseMs: int64(t.AvgResponseMs),
	}
	if t.Total > 0 {
		rate := float64(t.Successes) / float64(t.Total) * 100
		s.SuccessRate = math.Round(rate*10) / 10
	}
	return s
}
