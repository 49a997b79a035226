package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/hookdash/internal/paging"
	"github.com/rs/zerolog"
)

// PageSize is the number of requests shown per listing page.
const PageSize = 20

// Counter is the part of the endpoint registry the store needs.
type Counter interface {
	IncrementRequestCount(ctx context.Context, id string) error
}

type UseCase interface {
	Store(ctx context.Context, endpointID string, in Incoming) (Request, error)
	List(ctx context.Context, endpointID string, f Filter, p paging.Page) ([]Request, int, error)
	Get(ctx context.Context, id, endpointID string) (Request, error)
	Summary(ctx context.Context, ownerID string) (Summary, error)
}

type Service struct {
	Repo    Repository
	Counter Counter
	Logger  zerolog.Logger
	Now     func() time.Time
}

func NewService(repo Repository, counter Counter) *Service {
	return &Service{
		Repo:    repo,
		Counter: counter,
		Logger:  zerolog.Nop(),
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

/* Store persists the request before bumping the endpoint counter
 * A failed increment is only logged: the row is stored and the sender gets its response
 */
func (s *Service) Store(ctx context.Context, endpointID string, in Incoming) (Request, error) {
	r := Request{
		ID:          uuid.New().String(),
		EndpointID:  endpointID,
		Method:      strings.ToUpper(in.Method),
		Headers:     nonNil(in.Headers),
		Body:        in.Body,
		QueryParams: nonNil(in.QueryParams),
		ContentType: in.ContentType,
		SourceIP:    in.SourceIP,
		BodySize:    int64(len(in.Body)),
		CreatedAt:   s.Now(),
	}
	if err := s.Repo.Insert(ctx, r); err != nil {
		return Request{}, fmt.Errorf("inserting webhook request: %w", err)
	}
	if err := s.Counter.IncrementRequestCount(ctx, endpointID); err != nil {
		s.Logger.Error().Err(err).
			Str("endpoint_id", endpointID).
			Str("request_id", r.ID).
			Msg("incrementing request count")
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, endpointID string, f Filter, p paging.Page) ([]Request, int, error) {
	f.Method = strings.ToUpper(strings.TrimSpace(f.Method))
	f.Search = strings.TrimSpace(f.Search)
	all, total, err := s.Repo.SelectByEndpoint(ctx, endpointID, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting webhook requests: %w", err)
	}
	return all, total, nil
}

func (s *Service) Get(ctx context.Context, id, endpointID string) (Request, error) {
	r, err := s.Repo.Select(ctx, id, endpointID)
	if errors.Is(err, ErrNotFound) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, fmt.Errorf("selecting webhook request: %w", err)
	}
	return r, nil
}

// Summary counts "today" from midnight UTC.
func (s *Service) Summary(ctx context.Context, ownerID string) (Summary, error) {
	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sum, err := s.Repo.SummaryByOwner(ctx, ownerID, midnight)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing webhook requests: %w", err)
	}
	return sum, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
