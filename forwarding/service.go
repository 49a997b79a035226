package forwarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/hookdash/internal/paging"
	"github.com/marcelsud/hookdash/webhook"
)

// Forwarder delivers stored requests to a config's target.
type Forwarder interface {
	ForwardWebhook(ctx context.Context, c Config, r webhook.Request, attempt int) (Log, error)
	ForwardWithRetries(ctx context.Context, c Config, r webhook.Request) (Log, error)
}

type UseCase interface {
	Get(ctx context.Context, endpointID string) (Config, error)
	Save(ctx context.Context, endpointID string, s Settings) (Config, error)
	Delete(ctx context.Context, c Config) error
	ListLogs(ctx context.Context, configID string, p paging.Page) ([]Log, int, error)
	Stats(ctx context.Context, configID string) (Stats, error)
	Replay(ctx context.Context, c Config, r webhook.Request) (Log, error)
}

type Service struct {
	Repo      Repository
	Forwarder Forwarder
	Now       func() time.Time
}

func NewService(repo Repository, forwarder Forwarder) *Service {
	return &Service{
		Repo:      repo,
		Forwarder: forwarder,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) Get(ctx context.Context, endpointID string) (Config, error) {
	c, err := s.Repo.SelectByEndpoint(ctx, endpointID)
	if errors.Is(err, ErrNotFound) {
		return Config{}, ErrNotFound
	}
	if err != nil {
		return Config{}, fmt.Errorf("selecting forwarding config: %w", err)
	}
	return c, nil
}

func (s *Service) Save(ctx context.Context, endpointID string, in Settings) (Config, error) {
	in, err := in.Normalize()
	if err != nil {
		return Config{}, err
	}
	now := s.Now()
	c, err := s.Repo.Upsert(ctx, Config{
		ID:             uuid.New().String(),
		EndpointID:     endpointID,
		TargetURL:      in.TargetURL,
		Active:         in.Active,
		MaxRetries:     in.MaxRetries,
		TimeoutSeconds: in.TimeoutSeconds,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return Config{}, fmt.Errorf("saving forwarding config: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, c Config) error {
	if err := s.Repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting forwarding config: %w", err)
	}
	return nil
}

func (s *Service) ListLogs(ctx context.Context, configID string, p paging.Page) ([]Log, int, error) {
	logs, total, err := s.Repo.SelectLogs(ctx, configID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting forwarding logs: %w", err)
	}
	return logs, total, nil
}

func (s *Service) Stats(ctx context.Context, configID string) (Stats, error) {
	t, err := s.Repo.SelectTotals(ctx, configID)
	if err != nil {
		return Stats{}, fmt.Errorf("selecting forwarding totals: %w", err)
	}
	return NewStats(t), nil
}

// Replay makes a single attempt numbered 1, regardless of earlier deliveries.
func (s *Service) Replay(ctx context.Context, c Config, r webhook.Request) (Log, error) {
	if !c.Active {
		return Log{}, ErrInactive
	}
	return s.Forwarder.ForwardWebhook(ctx, c, r, 1)
}
