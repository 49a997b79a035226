package endpoint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/hookdash/auth"
)

// QuotaChecker answers whether a principal may own one more endpoint.
type QuotaChecker interface {
	MayCreateEndpoint(ctx context.Context, p auth.Principal) (bool, error)
}

type UseCase interface {
	Create(ctx context.Context, owner auth.Principal, in Input) (Endpoint, error)
	List(ctx context.Context, ownerID string) ([]Endpoint, error)
	Get(ctx context.Context, id, ownerID string) (Endpoint, error)
	GetByID(ctx context.Context, id string) (Endpoint, error)
	Update(ctx context.Context, e Endpoint, p Patch) (Endpoint, error)
	Delete(ctx context.Context, e Endpoint) error
	IncrementRequestCount(ctx context.Context, id string) error
}

type Service struct {
	Repo  Repository
	Quota QuotaChecker
	Now   func() time.Time
}

func NewService(repo Repository, quota QuotaChecker) *Service {
	return &Service{
		Repo:  repo,
		Quota: quota,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) Create(ctx context.Context, owner auth.Principal, in Input) (Endpoint, error) {
	now := s.Now()
	e := Endpoint{
		ID:          uuid.New().String(),
		OwnerID:     owner.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		Response:    in.Response,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.Validate(); err != nil {
		return Endpoint{}, err
	}
	if s.Quota != nil {
		ok, err := s.Quota.MayCreateEndpoint(ctx, owner)
		if err != nil {
			return Endpoint{}, fmt.Errorf("checking endpoint quota: %w", err)
		}
		if !ok {
			return Endpoint{}, ErrQuotaExceeded
		}
	}
	if err := s.Repo.Insert(ctx, e); err != nil {
		return Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Endpoint, error) {
	all, err := s.Repo.SelectByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("selecting endpoints: %w", err)
	}
	return all, nil
}

/* Get is the tenant boundary: an endpoint owned by someone else is reported
 * exactly like one that does not exist
 */
func (s *Service) Get(ctx context.Context, id, ownerID string) (Endpoint, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return Endpoint{}, err
	}
	if e.OwnerID != ownerID {
		return Endpoint{}, ErrNotFound
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Endpoint, error) {
	e, err := s.Repo.Select(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Endpoint{}, ErrNotFound
	}
	if err != nil {
		return Endpoint{}, fmt.Errorf("selecting endpoint: %w", err)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, e Endpoint, p Patch) (Endpoint, error) {
	updated := p.Apply(e)
	if err := updated.Validate(); err != nil {
		return Endpoint{}, err
	}
	updated.UpdatedAt = s.Now()
	if err := s.Repo.Update(ctx, updated); err != nil {
		return Endpoint{}, fmt.Errorf("updating endpoint: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, e Endpoint) error {
	if err := s.Repo.Delete(ctx, e.ID); err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
	}
	return nil
}

func (s *Service) IncrementRequestCount(ctx context.Context, id string) error {
	if err := s.Repo.IncrementRequestCount(ctx, id); err != nil {
		return fmt.Errorf("incrementing request count: %w", err)
	}
	return nil
}
