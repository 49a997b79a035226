package plans_test

import (
	"context"
	"errors"
	"testing"

	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/plans"
	"github.com/marcelsud/hookdash/plans/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaChecker(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		plan  string
		count int
		want  bool
	}{
		{"free below limit", auth.PlanFree, 1, true},
		{"free at limit", auth.PlanFree, 2, false},
		{"pro below limit", auth.PlanPro, 24, true},
		{"pro at limit", auth.PlanPro, 25, false},
		{"unknown plan uses free", "gold", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := mocks.NewEndpointCounter(t)
			counter.On("CountByOwner", ctx, "user-1").Return(tt.count, nil)
			q := plans.NewQuotaChecker(defaultLoader(), counter)

			ok, err := q.MayCreateEndpoint(ctx, auth.Principal{ID: "user-1", Plan: tt.plan})

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("count failure", func(t *testing.T) {
		counter := mocks.NewEndpointCounter(t)
		counter.On("CountByOwner", ctx, "user-1").Return(0, errors.New("db down"))
		q := plans.NewQuotaChecker(defaultLoader(), counter)

		_, err := q.MayCreateEndpoint(ctx, auth.Principal{ID: "user-1"})

		assert.ErrorContains(t, err, "counting endpoints")
	})
}
