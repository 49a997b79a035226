package plans

import (
	"fmt"

	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/config"
)

/* Plan is a subscription tier and the number of endpoints it allows
 * A principal with an unknown plan is treated as free
 */
type Plan struct {
	Name         string
	MaxEndpoints int
}

// Validate checks if the plan configuration is valid
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.MaxEndpoints < 1 {
		return fmt.Errorf("max_endpoints must be at least 1 for plan %s (got %d)", p.Name, p.MaxEndpoints)
	}
	return nil
}

// Defaults builds the built-in free, pro and team tiers from the configured limits.
func Defaults(cfg config.Config) []Plan {
	return []Plan{
		{Name: auth.PlanFree, MaxEndpoints: cfg.FreeMaxEndpoints},
		{Name: auth.PlanPro, MaxEndpoints: cfg.ProMaxEndpoints},
		{Name: auth.PlanTeam, MaxEndpoints: cfg.TeamMaxEndpoints},
	}
}
