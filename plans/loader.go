package plans

import (
	"fmt"
	"os"
	"sort"

	"github.com/marcelsud/hookdash/auth"
	"gopkg.in/yaml.v3"
)

/* Loader keeps the plan table in memory
 * It starts from the built-in tiers; a plans.yaml can override or add tiers
 */

// File represents the structure of plans.yaml
type File struct {
	Plans []PlanConfig `yaml:"plans"`
}

// PlanConfig represents a single plan in the YAML file
type PlanConfig struct {
	Name         string `yaml:"name"`
	MaxEndpoints int    `yaml:"max_endpoints"`
}

type Loader struct {
	plans map[string]*Plan
}

func NewLoader(defaults ...Plan) *Loader {
	l := &Loader{plans: make(map[string]*Plan)}
	for _, p := range defaults {
		l.plans[p.Name] = &p
	}
	return l
}

// Load reads and parses a plans.yaml file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading plans file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing plans YAML: %w", err)
	}

	for _, pc := range file.Plans {
		plan := &Plan{Name: pc.Name, MaxEndpoints: pc.MaxEndpoints}
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("validating plan: %w", err)
		}
		l.plans[plan.Name] = plan
	}

	if _, ok := l.plans[auth.PlanFree]; !ok {
		return fmt.Errorf("validating plans: the %q plan is required", auth.PlanFree)
	}
	return nil
}

// Get returns the named plan, or the free plan when the name is unknown
func (l *Loader) Get(name string) Plan {
	if p, ok := l.plans[name]; ok {
		return *p
	}
	if p, ok := l.plans[auth.PlanFree]; ok {
		return *p
	}
	return Plan{Name: auth.PlanFree}
}

// List returns all loaded plans sorted by limit
func (l *Loader) List() []Plan {
	plans := make([]Plan, 0, len(l.plans))
	for _, p := range l.plans {
		plans = append(plans, *p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].MaxEndpoints == plans[j].MaxEndpoints {
			return plans[i].Name < plans[j].Name
		}
		return plans[i].MaxEndpoints < plans[j].MaxEndpoints
	})
	return plans
}
