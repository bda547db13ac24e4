// Package pipeline provides the pure in-memory transforms that turn the
// aggregated lead collection into a displayable page: filtering, sorting,
// pagination, and the per-view status-suppression policy.
package pipeline

import (
	_ "embed"
	"fmt"

	"leaddesk_backend/internal/leads/domain"

	"gopkg.in/yaml.v3"
)

//go:embed view_policies.yaml
var viewPoliciesYAML []byte

// viewPolicies maps a view identifier to the statuses that view suppresses by
// default. Declared once here instead of inline conditionals per view.
var viewPolicies map[string][]domain.Status

func init() {
	var doc struct {
		Views map[string]struct {
			SuppressedStatuses []domain.Status `yaml:"suppressedStatuses"`
		} `yaml:"views"`
	}
	if err := yaml.Unmarshal(viewPoliciesYAML, &doc); err != nil {
		panic(fmt.Sprintf("invalid view policy table: %v", err))
	}

	viewPolicies = make(map[string][]domain.Status, len(doc.Views))
	for name, v := range doc.Views {
		viewPolicies[name] = v.SuppressedStatuses
	}
}

// SuppressedStatuses returns the statuses hidden by default for a view.
// Unknown views suppress nothing.
func SuppressedStatuses(view string) []domain.Status {
	return viewPolicies[view]
}
