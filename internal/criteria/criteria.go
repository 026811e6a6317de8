// Package criteria loads the per-role analysis criteria and job role catalog
// from their JSON data files.
package criteria

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/michal/smartresume/internal/schemas"
	"github.com/michal/smartresume/internal/types"
	rootschemas "github.com/michal/smartresume/schemas"
)

// Store holds the analysis criteria for every configured job role.
type Store struct {
	byRole map[string]*types.AnalysisCriteria
}

// LoadStore reads a criteria document keyed by role id. A missing file is not
// an error: analysis falls back to the built-in defaults for every role. A
// file that exists but fails schema or weight validation is rejected so a bad
// deploy surfaces at startup rather than as silently wrong scores.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Store{byRole: map[string]*types.AnalysisCriteria{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file %s: %w", path, err)
	}

	if err := schemas.ValidateString(rootschemas.AnalysisCriteria, string(data)); err != nil {
		return nil, fmt.Errorf("criteria file %s: %w", path, err)
	}

	var byRole map[string]*types.AnalysisCriteria
	if err := json.Unmarshal(data, &byRole); err != nil {
		return nil, fmt.Errorf("failed to parse criteria file %s: %w", path, err)
	}

	for roleID, c := range byRole {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("criteria for role %q: %w", roleID, err)
		}
	}

	return &Store{byRole: byRole}, nil
}

// ForRole returns the criteria configured for the given role id, or the
// built-in defaults when the role has no entry.
func (s *Store) ForRole(roleID string) *types.AnalysisCriteria {
	if c, ok := s.byRole[roleID]; ok {
		return c
	}
	return types.DefaultAnalysisCriteria()
}

// Roles lists the role ids that carry explicit criteria.
func (s *Store) Roles() []string {
	roles := make([]string, 0, len(s.byRole))
	for roleID := range s.byRole {
		roles = append(roles, roleID)
	}
	return roles
}
