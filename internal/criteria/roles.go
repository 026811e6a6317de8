package criteria

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/michal/smartresume/internal/schemas"
	"github.com/michal/smartresume/internal/types"
	rootschemas "github.com/michal/smartresume/schemas"
)

// Catalog is the set of job roles the builder wizard offers.
type Catalog struct {
	Roles []types.JobRole

	byID map[string]*types.JobRole
}

// LoadCatalog reads and validates the job role catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job roles file %s: %w", path, err)
	}

	if err := schemas.ValidateString(rootschemas.JobRoles, string(data)); err != nil {
		return nil, fmt.Errorf("job roles file %s: %w", path, err)
	}

	var roles []types.JobRole
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse job roles file %s: %w", path, err)
	}

	catalog := &Catalog{
		Roles: roles,
		byID:  make(map[string]*types.JobRole, len(roles)),
	}
	for i := range catalog.Roles {
		role := &catalog.Roles[i]
		if _, dup := catalog.byID[role.ID]; dup {
			return nil, fmt.Errorf("job roles file %s: duplicate role id %q", path, role.ID)
		}
		catalog.byID[role.ID] = role
	}
	return catalog, nil
}

// ByID returns the role with the given id, or nil when unknown.
func (c *Catalog) ByID(roleID string) *types.JobRole {
	return c.byID[roleID]
}
