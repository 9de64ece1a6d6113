// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/growthpro/pkg/types"
)

// SaveProfile writes p to path as YAML, creating parent directories.
func SaveProfile(path string, p types.BusinessProfile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadProfile reads a profile written by SaveProfile. The name and location
// must be present for the profile to be usable in a regenerate call.
func LoadProfile(path string) (types.BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BusinessProfile{}, fmt.Errorf("reading profile: %w", err)
	}

	var p types.BusinessProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return types.BusinessProfile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return types.BusinessProfile{}, fmt.Errorf("profile %s is missing %s", path, strings.Join(missing, " and "))
	}
	return p, nil
}
