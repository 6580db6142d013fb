package branch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoBranches = errors.New("no branches configured")

// Registry holds the configured branches and answers lookups from the
// conversation layer. It is read-only after Load.
type Registry struct {
	branches []Branch
}

// Load reads the branch list from a YAML file.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read branches file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Registry from raw YAML.
func Parse(raw []byte) (*Registry, error) {
	var branches []Branch
	if err := yaml.Unmarshal(raw, &branches); err != nil {
		return nil, fmt.Errorf("parse branches file: %w", err)
	}
	if len(branches) == 0 {
		return nil, ErrNoBranches
	}
	return &Registry{branches: branches}, nil
}

// Find resolves a branch by case-insensitive prefix, so "downtown"
// matches "Downtown Location".
func (r *Registry) Find(name string) (*Branch, bool) {
	term := strings.ToLower(strings.TrimSpace(name))
	if term == "" {
		return nil, false
	}
	for i := range r.branches {
		if strings.HasPrefix(strings.ToLower(r.branches[i].Name), term) {
			return &r.branches[i], true
		}
	}
	return nil, false
}

// Names lists branch names in configured order, for clarifying prompts.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.branches))
	for i := range r.branches {
		names = append(names, r.branches[i].Name)
	}
	return names
}
