package team

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed teams.yaml
var registryYAML []byte

type registryFile struct {
	Teams []registryEntry `yaml:"teams"`
}

type registryEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

var loadRegistry = sync.OnceValue(func() map[string]Identity {
	table, err := parseRegistry(registryYAML)
	if err != nil {
		panic(fmt.Sprintf("team registry: %v", err))
	}
	return table
})

func parseRegistry(raw []byte) (map[string]Identity, error) {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode teams.yaml: %w", err)
	}

	table := make(map[string]Identity, len(file.Teams))
	for _, entry := range file.Teams {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("team entry %q has no id", entry.Name)
		}
		if _, exists := table[id]; exists {
			return nil, fmt.Errorf("duplicate team id %s", id)
		}
		table[id] = Identity{ID: id, Name: entry.Name, Logo: entry.Logo}
	}
	return table, nil
}

// Lookup returns the static identity of a club. Unknown ids get a placeholder
// name and an empty logo, never an error.
func Lookup(id string) Identity {
	id = strings.TrimSpace(id)
	if identity, ok := loadRegistry()[id]; ok {
		return identity
	}
	return Identity{ID: id, Name: "Team ID: " + id, Logo: ""}
}

// Known reports whether the id is in the static table.
func Known(id string) bool {
	_, ok := loadRegistry()[strings.TrimSpace(id)]
	return ok
}
