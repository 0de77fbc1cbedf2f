package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// SettingKeys returns the YAML names of the settings fields, sorted.
func SettingKeys() []string {
	data, err := yaml.Marshal(engine.PatchFrom(engine.DefaultSettings()))
	if err != nil {
		return nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParsePatch parses key=value assignments (e.g. "ghost_piece=false",
// "randomizer=7bag") into a settings patch. Keys are the YAML field names of
// engine.Settings and values are plain YAML scalars.
func ParsePatch(assignments []string) (engine.SettingsPatch, error) {
	var patch engine.SettingsPatch
	if len(assignments) == 0 {
		return patch, errors.New("config: no settings given")
	}

	known := make(map[string]bool)
	for _, k := range SettingKeys() {
		known[k] = true
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		switch {
		case !ok || key == "":
			return patch, fmt.Errorf("config: expected key=value, got %q", a)
		case !known[key]:
			return patch, fmt.Errorf("config: unknown setting %q (known: %s)", key, strings.Join(SettingKeys(), ", "))
		case seen[key]:
			return patch, fmt.Errorf("config: %s given twice", key)
		}
		seen[key] = true

		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strings.TrimSpace(value)},
		)
	}

	if err := doc.Decode(&patch); err != nil {
		return patch, fmt.Errorf("config: invalid settings: %w", err)
	}
	return patch, nil
}
