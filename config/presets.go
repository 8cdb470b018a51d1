package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"othello/game"
	"othello/searcher"
	"othello/utils"
)

type presetsFile struct {
	Difficulties []preset `yaml:"difficulties"`
}

// preset is one entry of the file. Nil fields were left out, so an explicit
// zero can still turn a built-in time or node limit off.
type preset struct {
	Name     string         `yaml:"name"`
	MaxDepth *int           `yaml:"max_depth"`
	MaxTime  *time.Duration `yaml:"max_time"`
	MaxNodes *int           `yaml:"max_nodes"`
	Weights  *game.Weights  `yaml:"weights"`
}

// LoadPresets reads difficulty presets from a YAML file and merges them over
// the built-in levels: a preset named like a built-in level replaces it, any
// other name is appended. Fields left out of a preset keep the built-in
// value of the level it replaces; max_time or max_nodes of 0 means unlimited.
// An empty path returns the built-in levels.
func LoadPresets(path string) ([]searcher.Difficulty, error) {
	presets := append([]searcher.Difficulty(nil), searcher.Difficulties...)
	if path == "" {
		return presets, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return mergePresets(presets, raw)
}

func mergePresets(presets []searcher.Difficulty, raw []byte) ([]searcher.Difficulty, error) {
	var file presetsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	for _, entry := range file.Difficulties {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		i := findPreset(presets, name)
		if i < 0 {
			presets = append(presets, searcher.Difficulty{})
			i = len(presets) - 1
		}
		presets[i] = overlay(presets[i], entry)
		presets[i].Name = name
		if err := presets[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid preset: %w", err)
		}
	}
	return presets, nil
}

func findPreset(presets []searcher.Difficulty, name string) int {
	return utils.FindIndexFunc(presets, func(d searcher.Difficulty) bool {
		return d.Name == name
	})
}

func overlay(base searcher.Difficulty, entry preset) searcher.Difficulty {
	if entry.MaxDepth != nil {
		base.MaxDepth = *entry.MaxDepth
	}
	if entry.MaxTime != nil {
		base.MaxTime = *entry.MaxTime
	}
	if entry.MaxNodes != nil {
		base.MaxNodes = *entry.MaxNodes
	}
	if entry.Weights != nil {
		base.Weights = *entry.Weights
	}
	return base
}

// FindPreset looks a difficulty up by name, case-insensitively.
func FindPreset(presets []searcher.Difficulty, name string) (searcher.Difficulty, error) {
	i := findPreset(presets, strings.ToLower(strings.TrimSpace(name)))
	if i < 0 {
		return searcher.Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
	}
	return presets[i], nil
}
