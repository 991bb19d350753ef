// Package config loads the dictionary and word-list files that parameterize
// the highlight pipeline. Dictionary contents are data, not code: swapping a
// file never requires an engine change.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/braglog/textmark/pkg/textmark/internalerr"
)

// Techniques represents the named-technique dictionary configuration
type Techniques struct {
	Techniques []TechniqueEntry `yaml:"techniques"`
}

// TechniqueEntry is one named technique or design-pattern phrase
type TechniqueEntry struct {
	Phrase  string   `yaml:"phrase"`
	Aliases []string `yaml:"aliases"`
	Summary string   `yaml:"summary"`
}

// LoadTechniques loads the technique dictionary from a YAML file
func LoadTechniques(path string) (*Techniques, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Techniques
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	for i, e := range t.Techniques {
		if e.Phrase == "" {
			return nil, fmt.Errorf("technique %d has no phrase: %w", i, internalerr.ErrInvalidConfig)
		}
	}
	return &t, nil
}

// Glossary represents the technical-term glossary configuration
type Glossary struct {
	Terms []GlossaryEntry `yaml:"terms"`
}

// GlossaryEntry is one glossary term
type GlossaryEntry struct {
	Term       string   `yaml:"term"`
	Aliases    []string `yaml:"aliases"`
	Definition string   `yaml:"definition"`
}

// LoadGlossary loads the glossary from a YAML file
func LoadGlossary(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var g Glossary
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	for i, e := range g.Terms {
		if e.Term == "" {
			return nil, fmt.Errorf("glossary term %d is empty: %w", i, internalerr.ErrInvalidConfig)
		}
	}
	return &g, nil
}

// Verbs represents the ownership/action verb list configuration
type Verbs struct {
	Verbs []string `yaml:"verbs"`
}

// LoadVerbs loads the verb list from a YAML file
func LoadVerbs(path string) (*Verbs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v Verbs
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Emphasis represents a default emphasis word list. Callers usually derive
// emphasis words per section; this file supplies a fallback set.
type Emphasis struct {
	Words []string `yaml:"words"`
}

// LoadEmphasis loads the emphasis word list from a YAML file
func LoadEmphasis(path string) (*Emphasis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var e Emphasis
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
