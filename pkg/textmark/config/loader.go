package config

import (
	"fmt"

	"github.com/braglog/textmark/pkg/textmark/dict"
)

// Loader loads all dictionary files and constructs matching components
type Loader struct {
	TechniquesPath string
	GlossaryPath   string
	VerbsPath      string
	EmphasisPath   string
}

// Components holds the loaded matching components. Missing paths yield
// empty components, which match nothing.
type Components struct {
	Techniques *dict.Dictionary
	Glossary   *dict.Dictionary
	Verbs      *dict.WordList
	Emphasis   []string
}

// Load reads all configured files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.TechniquesPath != "" {
		techniques, err := LoadTechniques(l.TechniquesPath)
		if err != nil {
			return nil, fmt.Errorf("load techniques: %w", err)
		}
		entries := make([]dict.Entry, len(techniques.Techniques))
		for i, e := range techniques.Techniques {
			entries[i] = dict.Entry{
				Phrase:   e.Phrase,
				Variants: e.Aliases,
				Info:     e.Summary,
			}
		}
		comp.Techniques = dict.NewDictionary(entries)
	} else {
		comp.Techniques = dict.NewDictionary(nil)
	}

	if l.GlossaryPath != "" {
		glossary, err := LoadGlossary(l.GlossaryPath)
		if err != nil {
			return nil, fmt.Errorf("load glossary: %w", err)
		}
		entries := make([]dict.Entry, len(glossary.Terms))
		for i, e := range glossary.Terms {
			entries[i] = dict.Entry{
				Phrase:   e.Term,
				Variants: e.Aliases,
				Info:     e.Definition,
			}
		}
		comp.Glossary = dict.NewDictionary(entries)
	} else {
		comp.Glossary = dict.NewDictionary(nil)
	}

	if l.VerbsPath != "" {
		verbs, err := LoadVerbs(l.VerbsPath)
		if err != nil {
			return nil, fmt.Errorf("load verbs: %w", err)
		}
		comp.Verbs = dict.NewWordList(verbs.Verbs)
	} else {
		comp.Verbs = dict.NewWordList(nil)
	}

	if l.EmphasisPath != "" {
		emphasis, err := LoadEmphasis(l.EmphasisPath)
		if err != nil {
			return nil, fmt.Errorf("load emphasis: %w", err)
		}
		comp.Emphasis = emphasis.Words
	}

	return comp, nil
}
