// highlight-scan decorates a narrative text file with the semantic highlight
// pipeline and prints the resulting atoms and extracted metrics as JSON.
//
// Usage:
//
//	highlight-scan --input result.txt --techniques techniques.yaml \
//	    --glossary glossary.yaml --verbs verbs.yaml
//
// HTML input (.html/.htm) is converted to plain text first.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/braglog/textmark/internal/htmltext"
	"github.com/braglog/textmark/pkg/textmark/config"
	"github.com/braglog/textmark/pkg/textmark/highlight"
)

type atomJSON struct {
	Text string `json:"text"`
	Kind string `json:"kind,omitempty"`
	Info string `json:"info,omitempty"`
}

type report struct {
	Atoms   []atomJSON `json:"atoms"`
	Metrics []string   `json:"metrics"`
}

func main() {
	var (
		input      = flag.String("input", "", "Path to narrative text or HTML file (required)")
		techniques = flag.String("techniques", "", "Technique dictionary YAML")
		glossary   = flag.String("glossary", "", "Glossary YAML")
		verbs      = flag.String("verbs", "", "Verb list YAML")
		emphasis   = flag.String("emphasis", "", "Comma-separated emphasis words")
		maxMetrics = flag.Int("max-metrics", 10, "Maximum metrics to extract (0 = no cap)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	text := string(data)
	if strings.HasSuffix(*input, ".html") || strings.HasSuffix(*input, ".htm") {
		text = htmltext.Extract(text)
	}

	loader := config.Loader{
		TechniquesPath: *techniques,
		GlossaryPath:   *glossary,
		VerbsPath:      *verbs,
	}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var emphasisWords []string
	if *emphasis != "" {
		emphasisWords = strings.Split(*emphasis, ",")
	}

	cats := highlight.DefaultCategories(comp.Techniques, comp.Glossary, comp.Verbs, emphasisWords)
	atoms := highlight.Decorate(text, cats)

	out := report{
		Atoms:   make([]atomJSON, len(atoms)),
		Metrics: highlight.ExtractMetrics(text, *maxMetrics),
	}
	for i, a := range atoms {
		out.Atoms[i] = atomJSON{Text: a.Text}
		if a.Decoration != nil {
			out.Atoms[i].Kind = string(a.Decoration.Kind)
			out.Atoms[i].Info = a.Decoration.Info
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode report: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d atoms, %d metrics\n", len(out.Atoms), len(out.Metrics))
}
