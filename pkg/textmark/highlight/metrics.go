package highlight

import (
	"regexp"

	"github.com/braglog/textmark/pkg/textmark/dict"
)

// metricRE matches, as a single unit, the quantified forms worth surfacing
// in an achievement narrative:
//
//   - currency: $ + digits, optional thousands separators, optional decimal,
//     optional K/M/B magnitude suffix ("$1.5M", "$10,000.50")
//   - count + unit word from the closed unit set ("20 hours", "1,000,000 users")
//   - percentage or multiplier attached to a number ("40%", "10x")
//
// Alternatives are ordered so the longer count+unit form wins over a bare
// number at the same position. Unit words match case-insensitively, singular
// and plural. The package-level regexp is safe here: FindAll scanning holds
// no cursor between calls, so repeated use stays deterministic.
var metricRE = regexp.MustCompile(`(?i)` +
	`\$\d[\d,]*(?:\.\d+)?[kmb]?` +
	`|\b\d[\d,]*(?:\.\d+)?\s+(?:hours?|days?|weeks?|months?|minutes?|seconds?|ms|users?|customers?|engineers?|teams?|requests?|quer(?:y|ies)|calls?|transactions?)\b` +
	`|\b\d[\d,]*(?:\.\d+)?(?:%|x\b)`)

func matchMetrics(run string) []dict.Span {
	idx := metricRE.FindAllStringIndex(run, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]dict.Span, len(idx))
	for i, pair := range idx {
		spans[i] = dict.Span{Start: pair[0], End: pair[1]}
	}
	return spans
}

// ExtractMetrics returns the metric substrings of text in first-to-last
// order, de-duplicated by exact string equality and capped at max. A max of
// zero or less means no cap. The result is never nil.
func ExtractMetrics(text string, max int) []string {
	matches := metricRE.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
