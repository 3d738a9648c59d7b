// Package ingest reads requirement documents and validates each line
// against the MoSCoW sentence format before the core ever sees it.
// Any malformed line aborts the whole batch: extraction never runs on
// partially valid input.
package ingest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrMalformed is returned when a line does not follow the
	// MoSCoW sentence format.
	ErrMalformed = errors.New("ingest: requirement does not follow MoSCoW format")

	// ErrNoFullStop is returned when a requirement line does not end
	// with a period.
	ErrNoFullStop = errors.New("ingest: requirement does not end with a full stop")

	// ErrContraction is returned when a requirement contains an
	// n't contraction, which the parser mislabels.
	ErrContraction = errors.New("ingest: requirement contains a contraction")

	// ErrDuplicate is returned when the same requirement line
	// appears twice.
	ErrDuplicate = errors.New("ingest: duplicate requirement")

	// ErrNoRequirements is returned when a document yields no
	// requirement lines at all.
	ErrNoRequirements = errors.New("ingest: no requirements in input")

	// ErrUnsupportedFormat is returned for unrecognized file formats.
	ErrUnsupportedFormat = errors.New("ingest: unsupported input format")
)

// PriorityWillNot marks requirements deferred to a future iteration.
// They are numbered like any other requirement but never parsed or
// matched.
const PriorityWillNot = "will not"

// Requirement is one MoSCoW-prioritized natural-language sentence.
type Requirement struct {
	// Number is the 1-based position among accepted requirements.
	Number int

	// Priority is the lowercased MoSCoW keyword: must, should,
	// could or "will not".
	Priority string

	// Text is the sanitized requirement sentence.
	Text string
}

// Eligible reports whether the requirement takes part in extraction.
func (r Requirement) Eligible() bool {
	return r.Priority != PriorityWillNot
}

var (
	moscowRE      = regexp.MustCompile(`(?i)^[\w\d\s]+ (must|should|could|will not) .*\.`)
	contractionRE = regexp.MustCompile(`(?i) (\w+n't)`)
	multiSpaceRE  = regexp.MustCompile(`\s{2,}`)
)

// ParseLines validates raw document lines and produces the numbered
// requirement list. Comment lines (#) and blank lines are skipped; the
// first invalid line aborts with an error naming it.
func ParseLines(lines []string) ([]Requirement, error) {
	var reqs []Requirement
	seen := make(map[string]bool)

	for _, raw := range lines {
		line := sanitize(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		number := len(reqs) + 1
		if !strings.HasSuffix(line, ".") {
			return nil, fmt.Errorf("%w: requirement %d: %s", ErrNoFullStop, number, line)
		}
		if m := contractionRE.FindStringSubmatch(line); m != nil {
			return nil, fmt.Errorf("%w: requirement %d contains %q", ErrContraction, number, m[1])
		}
		if seen[line] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, line)
		}
		m := moscowRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: requirement %d: %s", ErrMalformed, number, line)
		}

		seen[line] = true
		reqs = append(reqs, Requirement{
			Number:   number,
			Priority: strings.ToLower(m[1]),
			Text:     line,
		})
	}

	if len(reqs) == 0 {
		return nil, ErrNoRequirements
	}
	return reqs, nil
}

// sanitize collapses repeated whitespace and trims line endings.
func sanitize(line string) string {
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "\n", "")
	line = multiSpaceRE.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}
