// Package catalog implements the pattern-match classifier and field
// extractor: a fixed, ordered table of (category, regex, recipe) entries
// that turns a raw happening line into a structured events.ParsedEvent.
//
// Go's regexp package has no equivalent of a combined multi-pattern regex
// set that reports every matching pattern's index (unlike, say, Rust's
// RegexSet). Selection is "the first matching pattern in declaration
// order", so scanning the ordered entry list and stopping at the first
// match is exactly equivalent to building such a set and taking the
// minimum matching index — so that is what Catalog.Classify does, one
// compiled *regexp.Regexp at a time.
package catalog

import (
	"regexp"
	"strings"

	"github.com/merethin/akari/events"
)

// Entry is one catalog row: a category tag, its regex, and the recipe used
// to turn a match into a ParsedEvent.
type Entry struct {
	Category string
	Pattern  *regexp.Regexp
	Recipe   Recipe
}

// Catalog is the full ordered pattern table, built once and shared
// read-only across classifier workers.
type Catalog struct {
	entries []Entry
}

// New builds the catalog, compiling every entry's regex on each call; the
// result is read-only and can be shared by all workers.
func New() *Catalog {
	return &Catalog{entries: defaultEntries()}
}

// Len reports how many catalog entries are loaded, used by the diagnostics
// command.
func (c *Catalog) Len() int { return len(c.entries) }

// Classify runs the match-then-extract process against a single happening
// line: one trailing "." is removed from line before matching, and
// regions should be the originating event's bucket-derived region list.
//
// Returns (event, true) on a successful classification (including the
// "unknown" fallback, which always succeeds), or (zero, false) when a
// pattern matched but its recipe could not extract captures — an
// extraction miss, which the caller logs and drops.
func (c *Catalog) Classify(line string, regions []string) (events.ParsedEvent, bool) {
	line = strings.TrimSuffix(line, ".")

	for _, e := range c.entries {
		idx := e.Pattern.FindStringSubmatchIndex(line)
		if idx == nil {
			continue
		}

		caps := captures{line: line, idx: idx}
		out := events.ParsedEvent{Category: e.Category}
		if !applyRecipe(e.Recipe, caps, regions, &out) {
			return events.ParsedEvent{}, false
		}
		return out, true
	}

	return events.ParsedEvent{Category: events.CategoryUnknown, Data: []string{line}}, true
}

// captures is a view over one regex match's submatch indices, giving
// recipe directives a way to tell "group didn't participate in the match"
// (an unset optional capture) apart from "group matched an empty string".
type captures struct {
	line string
	idx  []int
}

// Get returns the text captured by group i and whether it participated in
// the match at all.
func (c captures) Get(i int) (string, bool) {
	if 2*i+1 >= len(c.idx) {
		return "", false
	}
	start, end := c.idx[2*i], c.idx[2*i+1]
	if start < 0 || end < 0 {
		return "", false
	}
	return c.line[start:end], true
}
