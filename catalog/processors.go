package catalog

import (
	"regexp"
	"strings"

	"github.com/merethin/akari/events"
)

// authorityTagRegex finds each "</i>X" (or "</i>Ex") occurrence in an
// authority listing like `<i class="b"></i>Bb and <i class="c"></i>Cc`,
// where the single uppercase letter right after the closing tag is the
// authority's code letter.
var authorityTagRegex = regexp.MustCompile(`</i>([A-Z])([a-zA-Z]?)`)

// parseAuthority concatenates every authority code letter found in s. "Ex"
// (Executive) is special-cased to emit "X" rather than "E", since X is
// reserved for the Executive authority and would otherwise collide with
// whatever other authority starts with E.
func parseAuthority(s string) string {
	var sb strings.Builder
	for _, m := range authorityTagRegex.FindAllStringSubmatch(s, -1) {
		if m[1] == "E" && m[2] == "x" {
			sb.WriteString("X")
		} else {
			sb.WriteString(m[1])
		}
	}
	return sb.String()
}

// authorityDiffProcessor implements the rochange/rochname post-processing
// rule: capture grantedIdx holds the verb ("granted" or "removed"), firstIdx
// the first authority listing, secondIdx an optional second listing present
// only on a combined grant-and-removal line.
func authorityDiffProcessor(grantedIdx, firstIdx, secondIdx int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		verb, _ := c.Get(grantedIdx)
		first, _ := c.Get(firstIdx)

		if verb == "granted" {
			out.Data = append(out.Data, "+"+parseAuthority(first))
			if second, ok := c.Get(secondIdx); ok {
				out.Data = append(out.Data, "-"+parseAuthority(second))
			}
		} else {
			out.Data = append(out.Data, "-"+parseAuthority(first))
		}
	}
}

// rdelauthProcessor is the authority diff above, plus setting Receptor from
// capture receptorIdx when present.
func rdelauthProcessor(grantedIdx, firstIdx, secondIdx, receptorIdx int) PostProcessor {
	diff := authorityDiffProcessor(grantedIdx, firstIdx, secondIdx)
	return func(c captures, regions []string, out *events.ParsedEvent) {
		diff(c, regions, out)
		if v, ok := c.Get(receptorIdx); ok {
			out.Receptor = events.Str(v)
		}
	}
}

// roaddProcessor appends the parsed authority code of capture authorityIdx.
func roaddProcessor(authorityIdx int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		if v, ok := c.Get(authorityIdx); ok {
			out.Data = append(out.Data, parseAuthority(v))
		}
	}
}

// strippedListProcessor appends each of the given capture groups to Data
// with every comma removed, used by rspass/rsfail/rdiscard to turn
// vote-count tokens like "10,234" into "10234".
func strippedListProcessor(indices ...int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		for _, i := range indices {
			if v, ok := c.Get(i); ok {
				out.Data = append(out.Data, strings.ReplaceAll(v, ",", ""))
			}
		}
	}
}

// coauthorIDRegex finds every "@@id@@" token in a resolution's coauthor
// listing.
var coauthorIDRegex = regexp.MustCompile(`@@([\w-]+)@@`)

// rsfloorProcessor extracts every coauthor id from capture coauthorsIdx and
// appends each to Data, in order.
func rsfloorProcessor(coauthorsIdx int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		tail, ok := c.Get(coauthorsIdx)
		if !ok {
			return
		}
		for _, m := range coauthorIDRegex.FindAllStringSubmatch(tail, -1) {
			out.Data = append(out.Data, m[1])
		}
	}
}

// censusClauseRegex finds each "Top N% ... for <labels>" clause in a census
// happening line.
var censusClauseRegex = regexp.MustCompile(`Top (1|5|10)% (?:of (?:all nations|the region) )?for ([A-Za-z][^.]*?)(?:,? and the|\.|$)`)

// censusLabelSplitRegex splits a clause's label list on commas and "and".
var censusLabelSplitRegex = regexp.MustCompile(`,\s*(?:and\s+)?|\s+and\s+`)

// censusLabelRegex matches one label: a run of capitalized words like
// "Highest Average Incomes".
var censusLabelRegex = regexp.MustCompile(`^[A-Z][A-Za-z-]*(?:\s[A-Z][A-Za-z-]*)*$`)

// chcensusProcessor implements the chcensus post-processing rule: for each
// "Top N% ... for <labels>" clause in capture phraseIdx, push the percent
// token followed by each trimmed label.
func chcensusProcessor(phraseIdx int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		phrase, ok := c.Get(phraseIdx)
		if !ok {
			return
		}
		for _, m := range censusClauseRegex.FindAllStringSubmatch(phrase, -1) {
			out.Data = append(out.Data, m[1]+"%")
			for _, label := range censusLabelSplitRegex.Split(m[2], -1) {
				label = strings.TrimSpace(label)
				if label != "" && censusLabelRegex.MatchString(label) {
					out.Data = append(out.Data, label)
				}
			}
		}
	}
}

// chfieldClauseRegex finds each `, its <field> to "<value>"` clause
// appended to a settings-change happening line.
var chfieldClauseRegex = regexp.MustCompile(`, its ([a-zA-Z ]+?) to "([^"]*)"`)

// chfieldProcessor implements the chfield post-processing rule: for each
// clause in capture tailIdx, push field then value, preserving pair order.
func chfieldProcessor(tailIdx int) PostProcessor {
	return func(c captures, _ []string, out *events.ParsedEvent) {
		tail, ok := c.Get(tailIdx)
		if !ok {
			return
		}
		for _, m := range chfieldClauseRegex.FindAllStringSubmatch(tail, -1) {
			out.Data = append(out.Data, m[1], m[2])
		}
	}
}
