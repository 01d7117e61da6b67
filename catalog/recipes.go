package catalog

import "github.com/merethin/akari/events"

// directiveKind enumerates the field directives a Recipe can apply.
type directiveKind int

const (
	dirActor directiveKind = iota
	dirReceptor
	dirOrigin
	dirDestination
	dirData
	dirBucketOrigin
)

// directive is one step of a Recipe: set a field from a capture group (or,
// for dirData, append one or more captures to Data; for dirBucketOrigin,
// derive Origin from the event's regions instead of a capture).
type directive struct {
	kind    directiveKind
	indices []int
}

// Actor sets event.Actor from capture group i, when present.
func Actor(i int) directive { return directive{kind: dirActor, indices: []int{i}} }

// Receptor sets event.Receptor from capture group i, when present.
func Receptor(i int) directive { return directive{kind: dirReceptor, indices: []int{i}} }

// Origin sets event.Origin from capture group i, when present.
func Origin(i int) directive { return directive{kind: dirOrigin, indices: []int{i}} }

// Destination sets event.Destination from capture group i, when present.
func Destination(i int) directive { return directive{kind: dirDestination, indices: []int{i}} }

// Data appends each of the given capture groups (in order, skipping any
// that did not participate in the match) to event.Data.
func Data(indices ...int) directive { return directive{kind: dirData, indices: indices} }

// BucketOrigin sets event.Origin to the first region extracted from the
// event's buckets, or "[unknown]" if there is none. Recipes that may also
// carry a capture-based Origin list BucketOrigin first, so a later
// directive overwrites it, letting a capture-based Origin always win.
func BucketOrigin() directive { return directive{kind: dirBucketOrigin} }

// PostProcessor runs after a Recipe's directives, reading the same
// captures and regions to append or override fields with category-specific
// logic that a plain directive can't express.
type PostProcessor func(c captures, regions []string, out *events.ParsedEvent)

// Recipe is an ordered sequence of field directives plus an optional
// custom post-processor, applied in full once a category has been
// selected by Catalog.Classify.
type Recipe struct {
	Directives []directive
	Process    PostProcessor
}

// applyRecipe runs every directive in order, then the post-processor if
// any. Always returns true in this implementation: our regex-based capture
// extraction either participates in the match (captures.Get returns ok) or
// doesn't, and a directive referencing a non-participating group is simply
// skipped rather than treated as a hard failure. The bool return is kept so
// a future recipe that needs to signal a genuine extraction miss (e.g. a
// post-processor that fails to parse a malformed embedded clause) has
// somewhere to report it.
func applyRecipe(r Recipe, c captures, regions []string, out *events.ParsedEvent) bool {
	for _, d := range r.Directives {
		switch d.kind {
		case dirActor:
			if v, ok := c.Get(d.indices[0]); ok {
				out.Actor = events.Str(v)
			}
		case dirReceptor:
			if v, ok := c.Get(d.indices[0]); ok {
				out.Receptor = events.Str(v)
			}
		case dirOrigin:
			if v, ok := c.Get(d.indices[0]); ok {
				out.Origin = events.Str(v)
			}
		case dirDestination:
			if v, ok := c.Get(d.indices[0]); ok {
				out.Destination = events.Str(v)
			}
		case dirData:
			for _, i := range d.indices {
				if v, ok := c.Get(i); ok {
					out.Data = append(out.Data, v)
				}
			}
		case dirBucketOrigin:
			if len(regions) > 0 {
				out.Origin = events.Str(regions[0])
			} else {
				out.Origin = events.Str("[unknown]")
			}
		}
	}

	if r.Process != nil {
		r.Process(c, regions, out)
	}

	return true
}
