// Package events defines the wire, internal, and output record shapes that
// flow through the ingestion and classification pipeline.
package events

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Reserved categories. The conn* system event categories are synthesized by
// ingestion at connection lifecycle boundaries and never arrive over the
// wire; unknown and skipped are assigned by the classifier.
const (
	CategoryConnInit = "conninit"
	CategoryConnDrop = "conndrop"
	CategoryConnMiss = "connmiss"
	CategoryUnknown  = "unknown"
	CategorySkipped  = "skipped"
)

// ServerEvent is a single happening as it arrives over the wire, decoded
// from an SSE "data:" payload. It is immutable after construction.
type ServerEvent struct {
	// ID is the event's numeric identifier as reported by the server,
	// kept as a string since it arrives that way and may fail to parse.
	ID string `json:"id"`
	// Time is the unix second timestamp the server attached to this event.
	Time uint64 `json:"time"`
	// Text is the raw happening line, trailing punctuation and all.
	Text string `json:"str"`
	// Buckets are server-supplied tags, a subset of which are prefixed
	// "region:" and used to recover an implicated region.
	Buckets []string `json:"buckets"`
}

// NumericID parses ID as a signed 64-bit integer, returning -1 when it
// fails to parse.
func (e ServerEvent) NumericID() int64 {
	n, err := strconv.ParseInt(e.ID, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// Regions returns the subset of Buckets prefixed "region:", with the prefix
// stripped and order preserved.
func (e ServerEvent) Regions() []string {
	var out []string
	for _, b := range e.Buckets {
		const prefix = "region:"
		if len(b) > len(prefix) && b[:len(prefix)] == prefix {
			out = append(out, b[len(prefix):])
		}
	}
	return out
}

// SystemEvent is a synthetic event describing a connection lifecycle
// transition: the stream connecting, dropping, or skipping ids.
type SystemEvent struct {
	Time     uint64
	Category string
	Data     []string
}

// NewSystemEvent stamps category and data with the given unix time. The
// caller supplies time explicitly (rather than time.Now()) so ingestion
// remains the single source of wall-clock reads, keeping tests
// deterministic.
func NewSystemEvent(t uint64, category string, data ...string) SystemEvent {
	return SystemEvent{Time: t, Category: category, Data: data}
}

// Message is a tagged union over the two kinds of input the pipeline
// classifies: a real ServerEvent or a synthetic SystemEvent.
type Message struct {
	Server *ServerEvent
	System *SystemEvent
}

// ServerMessage wraps a ServerEvent as a Message.
func ServerMessage(e ServerEvent) Message { return Message{Server: &e} }

// SystemMessage wraps a SystemEvent as a Message.
func SystemMessage(e SystemEvent) Message { return Message{System: &e} }

// SequencedMessage pairs a Message with the monotonically increasing
// sequence id assigned at enqueue time. seq_id is the sole authority on
// ordering throughout the pipeline.
type SequencedMessage struct {
	SeqID   uint64
	Message Message
}

// ParsedEvent is the structured output record produced by classification,
// the shape every sink ultimately serializes.
type ParsedEvent struct {
	// Event is the numeric event id, or -1 for synthetic/system events and
	// events whose raw id failed to parse.
	Event int64 `json:"event"`
	// Time is the unix second timestamp of the originating event.
	Time uint64 `json:"time"`
	// Category is the catalog tag that produced this event; always set.
	Category string `json:"category"`
	// Actor, Receptor, Origin, and Destination are extracted per the
	// category's recipe; any of them may be absent.
	Actor       *string `json:"actor,omitempty"`
	Receptor    *string `json:"receptor,omitempty"`
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`
	// Data holds any extra ordered tokens the recipe collected; omitted
	// entirely from JSON when empty.
	Data []string `json:"data,omitempty"`
}

// MarshalJSON round-trips cleanly: absent optional fields and an empty Data
// slice are both omitted from the output.
func (p ParsedEvent) MarshalJSON() ([]byte, error) {
	type alias ParsedEvent
	a := alias(p)
	if len(a.Data) == 0 {
		a.Data = nil
	}
	return json.Marshal(a)
}

// Str returns a pointer to a copy of s, for populating ParsedEvent's
// optional string fields from a local value.
func Str(s string) *string { return &s }
