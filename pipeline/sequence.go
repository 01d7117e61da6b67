// Package pipeline implements the sequenced queue, classifier worker pool,
// and reorder/broadcast stage that together preserve strict input order
// across parallel classification.
package pipeline

import "sync/atomic"

// SequenceCounter assigns monotonically increasing sequence ids to
// messages as ingestion enqueues them. It is the sole authority on
// ordering: every downstream stage reasons about order purely in terms of
// the ids this counter hands out, never wall-clock arrival.
type SequenceCounter struct {
	value uint64
}

// Next returns the next sequence id, starting from 1.
func (s *SequenceCounter) Next() uint64 {
	return atomic.AddUint64(&s.value, 1)
}
