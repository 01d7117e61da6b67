package pipeline

import (
	"context"

	"github.com/apex/log"
	"github.com/redis/go-redis/v9"

	"github.com/merethin/akari/sink"
)

// Reorder is the single broadcast worker: it buffers out-of-order Results
// keyed by seq_id and drains them strictly in order, so two messages
// classified on different pool workers never reach the sinks out of the
// order ingestion assigned them. A Result with a nil Event (an extraction
// miss) still occupies its seq_id slot and is simply skipped when drained.
type Reorder struct {
	dispatcher *sink.Dispatcher
	watermark  *redis.Client

	next   uint64
	buffer map[uint64]Result
}

// NewReorder builds a Reorder starting at sequence id 1 (SequenceCounter's
// first issued value), broadcasting through dispatcher. watermark may be
// nil, in which case progress is not mirrored anywhere.
func NewReorder(dispatcher *sink.Dispatcher, watermark *redis.Client) *Reorder {
	return &Reorder{
		dispatcher: dispatcher,
		watermark:  watermark,
		next:       1,
		buffer:     make(map[uint64]Result),
	}
}

// Run drains results from in until the channel closes, broadcasting each
// ParsedEvent through the dispatcher in strict seq_id order.
func (r *Reorder) Run(ctx context.Context, in <-chan Result) {
	for res := range in {
		r.buffer[res.SeqID] = res

		for {
			res, ok := r.buffer[r.next]
			if !ok {
				break
			}
			delete(r.buffer, r.next)

			if res.Event != nil {
				r.dispatcher.Broadcast(ctx, *res.Event)
			}

			r.next++
			r.mirrorWatermark(ctx)
		}
	}
}

// mirrorWatermark best-effort writes the last fully-drained seq_id to
// Redis, purely as operational telemetry; a failed write is logged and
// otherwise ignored since it never participates in ordering.
func (r *Reorder) mirrorWatermark(ctx context.Context) {
	if r.watermark == nil {
		return
	}
	if err := r.watermark.Set(ctx, "pipeline:watermark", r.next-1, 0).Err(); err != nil {
		log.WithError(err).Warn("pipeline: failed to mirror watermark to redis")
	}
}

// Pending reports how many out-of-order results are currently buffered,
// waiting on a gap at a lower seq_id; a persistently large value signals a
// stuck or crashed worker upstream.
func (r *Reorder) Pending() int { return len(r.buffer) }
