package pipeline

import (
	"github.com/apex/log"
	"github.com/gammazero/workerpool"

	"github.com/merethin/akari/catalog"
	"github.com/merethin/akari/events"
)

// Result pairs a classification outcome with the sequence id it was
// assigned at enqueue time. Event is nil when classification found a
// matching pattern but its recipe could not extract the fields it needed —
// an extraction miss, logged by the worker and still forwarded to the
// reorder stage so its seq_id slot is consumed.
type Result struct {
	SeqID uint64
	Event *events.ParsedEvent
}

// classifyServerEvent runs the catalog against evt's text and regions, then
// stamps the numeric event id and timestamp the catalog itself never sees.
func classifyServerEvent(cat *catalog.Catalog, evt events.ServerEvent) (events.ParsedEvent, bool) {
	parsed, ok := cat.Classify(evt.Text, evt.Regions())
	if !ok {
		return events.ParsedEvent{}, false
	}
	parsed.Time = evt.Time
	if parsed.Category == events.CategoryUnknown || parsed.Category == events.CategorySkipped {
		parsed.Event = -1
	} else {
		parsed.Event = evt.NumericID()
	}
	return parsed, true
}

// synthesizeSystemEvent turns a connection lifecycle event directly into a
// ParsedEvent; system events never go through the catalog; they arrive
// already tagged with their category and data.
func synthesizeSystemEvent(evt events.SystemEvent) events.ParsedEvent {
	return events.ParsedEvent{Event: -1, Time: evt.Time, Category: evt.Category, Data: evt.Data}
}

// RunWorkers classifies every SequencedMessage received on in, spread
// across workerCount concurrent jobs on a gammazero/workerpool pool, and
// sends one Result per message to out. It blocks until in is closed and
// every submitted job has finished, then closes out.
//
// regexp.Regexp is safe for concurrent use by multiple goroutines, so a
// single shared Catalog backs every job; there is no need to give each
// pool worker its own private copy.
func RunWorkers(workerCount int, cat *catalog.Catalog, in <-chan events.SequencedMessage, out chan<- Result) {
	pool := workerpool.New(workerCount)

	for msg := range in {
		m := msg
		pool.Submit(func() {
			var result Result
			result.SeqID = m.SeqID

			switch {
			case m.Message.Server != nil:
				parsed, ok := classifyServerEvent(cat, *m.Message.Server)
				if !ok {
					log.WithField("seq_id", m.SeqID).Warn("pipeline: classification failed to extract fields")
					out <- result
					return
				}
				result.Event = &parsed
			case m.Message.System != nil:
				parsed := synthesizeSystemEvent(*m.Message.System)
				result.Event = &parsed
			}

			out <- result
		})
	}

	pool.StopWait()
	close(out)
}
