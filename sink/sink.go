// Package sink implements the pluggable output channels the reorder stage
// fans parsed events into: console, rotating file, message broker,
// relational table, and searchable document store.
package sink

import (
	"context"

	"github.com/apex/log"

	"github.com/merethin/akari/config"
	"github.com/merethin/akari/events"
)

// Channel is the contract every output sink implements: initialize once,
// publish many, close on shutdown. Every classified message — whether it
// started life as a ServerEvent or a synthetic SystemEvent — arrives here
// as a ParsedEvent; classifier workers do the System-to-ParsedEvent
// synthesis before anything reaches a sink. A sink returns its publish
// error, and Dispatcher logs and swallows it — per-sink delivery failures
// never interrupt the reorder/broadcast loop or the other sinks.
type Channel interface {
	Publish(ctx context.Context, evt events.ParsedEvent) error
	Close() error
}

// filtered pairs a Channel with the category filter that gates it.
type filtered struct {
	name    string
	channel Channel
	filter  config.SinkFilter
}

// Dispatcher fans a parsed event out to every enabled sink whose filter
// allows its category, logging and swallowing any publish error so one
// sink's trouble never blocks another's.
type Dispatcher struct {
	sinks []filtered
}

// NewDispatcher builds an empty dispatcher; call Add for each enabled sink.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers a sink under name, gated by filter.
func (d *Dispatcher) Add(name string, channel Channel, filter config.SinkFilter) {
	d.sinks = append(d.sinks, filtered{name: name, channel: channel, filter: filter})
}

// Len reports how many sinks are registered, used in the pipeline startup
// log line.
func (d *Dispatcher) Len() int { return len(d.sinks) }

// Broadcast publishes evt to every sink whose filter allows its category,
// in registration order.
func (d *Dispatcher) Broadcast(ctx context.Context, evt events.ParsedEvent) {
	for _, s := range d.sinks {
		if !s.filter.Allows(evt.Category) {
			continue
		}
		if err := s.channel.Publish(ctx, evt); err != nil {
			log.WithError(err).WithField("sink", s.name).WithField("category", evt.Category).
				Warn("sink: publish failed")
		}
	}
}

// Close closes every registered sink, logging but not stopping on
// individual close errors.
func (d *Dispatcher) Close() {
	for _, s := range d.sinks {
		if err := s.channel.Close(); err != nil {
			log.WithError(err).WithField("sink", s.name).Warn("sink: close failed")
		}
	}
}
