package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merethin/akari/config"
	"github.com/merethin/akari/events"
)

type fakeChannel struct {
	published []events.ParsedEvent
	err       error
	closed    bool
}

func (f *fakeChannel) Publish(_ context.Context, evt events.ParsedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestDispatcher_BroadcastsToAllAllowedSinks(t *testing.T) {
	d := NewDispatcher()
	a := &fakeChannel{}
	b := &fakeChannel{}
	d.Add("a", a, config.SinkFilter{})
	d.Add("b", b, config.SinkFilter{Include: []string{"rochange"}})

	d.Broadcast(context.Background(), events.ParsedEvent{Category: "ndel"})

	require.Len(t, a.published, 1)
	require.Empty(t, b.published)
}

func TestDispatcher_ExcludeFilterBlocksSink(t *testing.T) {
	d := NewDispatcher()
	a := &fakeChannel{}
	d.Add("a", a, config.SinkFilter{Exclude: []string{"ndel"}})

	d.Broadcast(context.Background(), events.ParsedEvent{Category: "ndel"})

	require.Empty(t, a.published)
}

func TestDispatcher_PublishErrorIsSwallowedAndOtherSinksStillRun(t *testing.T) {
	d := NewDispatcher()
	failing := &fakeChannel{err: errTest}
	ok := &fakeChannel{}
	d.Add("failing", failing, config.SinkFilter{})
	d.Add("ok", ok, config.SinkFilter{})

	require.NotPanics(t, func() {
		d.Broadcast(context.Background(), events.ParsedEvent{Category: "ndel"})
	})

	require.Len(t, ok.published, 1)
}

func TestDispatcher_CloseClosesEverySink(t *testing.T) {
	d := NewDispatcher()
	a := &fakeChannel{}
	b := &fakeChannel{}
	d.Add("a", a, config.SinkFilter{})
	d.Add("b", b, config.SinkFilter{})

	d.Close()

	require.True(t, a.closed)
	require.True(t, b.closed)
}

func TestDispatcher_Len(t *testing.T) {
	d := NewDispatcher()
	require.Equal(t, 0, d.Len())
	d.Add("a", &fakeChannel{}, config.SinkFilter{})
	require.Equal(t, 1, d.Len())
}

var errTest = errors.New("boom")
