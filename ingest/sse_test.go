package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merethin/akari/events"
	"github.com/merethin/akari/pipeline"
)

func TestConnect_RejectsWrongStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{URL: srv.URL, UserAgent: "akari-test"}, seq, out)

	_, err := c.connect(context.Background())
	require.Error(t, err)
	var connErr *ConnectError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, WrongStatus, connErr.Kind)
}

func TestConnect_RejectsWrongContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{URL: srv.URL, UserAgent: "akari-test"}, seq, out)

	_, err := c.connect(context.Background())
	require.Error(t, err)
	var connErr *ConnectError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, WrongContentType, connErr.Kind)
}

func TestConnect_AcceptsEventStreamContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "akari-test", r.Header.Get("User-Agent"))
		require.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{URL: srv.URL, UserAgent: "akari-test"}, seq, out)

	body, err := c.connect(context.Background())
	require.NoError(t, err)
	body.Close()
}

func TestHandleServerEvent_NoGapOnConsecutiveIDs(t *testing.T) {
	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{}, seq, out)
	c.lastEventID = 9

	c.handleServerEvent(events.ServerEvent{ID: "10"})

	msg := <-out
	require.NotNil(t, msg.Message.Server)
	require.Equal(t, "10", msg.Message.Server.ID)
	require.Equal(t, int64(10), c.lastEventID)
	require.Empty(t, out)
}

func TestHandleServerEvent_EmitsConnmissBeforeServerEvent(t *testing.T) {
	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{}, seq, out)
	c.lastEventID = 10

	c.handleServerEvent(events.ServerEvent{ID: "13"})

	first := <-out
	require.NotNil(t, first.Message.System)
	require.Equal(t, events.CategoryConnMiss, first.Message.System.Category)
	require.Equal(t, []string{"2", "10", "13"}, first.Message.System.Data)

	second := <-out
	require.NotNil(t, second.Message.Server)
	require.Equal(t, "13", second.Message.Server.ID)

	require.Less(t, first.SeqID, second.SeqID)
	require.Equal(t, int64(13), c.lastEventID)
}

func TestHandleServerEvent_DropsDuplicateID(t *testing.T) {
	seq := &pipeline.SequenceCounter{}
	out := make(chan events.SequencedMessage, 8)
	c := NewClient(ClientConfig{}, seq, out)
	c.lastEventID = 10

	c.handleServerEvent(events.ServerEvent{ID: "10"})

	require.Empty(t, out)
	require.Equal(t, int64(10), c.lastEventID)
}

func TestDecodeMessage_IgnoresHandshake(t *testing.T) {
	_, ok := decodeMessage(rawMessage{lines: []string{": connected"}})
	require.False(t, ok)
}

func TestDecodeMessage_DecodesDataField(t *testing.T) {
	evt, ok := decodeMessage(rawMessage{lines: []string{`data: {"id":"5","time":100,"str":"hello","buckets":["region:x"]}`}})
	require.True(t, ok)
	require.Equal(t, "5", evt.ID)
	require.Equal(t, uint64(100), evt.Time)
	require.Equal(t, []string{"x"}, evt.Regions())
}

func TestDecodeMessage_MalformedDataIsSkipped(t *testing.T) {
	_, ok := decodeMessage(rawMessage{lines: []string{"data: not json"}})
	require.False(t, ok)
}
