// Package ingest maintains the single long-lived SSE connection, reframes
// its chunked byte stream into whole messages, detects gaps and
// staleness, and drives reconnection with a fixed backoff schedule.
package ingest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/goccy/go-json"

	"github.com/merethin/akari/events"
	"github.com/merethin/akari/pipeline"
)

// readTimeout bounds a single Read on the response body; exceeding it is
// treated as a transient read error rather than a fatal one.
const readTimeout = 30 * time.Second

// staleTimeout is the longest gap allowed between messages before the
// connection is considered dead and recycled.
const staleTimeout = 30 * time.Second

// defaultDelays is the fixed reconnect backoff schedule: wait delays[min(index,
// len-1)] seconds after the index'th consecutive failure.
var defaultDelays = []time.Duration{
	60 * time.Second,
	120 * time.Second,
	240 * time.Second,
	960 * time.Second,
	1800 * time.Second,
}

// ConnectErrorKind classifies why an initial connection attempt failed.
type ConnectErrorKind int

const (
	WrongStatus ConnectErrorKind = iota
	WrongContentType
)

// ConnectError is returned by connect when the server responds but not in
// the way the stream protocol requires.
type ConnectError struct {
	Kind ConnectErrorKind
	Detail string
}

func (e *ConnectError) Error() string {
	switch e.Kind {
	case WrongContentType:
		return "ingest: unexpected content-type: " + e.Detail
	default:
		return "ingest: unexpected status: " + e.Detail
	}
}

// ClientConfig parameterizes the ingestion loop.
type ClientConfig struct {
	URL       string
	UserAgent string
}

// Client runs the ingestion state machine described by the connect
// contract, framing algorithm, and reconnect loop: one long-lived request
// at a time, reframed into SSE messages, decoded into ServerEvents, gap
// checked, sequenced, and pushed onto out.
type Client struct {
	cfg ClientConfig
	seq *pipeline.SequenceCounter
	out chan<- events.SequencedMessage

	lastEventID int64 // -1 when unknown
	httpClient  *http.Client
}

// NewClient builds a Client that sequences messages through seq and
// publishes them on out.
func NewClient(cfg ClientConfig, seq *pipeline.SequenceCounter, out chan<- events.SequencedMessage) *Client {
	return &Client{
		cfg:         cfg,
		seq:         seq,
		out:         out,
		lastEventID: -1,
		httpClient:  &http.Client{},
	}
}

// Run drives the connect/read/reconnect loop until ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	delays := defaultDelays
	index := 0

	for {
		if ctx.Err() != nil {
			return nil
		}

		body, err := c.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Warn("ingest: connect failed")

			d := delays[index]
			if index < len(delays)-1 {
				index++
			}
			if !sleep(ctx, d) {
				return nil
			}
			continue
		}

		index = 0
		c.publishSystem(events.NewSystemEvent(nowUnix(), events.CategoryConnInit))

		readErr := c.readLoop(ctx, body)
		body.Close()

		c.publishSystem(events.NewSystemEvent(nowUnix(), events.CategoryConnDrop, strconv.FormatInt(c.lastEventID, 10)))

		if ctx.Err() != nil {
			return nil
		}
		if readErr != nil {
			log.WithError(readErr).Warn("ingest: stream read failed, reconnecting")
		}
	}
}

// sleep waits for d or until ctx is cancelled, reporting whether the wait
// completed normally.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// connect opens the request, validates the response, and returns its body
// on success.
func (c *Client) connect(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: failed to build request")
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: connection attempt failed")
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ConnectError{Kind: WrongStatus, Detail: resp.Status}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "event-stream") {
		resp.Body.Close()
		return nil, &ConnectError{Kind: WrongContentType, Detail: ct}
	}

	return resp.Body, nil
}

// readLoop reads chunks from body until it errs or goes stale, framing
// each chunk, decoding complete messages, and publishing the resulting
// ServerEvents and connmiss system events in causal order.
func (c *Client) readLoop(ctx context.Context, body io.ReadCloser) error {
	f := newFramer()
	lastEventInstant := time.Now()
	buf := make([]byte, 4096)

	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := readWithTimeout(body, buf, readTimeout)
		if n > 0 {
			produced := 0
			if f.feed(buf[:n]) {
				for _, msg := range f.drain() {
					if evt, ok := decodeMessage(msg); ok {
						produced++
						c.handleServerEvent(evt)
					}
				}
			}
			if produced > 0 {
				lastEventInstant = time.Now()
			} else if time.Since(lastEventInstant) > staleTimeout {
				return errors.New("ingest: stream stale, no messages received")
			}
		}

		if err != nil {
			if err == io.EOF {
				return errors.New("ingest: stream closed by server")
			}
			if errors.Is(err, errReadTimeout) {
				return errors.New("ingest: read timeout")
			}
			return errors.Wrap(err, "ingest: read error")
		}
	}
}

var errReadTimeout = errors.New("ingest: read timed out")

// readWithTimeout performs one Read, racing it against d. It is not a true
// socket-level deadline (the Read goroutine, if it loses the race, is
// abandoned and may still be running against body), but it is sufficient
// to classify a hung upstream as a transient failure and drive reconnect.
func readWithTimeout(r io.Reader, buf []byte, d time.Duration) (int, error) {
	type result struct {
		n   int
		err error
	}
	ch := make(chan result, 1)
	go func() {
		n, err := r.Read(buf)
		ch <- result{n, err}
	}()

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case res := <-ch:
		return res.n, res.err
	case <-t.C:
		return 0, errReadTimeout
	}
}

// decodeMessage implements SSE message deserialization: scan lines for
// "key: value" pairs and decode the "data" field as a ServerEvent. The
// handshake line (empty key, value "connected") and any unrecognized key
// are ignored.
func decodeMessage(msg rawMessage) (events.ServerEvent, bool) {
	for _, line := range msg.lines {
		key, value := field(line)
		switch key {
		case "":
			// handshake or comment; not an event.
		case "data":
			var evt events.ServerEvent
			if err := json.Unmarshal([]byte(value), &evt); err != nil {
				log.WithError(err).Warn("ingest: failed to decode server event")
				return events.ServerEvent{}, false
			}
			return evt, true
		}
	}
	return events.ServerEvent{}, false
}

// handleServerEvent applies gap detection, sequences, and publishes evt
// (and, if a gap is found, a connmiss system event ahead of it).
func (c *Client) handleServerEvent(evt events.ServerEvent) {
	currentID := evt.NumericID()

	if currentID >= 0 && c.lastEventID >= 0 {
		if currentID == c.lastEventID {
			return
		}
		missed := currentID - (c.lastEventID + 1)
		if missed > 0 {
			c.publishSystem(events.NewSystemEvent(
				nowUnix(),
				events.CategoryConnMiss,
				strconv.FormatInt(missed, 10),
				strconv.FormatInt(c.lastEventID, 10),
				strconv.FormatInt(currentID, 10),
			))
		}
	}

	c.publishServer(evt)
	if currentID >= 0 {
		c.lastEventID = currentID
	}
}

func (c *Client) publishServer(evt events.ServerEvent) {
	c.out <- events.SequencedMessage{SeqID: c.seq.Next(), Message: events.ServerMessage(evt)}
}

func (c *Client) publishSystem(evt events.SystemEvent) {
	c.out <- events.SequencedMessage{SeqID: c.seq.Next(), Message: events.SystemMessage(evt)}
}

func nowUnix() uint64 { return uint64(time.Now().Unix()) }
