package sink

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"emperror.dev/errors"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/goccy/go-json"

	"github.com/merethin/akari/events"
)

// Document indexes parsed events into per-day Elasticsearch indices, so
// an operator can drop old indices wholesale instead of running deletes
// against one ever-growing index.
type Document struct {
	client *elasticsearch.Client
}

// NewDocument builds an Elasticsearch client from addresses (the config's
// addresses array of node URLs).
func NewDocument(addresses []string) (*Document, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, errors.Wrap(err, "sink: failed to build elasticsearch client")
	}
	return &Document{client: client}, nil
}

// indexName derives "happenings-YYYY.MM.DD" from the event's own
// timestamp, not the indexing wall-clock time, so a replayed backlog lands
// in the index matching when the event actually happened.
func indexName(evt events.ParsedEvent) string {
	t := time.Unix(int64(evt.Time), 0).UTC()
	return fmt.Sprintf("happenings-%04d.%02d.%02d", t.Year(), t.Month(), t.Day())
}

// Publish indexes evt into the index matching its timestamp.
func (d *Document) Publish(ctx context.Context, evt events.ParsedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "sink: failed to marshal event")
	}

	req := esapi.IndexRequest{
		Index:   indexName(evt),
		Body:    bytes.NewReader(payload),
		Refresh: "false",
	}

	res, err := req.Do(ctx, d.client)
	if err != nil {
		return errors.Wrap(err, "sink: failed to index event")
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Errorf("sink: elasticsearch returned %s", res.Status())
	}
	return nil
}

// Close is a no-op; the client holds no long-lived connection to release.
func (d *Document) Close() error { return nil }
