package sink

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merethin/akari/events"
)

func TestConsole_PublishWritesCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf}

	actor := "testlandia"
	err := c.Publish(context.Background(), events.ParsedEvent{
		Category: "ndel",
		Actor:    &actor,
		Data:     []string{"foo", "bar"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "[ndel]")
	require.Contains(t, out, "actor=testlandia")
	require.Contains(t, out, "data=[foo bar]")
}

func TestConsole_PublishOmitsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf}

	err := c.Publish(context.Background(), events.ParsedEvent{Category: "unknown"})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "[unknown]")
	require.NotContains(t, out, "actor=")
	require.NotContains(t, out, "data=")
}

func TestCategoryColor_GroupsByPrefix(t *testing.T) {
	require.True(t, categoryColor("connmiss").Equals(categoryColor("conndrop")))
	require.True(t, categoryColor("rochange").Equals(categoryColor("ndel")))
	require.False(t, categoryColor("rochange").Equals(categoryColor("rspass")))
}
