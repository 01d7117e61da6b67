package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merethin/akari/catalog"
	"github.com/merethin/akari/events"
)

func TestClassifyServerEvent_StampsEventAndTime(t *testing.T) {
	cat := catalog.New()
	evt := events.ServerEvent{ID: "100", Time: 200, Text: "@@a@@ changed a custom banner.", Buckets: []string{"region:b"}}

	parsed, ok := classifyServerEvent(cat, evt)
	require.True(t, ok)
	require.Equal(t, "chbanner", parsed.Category)
	require.Equal(t, int64(100), parsed.Event)
	require.Equal(t, uint64(200), parsed.Time)
}

func TestClassifyServerEvent_UnknownCategoryForcesEventNegativeOne(t *testing.T) {
	cat := catalog.New()
	evt := events.ServerEvent{ID: "100", Time: 200, Text: "Unmapped nonsense"}

	parsed, ok := classifyServerEvent(cat, evt)
	require.True(t, ok)
	require.Equal(t, events.CategoryUnknown, parsed.Category)
	require.Equal(t, int64(-1), parsed.Event)
	require.Equal(t, []string{"Unmapped nonsense"}, parsed.Data)
}

func TestClassifyServerEvent_SkippedCategoryForcesEventNegativeOne(t *testing.T) {
	cat := catalog.New()
	evt := events.ServerEvent{ID: "100", Time: 200, Text: "Annexed by %%bigregion%%."}

	parsed, ok := classifyServerEvent(cat, evt)
	require.True(t, ok)
	require.Equal(t, events.CategorySkipped, parsed.Category)
	require.Equal(t, int64(-1), parsed.Event)
}

func TestClassifyServerEvent_UnparseableIDYieldsNegativeOne(t *testing.T) {
	cat := catalog.New()
	evt := events.ServerEvent{ID: "not-a-number", Time: 200, Text: "@@a@@ changed a custom banner.", Buckets: []string{"region:b"}}

	parsed, ok := classifyServerEvent(cat, evt)
	require.True(t, ok)
	require.Equal(t, "chbanner", parsed.Category)
	require.Equal(t, int64(-1), parsed.Event)
}

func TestSynthesizeSystemEvent_CarriesCategoryAndData(t *testing.T) {
	sys := events.NewSystemEvent(42, events.CategoryConnMiss, "2", "10", "13")
	parsed := synthesizeSystemEvent(sys)

	require.Equal(t, int64(-1), parsed.Event)
	require.Equal(t, uint64(42), parsed.Time)
	require.Equal(t, events.CategoryConnMiss, parsed.Category)
	require.Equal(t, []string{"2", "10", "13"}, parsed.Data)
}
