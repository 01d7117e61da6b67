package events

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestServerEvent_NumericID(t *testing.T) {
	require.Equal(t, int64(100), ServerEvent{ID: "100"}.NumericID())
	require.Equal(t, int64(-1), ServerEvent{ID: "not-a-number"}.NumericID())
	require.Equal(t, int64(-1), ServerEvent{ID: ""}.NumericID())
}

func TestServerEvent_Regions(t *testing.T) {
	e := ServerEvent{Buckets: []string{"region:testlandia", "nation:someone", "region:anotherplace"}}
	require.Equal(t, []string{"testlandia", "anotherplace"}, e.Regions())

	require.Empty(t, ServerEvent{Buckets: []string{"nation:someone"}}.Regions())
	require.Empty(t, ServerEvent{}.Regions())
}

func TestParsedEvent_MarshalJSON_OmitsAbsentFields(t *testing.T) {
	p := ParsedEvent{Event: -1, Time: 200, Category: "unknown", Data: []string{"line"}}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"event":-1,"time":200,"category":"unknown","data":["line"]}`, string(b))
}

func TestParsedEvent_MarshalJSON_OmitsEmptyData(t *testing.T) {
	p := ParsedEvent{Event: 100, Time: 200, Category: "chbanner", Actor: Str("testlandia"), Origin: Str("the_region")}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"event":100,"time":200,"category":"chbanner","actor":"testlandia","origin":"the_region"}`, string(b))
}

func TestParsedEvent_RoundTrip(t *testing.T) {
	p := ParsedEvent{
		Event:       100,
		Time:        200,
		Category:    "rochname",
		Actor:       Str("a"),
		Receptor:    Str("d"),
		Origin:      Str("m"),
		Data:        []string{"l", "s", "+BC", "-X"},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var out ParsedEvent
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, p, out)
}
