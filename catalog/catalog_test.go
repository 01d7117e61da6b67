package catalog

import (
	"testing"

	"github.com/merethin/akari/events"
	"github.com/stretchr/testify/require"
)

func TestClassify_Chbanner(t *testing.T) {
	c := New()
	out, ok := c.Classify("@@a@@ changed a custom banner.", []string{"b"})
	require.True(t, ok)
	require.Equal(t, "chbanner", out.Category)
	require.Equal(t, events.Str("a"), out.Actor)
	require.Equal(t, events.Str("b"), out.Origin)
	require.Nil(t, out.Receptor)
	require.Nil(t, out.Destination)
	require.Empty(t, out.Data)
}

func TestClassify_Ndel(t *testing.T) {
	c := New()
	out, ok := c.Classify("@@a@@ became WA Delegate of %%b%%.", nil)
	require.True(t, ok)
	require.Equal(t, "ndel", out.Category)
	require.Nil(t, out.Actor)
	require.Equal(t, events.Str("a"), out.Receptor)
	require.Equal(t, events.Str("b"), out.Origin)
}

func TestClassify_Rochname(t *testing.T) {
	c := New()
	line := `@@a@@ granted <i class="b"></i>Bb and <i class="c"></i>Cc authority and removed <i class="e"></i>Ex authority from @@d@@ and renamed the office from "l" to "s" in %%m%%.`
	out, ok := c.Classify(line, []string{"somewhere-else"})
	require.True(t, ok)
	require.Equal(t, "rochname", out.Category)
	require.Equal(t, events.Str("a"), out.Actor)
	require.Equal(t, events.Str("d"), out.Receptor)
	require.Equal(t, events.Str("m"), out.Origin)
	require.Equal(t, []string{"l", "s", "+BC", "-X"}, out.Data)
}

func TestClassify_RochangeSingleGrant(t *testing.T) {
	c := New()
	line := `@@a@@ granted <i class="b"></i>Bb authority in %%m%%.`
	out, ok := c.Classify(line, nil)
	require.True(t, ok)
	require.Equal(t, "rochange", out.Category)
	require.Equal(t, events.Str("a"), out.Actor)
	require.Nil(t, out.Receptor)
	require.Equal(t, events.Str("m"), out.Origin)
	require.Equal(t, []string{"+B"}, out.Data)
}

func TestClassify_UnknownFallback(t *testing.T) {
	c := New()
	out, ok := c.Classify("some completely unrecognized happening text", nil)
	require.True(t, ok)
	require.Equal(t, events.CategoryUnknown, out.Category)
	require.Equal(t, []string{"some completely unrecognized happening text"}, out.Data)
}

func TestClassify_TrimsTrailingDot(t *testing.T) {
	c := New()
	out, _ := c.Classify("@@a@@ changed a custom banner.", nil)
	require.Equal(t, "chbanner", out.Category)
}

func TestClassify_SkippedCollision(t *testing.T) {
	c := New()
	out, ok := c.Classify("Annexed by %%bigregion%%.", nil)
	require.True(t, ok)
	require.Equal(t, events.CategorySkipped, out.Category)
}

func TestClassify_RochangeSingleRemoval(t *testing.T) {
	c := New()
	// rochange with the "removed" verb and no combined clause: only the
	// first authority listing is reported, as a removal.
	line := `@@a@@ removed <i class="b"></i>Bb authority in %%m%%.`
	out, ok := c.Classify(line, nil)
	require.True(t, ok)
	require.Equal(t, []string{"-B"}, out.Data)
}

func TestClassify_Eject(t *testing.T) {
	c := New()
	out, ok := c.Classify("@@a@@ was ejected from %%b%% by @@c@@.", nil)
	require.True(t, ok)
	require.Equal(t, "eject", out.Category)
	require.Equal(t, events.Str("a"), out.Receptor)
	require.Equal(t, events.Str("b"), out.Origin)
	require.Equal(t, events.Str("c"), out.Actor)
}

func TestClassify_Mendo(t *testing.T) {
	c := New()
	out, ok := c.Classify("@@a@@ endorsed &&b&&.", nil)
	require.True(t, ok)
	require.Equal(t, "mendo", out.Category)
	require.Equal(t, events.Str("a"), out.Actor)
	require.Equal(t, events.Str("b"), out.Receptor)
}

func TestClassify_RvfieldDistinguishesField(t *testing.T) {
	c := New()
	out, ok := c.Classify("@@a@@ revoked its national leader.", nil)
	require.True(t, ok)
	require.Equal(t, "rvfield", out.Category)
	require.Equal(t, []string{"leader"}, out.Data)
}

func TestLen_MatchesBuiltinTable(t *testing.T) {
	c := New()
	require.Equal(t, len(defaultEntries()), c.Len())
	require.Greater(t, c.Len(), 30)
}
