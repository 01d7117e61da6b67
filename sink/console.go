package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/merethin/akari/events"
)

// categoryColor picks a consistent color family per category so a
// console watching the feed can pattern-match at a glance: system (conn*)
// categories in red, authority/officer categories (ro*, rdel*, ndel) in
// yellow, WA resolution categories (rs*) in magenta, unknown and skipped in
// grey, everything else in cyan.
func categoryColor(category string) *color.Color {
	switch {
	case strings.HasPrefix(category, "conn"):
		return color.New(color.FgRed)
	case strings.HasPrefix(category, "ro") || strings.HasPrefix(category, "rdel") || category == "ndel":
		return color.New(color.FgYellow)
	case strings.HasPrefix(category, "rs"):
		return color.New(color.FgMagenta)
	case category == "unknown" || category == "skipped":
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgCyan)
	}
}

// Console prints parsed events to an ANSI-colorized writer, falling back
// to plain text on a non-color terminal (colorable.NewColorable already
// strips codes on Windows when not attached to a real console).
type Console struct {
	out io.Writer
}

// NewConsole builds a console sink writing to os.Stdout through
// go-colorable, so ANSI sequences render correctly across platforms.
func NewConsole() *Console {
	return &Console{out: colorable.NewColorableStdout()}
}

// Publish writes one line per event: the category tag, then each present
// field, then any data tokens.
func (c *Console) Publish(_ context.Context, evt events.ParsedEvent) error {
	var b strings.Builder
	categoryColor(evt.Category).Fprintf(&b, "[%s]", evt.Category)
	if evt.Actor != nil {
		fmt.Fprintf(&b, " actor=%s", *evt.Actor)
	}
	if evt.Receptor != nil {
		fmt.Fprintf(&b, " receptor=%s", *evt.Receptor)
	}
	if evt.Origin != nil {
		fmt.Fprintf(&b, " origin=%s", *evt.Origin)
	}
	if evt.Destination != nil {
		fmt.Fprintf(&b, " destination=%s", *evt.Destination)
	}
	if len(evt.Data) > 0 {
		fmt.Fprintf(&b, " data=%v", evt.Data)
	}
	_, err := fmt.Fprintln(c.out, b.String())
	return err
}

// Close is a no-op; the console sink owns no resources of its own.
func (c *Console) Close() error { return nil }
