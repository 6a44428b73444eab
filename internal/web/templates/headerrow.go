package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Base classes for the header row container and its leading group. Caller
// overrides are merged after the container classes, never instead of them.
const (
	headerRowClass     = "flex items-center justify-between px-4 py-2"
	headerRowLeadClass = "flex items-center gap-2"
)

// HeaderRowConfig configures a single header row container.
type HeaderRowConfig struct {
	// Class is merged after the base container classes.
	Class string
	// OnKeyDown is attached as the container's key handler when non-empty.
	OnKeyDown string
	// OnDragStart is attached as the container's drag handler when non-empty.
	OnDragStart string
	// Draggable opts the container into drag gestures.
	Draggable bool
	// Left is the leading content, wrapped in an inner flex group so multiple
	// leading elements align consistently.
	Left templ.Component
	// Right is the trailing content, rendered as a direct sibling of the
	// leading group.
	Right templ.Component
}

// HeaderRow renders a horizontal container pairing a leading content group
// and trailing content, justified apart. Handlers and the draggable flag are
// forwarded to the container; any that are omitted simply leave the matching
// behavior inactive.
func HeaderRow(config HeaderRowConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="%s"`, templ.EscapeString(MergeClasses(headerRowClass, config.Class))); err != nil {
			return err
		}
		if config.Draggable {
			if _, err := io.WriteString(w, ` draggable="true"`); err != nil {
				return err
			}
		}
		if config.OnKeyDown != "" {
			if _, err := fmt.Fprintf(w, ` onkeydown="%s"`, templ.EscapeString(config.OnKeyDown)); err != nil {
				return err
			}
		}
		if config.OnDragStart != "" {
			if _, err := fmt.Fprintf(w, ` ondragstart="%s"`, templ.EscapeString(config.OnDragStart)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `><div class="%s">`, headerRowLeadClass); err != nil {
			return err
		}
		if config.Left != nil {
			if err := config.Left.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if config.Right != nil {
			if err := config.Right.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Text renders an escaped text node for use as header row content.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Group renders components in sequence, for composing leading content.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
