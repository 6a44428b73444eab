package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/panelboard/internal/platform/icons"
)

// PanelCardConfig configures one dashboard panel card.
type PanelCardConfig struct {
	// ID names the card element so drag hooks can address it.
	ID string
	// Title is the panel heading.
	Title string
	// Icon is the Lucide icon name shown next to the title.
	Icon string
	// Class is merged into the card header's classes.
	Class string
	// OnDragStart is forwarded to the header row.
	OnDragStart string
	// OnKeyDown is forwarded to the header row.
	OnKeyDown string
	// Body is the panel content below the header.
	Body templ.Component
}

// PanelCard renders a panel whose header is a draggable HeaderRow: drag
// handle and title leading, an expand control trailing. The card forwards
// the caller's hooks; it does not interpret drag or key events itself.
func PanelCard(config PanelCardConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(
			w,
			`<section id="panel-%s" class="rounded-box border">`,
			templ.EscapeString(config.ID),
		); err != nil {
			return err
		}

		header := HeaderRow(HeaderRowConfig{
			Class:       MergeClasses("cursor-grab border-b", config.Class),
			Draggable:   true,
			OnDragStart: config.OnDragStart,
			OnKeyDown:   config.OnKeyDown,
			Left: Group(
				dragHandle(),
				panelIcon(config.Icon),
				Text(config.Title),
			),
			Right: expandControl(config.ID),
		})
		if err := header.Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="px-4 py-2">`); err != nil {
			return err
		}
		if config.Body != nil {
			if err := config.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

func dragHandle() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(
			w,
			`<span class="text-base-content/50" aria-label="%s">`,
			templ.EscapeString(icons.Label(icons.DragHandle)),
		); err != nil {
			return err
		}
		if err := Icon(icons.LucideNameOrDefault(icons.DragHandle)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</span>`)
		return err
	})
}

func panelIcon(name string) templ.Component {
	if name == "" {
		return templ.NopComponent
	}
	return Icon(name)
}

func expandControl(id string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		target := "/panels/" + id
		if _, err := fmt.Fprintf(
			w,
			`<a class="btn btn-ghost btn-sm" href="%s" hx-get="%s" aria-label="%s">`,
			templ.EscapeString(target),
			templ.EscapeString(target),
			templ.EscapeString(icons.Label(icons.Expand)),
		); err != nil {
			return err
		}
		if err := Icon(icons.LucideNameOrDefault(icons.Expand)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</a>`)
		return err
	})
}
