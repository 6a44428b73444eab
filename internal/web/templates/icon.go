package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/panelboard/internal/platform/icons"
)

// Icon renders a Lucide sprite reference sized for inline chrome controls.
func Icon(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(
			w,
			`<svg class="size-4" aria-hidden="true"><use href="#%s"></use></svg>`,
			templ.EscapeString(icons.LucideSymbolID(name)),
		)
		return err
	})
}
