package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/panelboard/internal/platform/branding"
	"github.com/louisbranch/panelboard/internal/platform/icons"
)

// PageLayoutOptions configures the shared page chrome.
type PageLayoutOptions struct {
	Title string
	Lang  string
	Loc   Localizer
	// Controls is the trailing app bar content. Optional.
	Controls templ.Component
	// Main is the page body rendered inside <main>.
	Main templ.Component
}

// PageLayout renders a full HTML document whose app bar is a HeaderRow:
// brand link leading, caller controls trailing.
func PageLayout(options PageLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := options.Lang
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(
			w,
			`<!doctype html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script src="https://unpkg.com/htmx.org@1.9.12" defer></script></head><body>`,
			templ.EscapeString(lang),
			templ.EscapeString(ComposePageTitle(options.Title)),
		); err != nil {
			return err
		}
		if _, err := io.WriteString(w, icons.LucideSprite()); err != nil {
			return err
		}

		appBar := HeaderRow(HeaderRowConfig{
			Class: "border-b",
			Left:  brandLink(),
			Right: options.Controls,
		})
		if _, err := io.WriteString(w, `<header>`); err != nil {
			return err
		}
		if err := appBar.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</header><main class="p-4">`); err != nil {
			return err
		}
		if options.Main != nil {
			if err := options.Main.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func brandLink() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<a href="/" hx-get="/" class="text-lg font-semibold">`); err != nil {
			return err
		}
		if err := Icon(icons.LucideNameOrDefault(icons.Dashboard)).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, ` %s</a>`, templ.EscapeString(branding.AppName))
		return err
	})
}
