package web

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/panelboard/internal/panels"
	"github.com/louisbranch/panelboard/internal/platform/icons"
	"github.com/louisbranch/panelboard/internal/web/htmx"
	"github.com/louisbranch/panelboard/internal/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Hooks the dashboard forwards into panel headers. Interpreting the events
// stays on the browser side; the server only wires the references.
const (
	panelDragStartHook = "event.dataTransfer.setData('text/plain', event.currentTarget.parentElement.id)"
	panelKeyDownHook   = "if (event.key === 'Enter') event.currentTarget.querySelector('a').click()"
)

type handlers struct {
	source panels.Source
	loc    templates.Localizer
	tracer trace.Tracer
}

func newHandlers(source panels.Source, loc templates.Localizer) handlers {
	return handlers{
		source: source,
		loc:    loc,
		tracer: otel.Tracer("panelboard/web"),
	}
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "web.dashboard")
	defer span.End()
	r = r.WithContext(ctx)

	listed, err := h.source.List(ctx)
	if err != nil {
		log.Printf("list panels: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	title := templates.T(h.loc, "Dashboard")
	fragment := dashboardFragment(listed)
	page := templates.PageLayout(templates.PageLayoutOptions{
		Title:    title,
		Loc:      h.loc,
		Controls: settingsControl(),
		Main:     fragment,
	})
	if err := htmx.WritePage(w, r, fragment, page, templates.ComposePageTitle(title)); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

func (h handlers) handlePanel(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "web.panel")
	defer span.End()
	r = r.WithContext(ctx)

	id := r.PathValue("id")
	panel, found, err := h.source.Get(ctx, id)
	if err != nil {
		log.Printf("get panel %s: %v", id, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}

	title := templates.T(h.loc, panel.Title)
	fragment := panelCard(panel)
	page := templates.PageLayout(templates.PageLayoutOptions{
		Title: title,
		Loc:   h.loc,
		Main:  fragment,
	})
	if err := htmx.WritePage(w, r, fragment, page, templates.ComposePageTitle(title)); err != nil {
		log.Printf("render panel %s: %v", id, err)
	}
}

func handleUp(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func dashboardFragment(listed []panels.Panel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="grid gap-4">`); err != nil {
			return err
		}
		for _, panel := range listed {
			if err := panelCard(panel).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func panelCard(panel panels.Panel) templ.Component {
	return templates.PanelCard(templates.PanelCardConfig{
		ID:          panel.ID,
		Title:       panel.Title,
		Icon:        panel.Icon,
		OnDragStart: panelDragStartHook,
		OnKeyDown:   panelKeyDownHook,
		Body:        templates.Text(panel.Body),
	})
}

func settingsControl() templ.Component {
	return templates.Group(
		templates.Icon(icons.LucideNameOrDefault(icons.Settings)),
	)
}
