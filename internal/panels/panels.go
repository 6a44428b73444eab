// Package panels defines the dashboard panel catalog consumed by the web chrome.
package panels

import "context"

// Panel describes one dashboard panel.
type Panel struct {
	// ID is the stable panel identifier used in routes.
	ID string
	// Title is the panel heading shown in its header row.
	Title string
	// Icon is the Lucide icon name for the panel header.
	Icon string
	// Body is the panel's rendered text content.
	Body string
	// Position orders panels on the dashboard, lowest first.
	Position int
}

// Source lists and resolves dashboard panels.
type Source interface {
	List(ctx context.Context) ([]Panel, error)
	Get(ctx context.Context, id string) (Panel, bool, error)
}
