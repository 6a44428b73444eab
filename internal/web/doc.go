// Package web serves the panelboard browser UI.
//
// It owns route wiring and page rendering: the dashboard composes one panel
// card per catalog entry, and each card header forwards the drag/key hooks
// the browser-side behavior attaches to.
package web
