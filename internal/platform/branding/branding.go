// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name rendered in page chrome and titles.
const AppName = "Panelboard"
