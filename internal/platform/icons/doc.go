// Package icons defines the icon identifiers used by panelboard chrome.
//
// Identifiers are stable and presentation-neutral; the web layer resolves
// them to Lucide sprite symbols at render time.
package icons
