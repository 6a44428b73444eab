// Package templates holds the shared templ components for panelboard chrome.
//
// Components are plain functions from option structs to templ.Component so
// handlers can compose pages without knowing markup details. The central
// building block is HeaderRow, which both the app bar and panel cards reuse.
package templates
