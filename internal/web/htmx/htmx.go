// Package htmx detects HTMX requests and renders fragment or full-page responses.
package htmx

import (
	"bytes"
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// ErrNoComponent is returned when a page renderer receives no component.
var ErrNoComponent = errors.New("htmx: no page component provided")

// IsRequest reports whether the request was initiated by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// WritePage renders fragment for HTMX requests and full otherwise.
//
// HTMX responses that do not already carry a `<title>` get one prepended so
// partial navigation still updates the document title. When fragment is nil,
// full serves both paths (and vice versa).
func WritePage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, title string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if IsRequest(r) {
		target := fragment
		if target == nil {
			target = full
		}
		if target == nil {
			return ErrNoComponent
		}
		var buf bytes.Buffer
		if err := target.Render(r.Context(), &buf); err != nil {
			return err
		}
		body := buf.Bytes()
		if !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
			if tag := TitleTag(title); tag != "" {
				body = append([]byte(tag), body...)
			}
		}
		_, err := w.Write(body)
		return err
	}

	if full == nil {
		full = fragment
	}
	if full == nil {
		return ErrNoComponent
	}
	return full.Render(r.Context(), w)
}
