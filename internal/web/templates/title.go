package templates

import (
	"strings"

	"github.com/louisbranch/panelboard/internal/platform/branding"
)

// ComposePageTitle appends the brand suffix to a page title. Titles that
// already carry the suffix are normalized to the pipe form instead of being
// suffixed twice.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if trimmed, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		title = strings.TrimSpace(trimmed)
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}
