package templates

import (
	"strings"

	"github.com/a-h/templ"
)

// MergeClasses merges ordered class fragments into a single class string.
// Blank fragments are dropped; ordering is preserved so later fragments can
// visually supersede earlier ones under normal cascade rules. The merge
// itself is delegated to templ's class handling.
func MergeClasses(classes ...string) string {
	merged := make([]any, 0, len(classes))
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		merged = append(merged, class)
	}
	return templ.Classes(merged...).String()
}
