package icons

const lucideSymbolPrefix = "lucide-"

// ID identifies a chrome icon independently of its rendered form.
type ID int

const (
	Generic ID = iota
	Dashboard
	Panel
	DragHandle
	Expand
	Close
	Settings
)

var lucideIconNames = map[ID]string{
	Generic:    "sparkle",
	Dashboard:  "layout-grid",
	Panel:      "panel-top",
	DragHandle: "grip-vertical",
	Expand:     "maximize-2",
	Close:      "x",
	Settings:   "settings",
}

var iconLabels = map[ID]string{
	Generic:    "Generic",
	Dashboard:  "Dashboard",
	Panel:      "Panel",
	DragHandle: "Drag handle",
	Expand:     "Expand",
	Close:      "Close",
	Settings:   "Settings",
}

// LucideName returns the Lucide icon name for a core icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "sparkle"
}

// Label returns the human-readable label for an icon identifier.
func Label(id ID) string {
	if label, ok := iconLabels[id]; ok {
		return label
	}
	return iconLabels[Generic]
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for core Lucide icons.
func LucideSprite() string {
	return lucideSprite
}
