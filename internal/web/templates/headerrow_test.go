package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderHeaderRow(t *testing.T, config HeaderRowConfig) string {
	t.Helper()
	var buf bytes.Buffer
	if err := HeaderRow(config).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render HeaderRow: %v", err)
	}
	return buf.String()
}

func TestHeaderRowRendersLeadingGroupAndTrailingSibling(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{Left: Text("A"), Right: Text("B")})
	if !strings.Contains(got, `<div class="flex items-center gap-2">A</div>`) {
		t.Fatalf("expected leading content inside flex group, got %q", got)
	}
	if !strings.HasSuffix(got, `</div>B</div>`) {
		t.Fatalf("expected trailing content as a sibling of the leading group, got %q", got)
	}
	if strings.Count(got, "<div") != 2 {
		t.Fatalf("expected exactly one container and one leading group, got %q", got)
	}
}

func TestHeaderRowAlwaysCarriesBaseClasses(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{Left: Text("A"), Right: Text("B")})
	if !strings.Contains(got, "flex items-center justify-between px-4 py-2") {
		t.Fatalf("expected base container classes, got %q", got)
	}
}

func TestHeaderRowMergesClassOverrideAfterBaseClasses(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{Class: "border-b", Left: Text("A"), Right: Text("B")})
	if !strings.Contains(got, `class="flex items-center justify-between px-4 py-2 border-b"`) {
		t.Fatalf("expected override merged after base classes, got %q", got)
	}
}

func TestHeaderRowOmitsHandlerAttributesByDefault(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{Left: Text("A"), Right: Text("B")})
	if strings.Contains(got, "onkeydown") {
		t.Fatalf("expected no key handler attribute, got %q", got)
	}
	if strings.Contains(got, "ondragstart") {
		t.Fatalf("expected no drag handler attribute, got %q", got)
	}
	if strings.Contains(got, "draggable") {
		t.Fatalf("expected no draggable attribute, got %q", got)
	}
}

func TestHeaderRowForwardsKeyHandlerOnce(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{OnKeyDown: "handleKey(event)", Left: Text("A"), Right: Text("B")})
	if strings.Count(got, `onkeydown="handleKey(event)"`) != 1 {
		t.Fatalf("expected key handler attached exactly once, got %q", got)
	}
}

func TestHeaderRowForwardsDragHandlerAndFlag(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{
		Draggable:   true,
		OnDragStart: "startDrag(event)",
		Left:        Text("A"),
		Right:       Text("B"),
	})
	if strings.Count(got, `draggable="true"`) != 1 {
		t.Fatalf("expected draggable flag on container, got %q", got)
	}
	if strings.Count(got, `ondragstart="startDrag(event)"`) != 1 {
		t.Fatalf("expected drag handler attached exactly once, got %q", got)
	}
}

func TestHeaderRowEscapesHandlerValues(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{OnKeyDown: `go("x")`, Left: Text("A"), Right: Text("B")})
	if strings.Contains(got, `onkeydown="go("x")"`) {
		t.Fatalf("expected handler value to be escaped, got %q", got)
	}
	if !strings.Contains(got, "onkeydown=") {
		t.Fatalf("expected escaped handler attribute present, got %q", got)
	}
}

func TestHeaderRowFullConfiguration(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{
		Class:     "x",
		Draggable: true,
		Left:      Text("A"),
		Right:     Text("B"),
	})
	if !strings.Contains(got, `class="flex items-center justify-between px-4 py-2 x"`) {
		t.Fatalf("expected base classes plus override, got %q", got)
	}
	if !strings.Contains(got, `draggable="true"`) {
		t.Fatalf("expected draggable container, got %q", got)
	}
	if !strings.Contains(got, `<div class="flex items-center gap-2">A</div>`) {
		t.Fatalf("expected leading wrapper containing A, got %q", got)
	}
	if !strings.HasSuffix(got, `B</div>`) {
		t.Fatalf("expected B rendered as trailing sibling, got %q", got)
	}
}

func TestHeaderRowRendersWithoutContent(t *testing.T) {
	got := renderHeaderRow(t, HeaderRowConfig{})
	if !strings.Contains(got, `<div class="flex items-center gap-2"></div>`) {
		t.Fatalf("expected empty leading group, got %q", got)
	}
}

func TestGroupSkipsNilChildren(t *testing.T) {
	var buf bytes.Buffer
	if err := Group(nil, Text("A"), nil, Text("B")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Group: %v", err)
	}
	if buf.String() != "AB" {
		t.Fatalf("Group output = %q, want %q", buf.String(), "AB")
	}
}

func TestTextEscapesMarkup(t *testing.T) {
	var buf bytes.Buffer
	if err := Text("<b>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Text: %v", err)
	}
	if buf.String() != "&lt;b&gt;" {
		t.Fatalf("Text output = %q, want %q", buf.String(), "&lt;b&gt;")
	}
}
