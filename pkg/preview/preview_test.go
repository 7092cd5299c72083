package preview_test

import (
	"strings"
	"testing"

	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/graphics"
	"github.com/uiforge/forge/pkg/preview"
)

func TestRender_GroupsByArea(t *testing.T) {
	p := document.NewProject()
	p.PanelRight = false
	p.Add(graphics.Offset{X: 24, Y: 16}, graphics.Size{Width: 160, Height: 32},
		document.AreaCenter, &document.ButtonProps{Text: "Save"})
	p.Add(graphics.Offset{X: 8, Y: 8}, graphics.Size{Width: 100, Height: 20},
		document.AreaTop, &document.LabelProps{Text: "Title"})

	out := preview.Render(p)
	for _, want := range []string{
		"Canvas: 960x640",
		"Panels: top=true bottom=true left=true right=false",
		"Widgets: 2",
		"[top]",
		"[center]",
		`"Save"`,
		`"Title"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "[top]") > strings.Index(out, "[center]") {
		t.Error("areas rendered out of order")
	}
	if strings.Contains(out, "[left]") {
		t.Error("empty areas must be omitted")
	}
}

func TestRender_TreeOutline(t *testing.T) {
	p := document.NewProject()
	p.Add(graphics.Offset{}, graphics.Size{Width: 200, Height: 160},
		document.AreaCenter, &document.TreeProps{
			Text:  "Files",
			Lines: []string{"src", "  main.go"},
		})

	out := preview.Render(p)
	if !strings.Contains(out, "- src\n      - main.go\n") {
		t.Errorf("tree outline not rendered with nesting:\n%s", out)
	}
}
