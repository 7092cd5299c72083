package codegen_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/uiforge/forge/pkg/codegen"
	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/graphics"
)

func add(p *document.Project, area document.DockArea, props document.Props) *document.Widget {
	return p.Add(graphics.Offset{X: 10, Y: 10}, graphics.Size{Width: 100, Height: 30}, area, props)
}

func TestEscape_RoundTripsThroughGoLiteral(t *testing.T) {
	cases := []string{
		"plain",
		`say "hi"`,
		`back\slash`,
		`C:\path\"quoted"`,
		"line one\nline two",
		"tab\there",
		"cr\rlf\n",
		"",
	}
	for _, s := range cases {
		lit := `"` + codegen.Escape(s) + `"`
		got, err := strconv.Unquote(lit)
		if err != nil {
			t.Errorf("Escape(%q) produced invalid literal %s: %v", s, lit, err)
			continue
		}
		if got != s {
			t.Errorf("Escape(%q) round-tripped to %q", s, got)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.ButtonProps{Text: "Go"})
	add(p, document.AreaTop, &document.LabelProps{Text: "Title"})
	add(p, document.AreaFree, &document.CheckboxProps{Text: "On", Checked: true})

	for _, format := range []codegen.Format{codegen.SingleFile, codegen.SeparateFiles, codegen.UIOnly} {
		a := codegen.Generate(p, format, true)
		b := codegen.Generate(p, format, true)
		if a != b {
			t.Errorf("%s output differs between runs", format.DisplayName())
		}
	}
}

func TestGenerate_EmptyProject(t *testing.T) {
	out := codegen.Generate(document.NewProject(), codegen.SingleFile, true)
	for _, want := range []string{"package main", "type GeneratedState struct", "func generatedUI", "func main()"} {
		if !strings.Contains(out, want) {
			t.Errorf("empty project output missing %q", want)
		}
	}
}

func TestGenerate_RegionOrder(t *testing.T) {
	p := document.NewProject()
	// Added in scrambled order; emission must follow the fixed area order.
	add(p, document.AreaFree, &document.LabelProps{Text: "in-free"})
	add(p, document.AreaCenter, &document.LabelProps{Text: "in-center"})
	add(p, document.AreaRight, &document.LabelProps{Text: "in-right"})
	add(p, document.AreaLeft, &document.LabelProps{Text: "in-left"})
	add(p, document.AreaBottom, &document.LabelProps{Text: "in-bottom"})
	add(p, document.AreaTop, &document.LabelProps{Text: "in-top"})

	out := codegen.Generate(p, codegen.SingleFile, false)
	order := []string{"in-top", "in-bottom", "in-left", "in-right", "in-center", "in-free"}
	last := -1
	for _, label := range order {
		i := strings.Index(out, `"`+label+`"`)
		if i < 0 {
			t.Fatalf("output missing widget %q", label)
		}
		if i < last {
			t.Errorf("widget %q emitted out of area order", label)
		}
		last = i
	}
}

func TestGenerate_CollectionOrderWithinArea(t *testing.T) {
	p := document.NewProject()
	first := add(p, document.AreaCenter, &document.LabelProps{Text: "first-added"})
	add(p, document.AreaCenter, &document.LabelProps{Text: "second-added"})
	// Paint order changes; generated order must not.
	p.BringToFront(first.ID)

	out := codegen.Generate(p, codegen.SingleFile, false)
	if strings.Index(out, "first-added") > strings.Index(out, "second-added") {
		t.Error("generation followed z order instead of collection order")
	}
}

func TestGenerate_ClampsOutOfRangeSelection(t *testing.T) {
	p := document.NewProject()
	w := add(p, document.AreaCenter, &document.ComboBoxProps{
		Text:     "Pick",
		Items:    []string{"a", "b"},
		Selected: 5,
	})

	out := codegen.Generate(p, codegen.SingleFile, false)
	if !strings.Contains(out, "sel"+w.ID.String()+": 1,") {
		t.Errorf("combo selection not clamped to last item:\n%s", out)
	}
}

func TestGenerate_ClampsProgressAndDate(t *testing.T) {
	p := document.NewProject()
	bar := add(p, document.AreaCenter, &document.ProgressBarProps{Value: 3.5})
	date := add(p, document.AreaCenter, &document.DatePickerProps{
		Text: "Due", Year: 2025, Month: 15, Day: 40,
	})

	out := codegen.Generate(p, codegen.SingleFile, false)
	if !strings.Contains(out, "progress"+bar.ID.String()+": 1.000,") {
		t.Error("progress not clamped to 1")
	}
	if !strings.Contains(out, `date`+date.ID.String()+`: "2025-12-28",`) {
		t.Error("date fields not clamped to a real calendar date")
	}
}

func TestGenerate_StateFieldsAndInitializers(t *testing.T) {
	p := document.NewProject()
	check := add(p, document.AreaCenter, &document.CheckboxProps{Text: "On", Checked: true})
	slider := add(p, document.AreaCenter, &document.SliderProps{Text: "Vol", Min: 0, Max: 10, Value: 7})
	add(p, document.AreaCenter, &document.LabelProps{Text: "static"})

	out := codegen.Generate(p, codegen.SingleFile, false)
	for _, want := range []string{
		"checked" + check.ID.String() + " bool",
		"checked" + check.ID.String() + ": true,",
		"value" + slider.ID.String() + " float32",
		"value" + slider.ID.String() + ": 7.000,",
		"enableTop: true, enableBottom: true, enableLeft: true, enableRight: true,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "label") && strings.Contains(out, "static bool") {
		t.Error("display-only label grew a state field")
	}
}

func TestGenerate_EmptyItemsFallBack(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.ComboBoxProps{Text: "Pick"})

	out := codegen.Generate(p, codegen.SingleFile, false)
	if !strings.Contains(out, `[]string{"Item"}`) {
		t.Error("empty item list did not fall back to a single placeholder item")
	}
}

func TestGenerate_TreeHelpersOnlyWhenNeeded(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.ButtonProps{Text: "Go"})
	out := codegen.Generate(p, codegen.SingleFile, true)
	if strings.Contains(out, "genShowTree") {
		t.Error("tree helpers emitted without a tree widget")
	}

	add(p, document.AreaCenter, &document.TreeProps{Text: "T", Lines: []string{"Root", "  Leaf"}})
	out = codegen.Generate(p, codegen.SingleFile, true)
	if !strings.Contains(out, "func genShowTree") {
		t.Error("tree helpers missing with a tree widget present")
	}
	if !strings.Contains(out, `{label: "Root", children: []genTreeNode{`) {
		t.Errorf("tree literal not synthesized from outline:\n%s", out)
	}
}

func TestGenerate_EmptyTreeLinesFallBack(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.TreeProps{Text: "T"})
	out := codegen.Generate(p, codegen.SingleFile, false)
	if !strings.Contains(out, `{label: "Root"`) || !strings.Contains(out, `{label: "Child"`) {
		t.Error("empty tree lines did not fall back to the Root/Child outline")
	}
}

func TestGenerate_TooltipAndDisabled(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.ButtonProps{
		Text:     "Go",
		Behavior: document.Behavior{Tooltip: "runs it", Disabled: true},
	})

	out := codegen.Generate(p, codegen.SingleFile, false)
	begin := strings.Index(out, "imgui.BeginDisabled()")
	end := strings.Index(out, "imgui.EndDisabled()")
	tip := strings.Index(out, `imgui.SetItemTooltip("runs it")`)
	if begin < 0 || end < 0 || tip < 0 {
		t.Fatalf("missing disabled wrap or tooltip:\n%s", out)
	}
	if !(begin < end && end < tip) {
		t.Error("tooltip must attach after the disabled scope closes")
	}
}

func TestGenerate_CommentToggle(t *testing.T) {
	p := document.NewProject()
	withComments := codegen.Generate(p, codegen.SingleFile, true)
	if !strings.Contains(withComments, "// Generated by Forge UI Designer") {
		t.Error("comments-on output missing header banner")
	}
	bare := codegen.Generate(p, codegen.SingleFile, false)
	if !strings.HasPrefix(bare, "// --- generated by Forge UI Designer ---\n") {
		t.Error("comments-off output missing the one-line marker")
	}
	if strings.Contains(bare, "// Application entry point") {
		t.Error("comments-off output still carries section banners")
	}
}

func TestGenerate_UIOnlyOmitsProgram(t *testing.T) {
	p := document.NewProject()
	add(p, document.AreaCenter, &document.ButtonProps{Text: "Go"})

	out := codegen.Generate(p, codegen.UIOnly, true)
	if strings.Contains(out, "package main") || strings.Contains(out, "func main()") {
		t.Error("UI-only output contains program scaffolding")
	}
	for _, want := range []string{"type GeneratedState struct", "func newGeneratedState()", "func generatedUI"} {
		if !strings.Contains(out, want) {
			t.Errorf("UI-only output missing %q", want)
		}
	}
}

func TestGenerate_SeparateFilesFraming(t *testing.T) {
	p := document.NewProject()
	g := codegen.Generator{ModulePath: "github.com/acme/settings-ui"}

	out := g.Generate(p, codegen.SeparateFiles, true)
	modAt := strings.Index(out, "// FILE: go.mod")
	mainAt := strings.Index(out, "// FILE: main.go")
	if modAt < 0 || mainAt < 0 || mainAt < modAt {
		t.Fatalf("FILE markers missing or out of order:\n%s", out)
	}
	for _, want := range []string{
		"module github.com/acme/settings-ui",
		"go 1.24",
		"require github.com/AllenDang/cimgui-go",
		"package main",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("separate-files output missing %q", want)
		}
	}
}

func TestGenerate_InvalidModulePathFallsBack(t *testing.T) {
	p := document.NewProject()
	g := codegen.Generator{ModulePath: "not a module path"}
	out := g.Generate(p, codegen.SeparateFiles, false)
	if !strings.Contains(out, "module example.com/generated-ui") {
		t.Error("invalid module path did not fall back to the default")
	}
}

func TestGenerator_WindowTitleAndSize(t *testing.T) {
	p := document.NewProject()
	g := codegen.Generator{AppName: "Inventory", WindowWidth: 1024, WindowHeight: 600}
	out := g.Generate(p, codegen.SingleFile, false)
	if !strings.Contains(out, `be.CreateWindow("Inventory", 1024, 600)`) {
		t.Error("app name and window size not applied")
	}
	if !strings.Contains(codegen.Generate(p, codegen.SingleFile, false), `be.CreateWindow("Generated UI", 1280, 800)`) {
		t.Error("default window title and size missing")
	}
}
