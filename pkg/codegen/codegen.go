// Package codegen turns a designer document into Go source text targeting
// the cimgui-go immediate-mode bindings. Generation is a pure function of
// the project: it never mutates the document, never performs I/O, and never
// fails; inconsistent property data is clamped at the point of use.
package codegen

import (
	"fmt"
	"strings"

	"github.com/uiforge/forge/pkg/document"
)

// Format selects the shape of the generated text.
type Format int

const (
	// SingleFile is one self-contained program: helpers, state record,
	// render routine, and a runnable application wrapper.
	SingleFile Format = iota
	// SeparateFiles frames the single-file output with textual go.mod and
	// main.go section markers; no files are written.
	SeparateFiles
	// UIOnly emits the state record and render routine for embedding into a
	// caller-owned application.
	UIOnly
)

// DisplayName returns the label shown in the format selector.
func (f Format) DisplayName() string {
	switch f {
	case SeparateFiles:
		return "Separate Files"
	case UIOnly:
		return "UI Function Only"
	default:
		return "Single File"
	}
}

// Panel bar heights and side widths in the emitted chrome, in pixels.
const (
	panelBar  = 96.0
	panelSide = 200.0
)

const defaultModulePath = "example.com/generated-ui"

// Generator carries the knobs that do not live in the document itself.
// The zero value generates a standalone "Generated UI" program.
type Generator struct {
	// ModulePath names the module in SeparateFiles manifests. Invalid or
	// empty paths silently fall back to example.com/generated-ui; generation
	// has no error path.
	ModulePath string
	// AppName is the window title of the generated program.
	AppName string
	// WindowWidth and WindowHeight size the generated program's window;
	// non-positive values fall back to 1280x800.
	WindowWidth  int
	WindowHeight int
}

// Generate renders the project in the requested format. Two calls on an
// unmodified project produce byte-identical text.
func Generate(p *document.Project, format Format, includeComments bool) string {
	return Generator{}.Generate(p, format, includeComments)
}

// Generate renders the project in the requested format.
func (g Generator) Generate(p *document.Project, format Format, includeComments bool) string {
	switch format {
	case SeparateFiles:
		return g.separateFiles(p, includeComments)
	case UIOnly:
		return g.uiOnly(p, includeComments)
	default:
		return g.singleFile(p, includeComments)
	}
}

const banner = "// =============================================================================\n"

func (g Generator) singleFile(p *document.Project, includeComments bool) string {
	var b strings.Builder

	if includeComments {
		b.WriteString(banner)
		b.WriteString("// Generated by Forge UI Designer\n")
		b.WriteString("// https://github.com/uiforge/forge\n")
		b.WriteString(banner)
		b.WriteString("\n")
	} else {
		b.WriteString("// --- generated by Forge UI Designer ---\n")
	}

	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/AllenDang/cimgui-go/backend\"\n")
	b.WriteString("\t\"github.com/AllenDang/cimgui-go/backend/glfwbackend\"\n")
	b.WriteString("\t\"github.com/AllenDang/cimgui-go/imgui\"\n")
	b.WriteString(")\n\n")

	if p.HasKind(document.KindTree) {
		b.WriteString(treeHelpers)
	}
	writeStateStruct(&b, p)
	writeStateInit(&b, p)
	writeUIFunc(&b, p)

	if includeComments {
		b.WriteString(banner)
		b.WriteString("// Application entry point\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString("func main() {\n")
	b.WriteString("\tbe, err := backend.CreateBackend(glfwbackend.NewGLFWBackend())\n")
	b.WriteString("\tif err != nil {\n")
	b.WriteString("\t\tpanic(err)\n")
	b.WriteString("\t}\n")
	width, height := g.windowSize()
	fmt.Fprintf(&b, "\tbe.CreateWindow(%s, %d, %d)\n", quote(g.appName()), width, height)
	b.WriteString("\tstate := newGeneratedState()\n")
	b.WriteString("\tbe.Run(func() {\n")
	b.WriteString("\t\tgeneratedUI(state)\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n")

	return b.String()
}

func (g Generator) separateFiles(p *document.Project, includeComments bool) string {
	var b strings.Builder

	b.WriteString(banner)
	b.WriteString("// FILE: go.mod\n")
	b.WriteString(banner)
	b.WriteString(g.manifest())
	b.WriteString("\n")

	b.WriteString(banner)
	b.WriteString("// FILE: main.go\n")
	b.WriteString(banner)
	b.WriteString(g.singleFile(p, includeComments))

	return b.String()
}

func (g Generator) uiOnly(p *document.Project, includeComments bool) string {
	var b strings.Builder

	if includeComments {
		b.WriteString("// UI function generated by Forge UI Designer\n")
		b.WriteString("// Embed this in your existing application\n\n")
		b.WriteString("// Required state struct for the UI\n")
	}
	if p.HasKind(document.KindTree) {
		b.WriteString(treeHelpers)
	}
	writeStateStruct(&b, p)
	writeStateInit(&b, p)

	if includeComments {
		b.WriteString("// Call generatedUI(state) once per frame from your render loop.\n\n")
	}
	writeUIFunc(&b, p)

	return b.String()
}

func (g Generator) appName() string {
	if g.AppName != "" {
		return g.AppName
	}
	return "Generated UI"
}

func (g Generator) windowSize() (width, height int) {
	width, height = g.WindowWidth, g.WindowHeight
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 800
	}
	return width, height
}

// writeUIFunc emits the per-frame render routine. Areas come out in the
// fixed order Top, Bottom, Left, Right, Center, then Free within the central
// canvas; within one area widgets keep project collection order, not the
// canvas paint order (which follows z).
func writeUIFunc(b *strings.Builder, p *document.Project) {
	b.WriteString("func generatedUI(state *GeneratedState) {\n")
	b.WriteString("\tviewport := imgui.MainViewport()\n")
	b.WriteString("\timgui.SetNextWindowPos(viewport.Pos())\n")
	b.WriteString("\timgui.SetNextWindowSize(viewport.Size())\n")
	b.WriteString("\timgui.BeginV(\"##generated\", nil, imgui.WindowFlagsNoDecoration|imgui.WindowFlagsNoMove|imgui.WindowFlagsNoBringToFrontOnFocus)\n\n")

	b.WriteString("\tavail := imgui.ContentRegionAvail()\n")
	b.WriteString("\ttopEdge := float32(0)\n")
	b.WriteString("\tif state.enableTop {\n")
	fmt.Fprintf(b, "\t\ttopEdge = %g\n", panelBar)
	b.WriteString("\t}\n")
	b.WriteString("\tbottomEdge := avail.Y\n")
	b.WriteString("\tif state.enableBottom {\n")
	fmt.Fprintf(b, "\t\tbottomEdge -= %g\n", panelBar)
	b.WriteString("\t}\n")
	b.WriteString("\tleftEdge := float32(0)\n")
	b.WriteString("\tif state.enableLeft {\n")
	fmt.Fprintf(b, "\t\tleftEdge = %g\n", panelSide)
	b.WriteString("\t}\n")
	b.WriteString("\trightEdge := avail.X\n")
	b.WriteString("\tif state.enableRight {\n")
	fmt.Fprintf(b, "\t\trightEdge -= %g\n", panelSide)
	b.WriteString("\t}\n\n")

	// Top
	b.WriteString("\tif state.enableTop {\n")
	b.WriteString("\t\timgui.SetCursorPos(imgui.NewVec2(0, 0))\n")
	fmt.Fprintf(b, "\t\timgui.BeginChildStrV(\"genTop\", imgui.NewVec2(avail.X, %g), imgui.ChildFlagsBorders, 0)\n", panelBar)
	for _, w := range p.ByArea(document.AreaTop) {
		writeWidget(b, w, "\t\t")
	}
	b.WriteString("\t\timgui.EndChild()\n")
	b.WriteString("\t}\n")

	// Bottom
	b.WriteString("\tif state.enableBottom {\n")
	b.WriteString("\t\timgui.SetCursorPos(imgui.NewVec2(0, bottomEdge))\n")
	fmt.Fprintf(b, "\t\timgui.BeginChildStrV(\"genBottom\", imgui.NewVec2(avail.X, %g), imgui.ChildFlagsBorders, 0)\n", panelBar)
	for _, w := range p.ByArea(document.AreaBottom) {
		writeWidget(b, w, "\t\t")
	}
	b.WriteString("\t\timgui.EndChild()\n")
	b.WriteString("\t}\n")

	// Left
	b.WriteString("\tif state.enableLeft {\n")
	b.WriteString("\t\timgui.SetCursorPos(imgui.NewVec2(0, topEdge))\n")
	fmt.Fprintf(b, "\t\timgui.BeginChildStrV(\"genLeft\", imgui.NewVec2(%g, bottomEdge-topEdge), imgui.ChildFlagsBorders, 0)\n", panelSide)
	for _, w := range p.ByArea(document.AreaLeft) {
		writeWidget(b, w, "\t\t")
	}
	b.WriteString("\t\timgui.EndChild()\n")
	b.WriteString("\t}\n")

	// Right
	b.WriteString("\tif state.enableRight {\n")
	b.WriteString("\t\timgui.SetCursorPos(imgui.NewVec2(rightEdge, topEdge))\n")
	fmt.Fprintf(b, "\t\timgui.BeginChildStrV(\"genRight\", imgui.NewVec2(%g, bottomEdge-topEdge), imgui.ChildFlagsBorders, 0)\n", panelSide)
	for _, w := range p.ByArea(document.AreaRight) {
		writeWidget(b, w, "\t\t")
	}
	b.WriteString("\t\timgui.EndChild()\n")
	b.WriteString("\t}\n")

	// Center plus Free share the canvas region, Free last.
	b.WriteString("\timgui.SetCursorPos(imgui.NewVec2(leftEdge, topEdge))\n")
	fmt.Fprintf(b, "\timgui.BeginChildStrV(\"genCenter\", imgui.NewVec2(%.1f, %.1f), 0, 0)\n",
		p.CanvasSize.Width, p.CanvasSize.Height)
	for _, w := range p.ByArea(document.AreaCenter) {
		writeWidget(b, w, "\t")
	}
	for _, w := range p.ByArea(document.AreaFree) {
		writeWidget(b, w, "\t")
	}
	b.WriteString("\timgui.EndChild()\n\n")

	b.WriteString("\timgui.End()\n")
	b.WriteString("}\n\n")
}
