// Package preview renders a plain-text summary of a designer document:
// canvas geometry, panel flags, and every widget grouped by dock area.
// It backs `forge info` and is handy in tests as a stable textual view.
package preview

import (
	"fmt"
	"strings"

	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/outline"
)

// Render writes a human-readable summary of the project.
func Render(p *document.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Canvas: %.0fx%.0f\n", p.CanvasSize.Width, p.CanvasSize.Height)
	fmt.Fprintf(&b, "Panels: top=%t bottom=%t left=%t right=%t\n",
		p.PanelTop, p.PanelBottom, p.PanelLeft, p.PanelRight)
	fmt.Fprintf(&b, "Widgets: %d\n", len(p.Widgets))

	for _, area := range document.DockAreas {
		ws := p.ByArea(area)
		if len(ws) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n[%s]\n", area)
		for _, w := range ws {
			writeWidget(&b, w)
		}
	}
	return b.String()
}

func writeWidget(b *strings.Builder, w *document.Widget) {
	fmt.Fprintf(b, "  #%s %-18s at (%.0f, %.0f) size %.0fx%.0f",
		w.ID, w.Kind().DisplayName(), w.Pos.X, w.Pos.Y, w.Size.Width, w.Size.Height)
	if detail := widgetDetail(w.Props); detail != "" {
		fmt.Fprintf(b, "  %s", detail)
	}
	b.WriteString("\n")

	if tp, ok := w.Props.(*document.TreeProps); ok {
		writeOutline(b, outline.Parse(tp.Lines), "    ")
	}
}

// widgetDetail picks the one property most useful at a glance.
func widgetDetail(p document.Props) string {
	switch v := p.(type) {
	case *document.LabelProps:
		return fmt.Sprintf("%q", v.Text)
	case *document.ButtonProps:
		return fmt.Sprintf("%q", v.Text)
	case *document.CheckboxProps:
		return fmt.Sprintf("%q checked=%t", v.Text, v.Checked)
	case *document.TextEditProps:
		return fmt.Sprintf("%q", v.Text)
	case *document.SliderProps:
		return fmt.Sprintf("%.3g in [%.3g, %.3g]", v.Value, v.Min, v.Max)
	case *document.ProgressBarProps:
		return fmt.Sprintf("%.0f%%", v.Value*100)
	case *document.MenuButtonProps:
		return itemsDetail(v.Items, v.Selected)
	case *document.RadioGroupProps:
		return itemsDetail(v.Items, v.Selected)
	case *document.ComboBoxProps:
		return itemsDetail(v.Items, v.Selected)
	case *document.TabBarProps:
		return itemsDetail(v.Items, v.Selected)
	case *document.HyperlinkProps:
		return v.URL
	case *document.ImageProps:
		return v.URL
	case *document.DatePickerProps:
		return fmt.Sprintf("%04d-%02d-%02d", v.Year, v.Month, v.Day)
	case *document.WindowProps:
		return fmt.Sprintf("%q", v.Text)
	case *document.GroupProps:
		return fmt.Sprintf("%q", v.Text)
	default:
		return ""
	}
}

func itemsDetail(items []string, selected int) string {
	sel := "-"
	if selected >= 0 && selected < len(items) {
		sel = fmt.Sprintf("%q", items[selected])
	}
	return fmt.Sprintf("%d items, selected %s", len(items), sel)
}

func writeOutline(b *strings.Builder, nodes []outline.Node, indent string) {
	for _, n := range nodes {
		fmt.Fprintf(b, "%s- %s\n", indent, n.Label)
		writeOutline(b, n.Children, indent+"  ")
	}
}
