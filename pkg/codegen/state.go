package codegen

import (
	"fmt"
	"strings"

	"github.com/uiforge/forge/pkg/document"
)

// State emission: each widget contributes at most one field to the generated
// state record and at most one initializer populating that field from the
// widget's current props. Purely display kinds contribute nothing. The
// initializers clamp inconsistent values (out-of-range selected indices,
// progress fractions, calendar fields) at the point of use; generation
// never rejects a document.

// writeStateStruct emits the GeneratedState type declaration.
func writeStateStruct(b *strings.Builder, p *document.Project) {
	b.WriteString("type GeneratedState struct {\n")
	b.WriteString("\tenableTop, enableBottom, enableLeft, enableRight bool\n")
	for _, w := range p.Widgets {
		writeStateField(b, w)
	}
	b.WriteString("}\n\n")
}

// writeStateField emits one widget's field declaration, if its kind carries
// runtime-mutable state.
func writeStateField(b *strings.Builder, w *document.Widget) {
	id := w.ID
	switch w.Props.(type) {
	case *document.TextEditProps:
		fmt.Fprintf(b, "\ttext%d string\n", id)
	case *document.CheckboxProps:
		fmt.Fprintf(b, "\tchecked%d bool\n", id)
	case *document.SliderProps:
		fmt.Fprintf(b, "\tvalue%d float32\n", id)
	case *document.ProgressBarProps:
		fmt.Fprintf(b, "\tprogress%d float32\n", id)
	case *document.SelectableLabelProps:
		fmt.Fprintf(b, "\tsel%d bool\n", id)
	case *document.RadioGroupProps, *document.ComboBoxProps, *document.MenuButtonProps:
		fmt.Fprintf(b, "\tsel%d int32\n", id)
	case *document.CollapsingHeaderProps:
		fmt.Fprintf(b, "\topen%d bool\n", id)
	case *document.DatePickerProps:
		fmt.Fprintf(b, "\tdate%d string\n", id)
	case *document.PasswordProps:
		fmt.Fprintf(b, "\tpass%d string\n", id)
	case *document.AngleSelectorProps:
		fmt.Fprintf(b, "\tangle%d float32\n", id)
	case *document.TextAreaProps:
		fmt.Fprintf(b, "\ttextarea%d string\n", id)
	case *document.DragValueProps:
		fmt.Fprintf(b, "\tdrag%d float32\n", id)
	case *document.ColorPickerProps:
		fmt.Fprintf(b, "\tcolor%d [4]float32\n", id)
	case *document.CodeProps:
		fmt.Fprintf(b, "\tcode%d string\n", id)
	case *document.TabBarProps:
		fmt.Fprintf(b, "\ttab%d int32\n", id)
	case *document.WindowProps:
		fmt.Fprintf(b, "\twindow%dOpen bool\n", id)
	case *document.LabelProps, *document.HeadingProps, *document.SmallProps,
		*document.MonospaceProps, *document.ButtonProps, *document.ImageTextButtonProps,
		*document.LinkProps, *document.HyperlinkProps, *document.SeparatorProps,
		*document.TreeProps, *document.SpinnerProps, *document.ImageProps,
		*document.PlaceholderProps, *document.GroupProps, *document.ScrollBoxProps,
		*document.ColumnsProps:
		// display-only: no state
	}
}

// writeStateInit emits the newGeneratedState constructor, populating every
// state field from the widget's props at generation time.
func writeStateInit(b *strings.Builder, p *document.Project) {
	b.WriteString("func newGeneratedState() *GeneratedState {\n")
	b.WriteString("\treturn &GeneratedState{\n")
	fmt.Fprintf(b, "\t\tenableTop: %t, enableBottom: %t, enableLeft: %t, enableRight: %t,\n",
		p.PanelTop, p.PanelBottom, p.PanelLeft, p.PanelRight)
	for _, w := range p.Widgets {
		writeFieldInit(b, w)
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")
}

func writeFieldInit(b *strings.Builder, w *document.Widget) {
	id := w.ID
	switch props := w.Props.(type) {
	case *document.TextEditProps:
		fmt.Fprintf(b, "\t\ttext%d: %s,\n", id, quote(props.Text))
	case *document.CheckboxProps:
		fmt.Fprintf(b, "\t\tchecked%d: %t,\n", id, props.Checked)
	case *document.SliderProps:
		fmt.Fprintf(b, "\t\tvalue%d: %.3f,\n", id, props.Value)
	case *document.ProgressBarProps:
		fmt.Fprintf(b, "\t\tprogress%d: %.3f,\n", id, clamp01(props.Value))
	case *document.SelectableLabelProps:
		fmt.Fprintf(b, "\t\tsel%d: %t,\n", id, props.Checked)
	case *document.RadioGroupProps:
		fmt.Fprintf(b, "\t\tsel%d: %d,\n", id, document.ClampIndex(props.Selected, len(props.Items)))
	case *document.ComboBoxProps:
		fmt.Fprintf(b, "\t\tsel%d: %d,\n", id, document.ClampIndex(props.Selected, len(props.Items)))
	case *document.MenuButtonProps:
		fmt.Fprintf(b, "\t\tsel%d: %d,\n", id, document.ClampIndex(props.Selected, len(props.Items)))
	case *document.CollapsingHeaderProps:
		fmt.Fprintf(b, "\t\topen%d: %t,\n", id, props.Open)
	case *document.DatePickerProps:
		fmt.Fprintf(b, "\t\tdate%d: %s,\n", id, quote(clampedDate(props)))
	case *document.PasswordProps:
		fmt.Fprintf(b, "\t\tpass%d: %s,\n", id, quote(props.Text))
	case *document.AngleSelectorProps:
		fmt.Fprintf(b, "\t\tangle%d: %.3f,\n", id, props.Value)
	case *document.TextAreaProps:
		fmt.Fprintf(b, "\t\ttextarea%d: %s,\n", id, quote(props.Text))
	case *document.DragValueProps:
		fmt.Fprintf(b, "\t\tdrag%d: %.3f,\n", id, props.Value)
	case *document.ColorPickerProps:
		r, g, bl, a := props.Color.RGBAF()
		fmt.Fprintf(b, "\t\tcolor%d: [4]float32{%.3f, %.3f, %.3f, %.3f},\n", id, r, g, bl, a)
	case *document.CodeProps:
		fmt.Fprintf(b, "\t\tcode%d: %s,\n", id, quote(props.Text))
	case *document.TabBarProps:
		fmt.Fprintf(b, "\t\ttab%d: %d,\n", id, document.ClampIndex(props.Selected, len(props.Items)))
	case *document.WindowProps:
		fmt.Fprintf(b, "\t\twindow%dOpen: true,\n", id)
	case *document.LabelProps, *document.HeadingProps, *document.SmallProps,
		*document.MonospaceProps, *document.ButtonProps, *document.ImageTextButtonProps,
		*document.LinkProps, *document.HyperlinkProps, *document.SeparatorProps,
		*document.TreeProps, *document.SpinnerProps, *document.ImageProps,
		*document.PlaceholderProps, *document.GroupProps, *document.ScrollBoxProps,
		*document.ColumnsProps:
		// display-only: no state
	}
}

// clampedDate renders year/month/day as "YYYY-MM-DD", clamping the month to
// 1-12 and the day to 1-28 so the emitted value is always a real date.
func clampedDate(p *document.DatePickerProps) string {
	m := clampInt(p.Month, 1, 12)
	d := clampInt(p.Day, 1, 28)
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, m, d)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
