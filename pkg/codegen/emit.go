package codegen

import (
	"fmt"
	"strings"

	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/outline"
)

// writeWidget emits exactly one rendering block for a widget: a cursor move
// reconstructing its region from the stored offset/size, then the matching
// imgui construct, reading and writing the paired state field where the kind
// has one. ind is the indentation prefix for the enclosing region.
func writeWidget(b *strings.Builder, w *document.Widget, ind string) {
	var behavior document.Behavior
	if iv, ok := w.Props.(interface{ Interaction() document.Behavior }); ok {
		behavior = iv.Interaction()
	}
	if behavior.Disabled {
		fmt.Fprintf(b, "%simgui.BeginDisabled()\n", ind)
	}

	id := w.ID
	size := vec2(w.Size.Width, w.Size.Height)
	cursor := func() {
		fmt.Fprintf(b, "%simgui.SetCursorPos(%s)\n", ind, vec2(w.Pos.X, w.Pos.Y))
	}

	switch props := w.Props.(type) {
	case *document.MenuButtonProps:
		cursor()
		fmt.Fprintf(b, "%sif imgui.ButtonV(%s, %s) {\n", ind, idLabel(props.Text, "menu", id), size)
		fmt.Fprintf(b, "%s\timgui.OpenPopupStr(\"menu%d\")\n", ind, id)
		fmt.Fprintf(b, "%s}\n", ind)
		fmt.Fprintf(b, "%sif imgui.BeginPopup(\"menu%d\") {\n", ind, id)
		fmt.Fprintf(b, "%s\tfor i, item := range %s {\n", ind, itemSlice(props.Items))
		fmt.Fprintf(b, "%s\t\tif imgui.MenuItemBool(item) {\n", ind)
		fmt.Fprintf(b, "%s\t\t\tstate.sel%d = int32(i)\n", ind, id)
		fmt.Fprintf(b, "%s\t\t}\n", ind)
		fmt.Fprintf(b, "%s\t}\n", ind)
		fmt.Fprintf(b, "%s\timgui.EndPopup()\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)

	case *document.LabelProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))

	case *document.HeadingProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SeparatorText(%s)\n", ind, quote(props.Text))

	case *document.SmallProps:
		cursor()
		fmt.Fprintf(b, "%simgui.BeginDisabled()\n", ind)
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%simgui.EndDisabled()\n", ind)

	case *document.MonospaceProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))

	case *document.ButtonProps:
		cursor()
		fmt.Fprintf(b, "%simgui.ButtonV(%s, %s)\n", ind, idLabel(props.Text, "button", id), size)

	case *document.ImageTextButtonProps:
		cursor()
		label := props.Icon + "  " + props.Text
		fmt.Fprintf(b, "%simgui.ButtonV(%s, %s)\n", ind, idLabel(label, "button", id), size)

	case *document.CheckboxProps:
		cursor()
		fmt.Fprintf(b, "%simgui.Checkbox(%s, &state.checked%d)\n", ind, idLabel(props.Text, "check", id), id)

	case *document.TextEditProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(%.1f)\n", ind, w.Size.Width)
		fmt.Fprintf(b, "%simgui.InputTextWithHint(\"##text%d\", %s, &state.text%d, 0, nil)\n",
			ind, id, quote(props.Text), id)

	case *document.TextAreaProps:
		cursor()
		fmt.Fprintf(b, "%simgui.InputTextMultiline(\"##textarea%d\", &state.textarea%d, %s, 0, nil)\n",
			ind, id, id, size)

	case *document.SliderProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(%.1f)\n", ind, w.Size.Width)
		fmt.Fprintf(b, "%simgui.SliderFloat(%s, &state.value%d, %.3f, %.3f)\n",
			ind, idLabel(props.Text, "slider", id), id, props.Min, props.Max)

	case *document.ProgressBarProps:
		cursor()
		fmt.Fprintf(b, "%simgui.ProgressBarV(state.progress%d, %s, \"\")\n", ind, id, size)

	case *document.RadioGroupProps:
		cursor()
		fmt.Fprintf(b, "%simgui.BeginGroup()\n", ind)
		fmt.Fprintf(b, "%sfor i, item := range %s {\n", ind, itemSlice(props.Items))
		fmt.Fprintf(b, "%s\tif imgui.RadioButtonBool(item, state.sel%d == int32(i)) {\n", ind, id)
		fmt.Fprintf(b, "%s\t\tstate.sel%d = int32(i)\n", ind, id)
		fmt.Fprintf(b, "%s\t}\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)
		fmt.Fprintf(b, "%simgui.EndGroup()\n", ind)

	case *document.LinkProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextLink(%s)\n", ind, quote(props.Text))

	case *document.HyperlinkProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextLinkOpenURL(%s, %s)\n", ind, quote(props.Text), quote(props.URL))

	case *document.SelectableLabelProps:
		cursor()
		fmt.Fprintf(b, "%sif imgui.SelectableBoolV(%s, state.sel%d, 0, %s) {\n",
			ind, idLabel(props.Text, "sel", id), id, size)
		fmt.Fprintf(b, "%s\tstate.sel%d = !state.sel%d\n", ind, id, id)
		fmt.Fprintf(b, "%s}\n", ind)

	case *document.ComboBoxProps:
		cursor()
		fmt.Fprintf(b, "%sitems%d := %s\n", ind, id, itemSlice(props.Items))
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(%.1f)\n", ind, w.Size.Width)
		fmt.Fprintf(b, "%sif imgui.BeginCombo(\"##combo%d\", items%d[state.sel%d]) {\n", ind, id, id, id)
		fmt.Fprintf(b, "%s\tfor i, item := range items%d {\n", ind, id)
		fmt.Fprintf(b, "%s\t\tif imgui.SelectableBool(item) {\n", ind)
		fmt.Fprintf(b, "%s\t\t\tstate.sel%d = int32(i)\n", ind, id)
		fmt.Fprintf(b, "%s\t\t}\n", ind)
		fmt.Fprintf(b, "%s\t}\n", ind)
		fmt.Fprintf(b, "%s\timgui.EndCombo()\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)

	case *document.SeparatorProps:
		cursor()
		fmt.Fprintf(b, "%simgui.Separator()\n", ind)

	case *document.CollapsingHeaderProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SetNextItemOpenV(state.open%d, imgui.CondOnce)\n", ind, id)
		fmt.Fprintf(b, "%sif imgui.CollapsingHeaderTreeNodeFlagsV(%s, 0) {\n",
			ind, idLabel(props.Text, "header", id))
		fmt.Fprintf(b, "%s\timgui.TextUnformatted(\"... place your inner content here ...\")\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)

	case *document.DatePickerProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%simgui.SameLine()\n", ind)
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(120)\n", ind)
		fmt.Fprintf(b, "%simgui.InputTextWithHint(\"##date%d\", \"YYYY-MM-DD\", &state.date%d, 0, nil)\n",
			ind, id, id)

	case *document.AngleSelectorProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(%.1f)\n", ind, w.Size.Width)
		fmt.Fprintf(b, "%simgui.SliderFloatV(%s, &state.angle%d, %.3f, %.3f, \"%%.0f°\", 0)\n",
			ind, idLabel(props.Text, "angle", id), id, props.Min, props.Max)

	case *document.PasswordProps:
		cursor()
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(%.1f)\n", ind, w.Size.Width)
		fmt.Fprintf(b, "%simgui.InputTextWithHint(\"##pass%d\", \"password\", &state.pass%d, imgui.InputTextFlagsPassword, nil)\n",
			ind, id, id)

	case *document.TreeProps:
		cursor()
		lines := props.Lines
		if len(lines) == 0 {
			lines = []string{"Root", "  Child"}
		}
		fmt.Fprintf(b, "%simgui.BeginChildStrV(\"tree%d\", %s, imgui.ChildFlagsBorders, 0)\n", ind, id, size)
		fmt.Fprintf(b, "%sgenShowTree(%s)\n", ind, treeLiteral(outline.Parse(lines)))
		fmt.Fprintf(b, "%simgui.EndChild()\n", ind)

	case *document.DragValueProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%simgui.SameLine()\n", ind)
		fmt.Fprintf(b, "%simgui.SetNextItemWidth(100)\n", ind)
		fmt.Fprintf(b, "%simgui.DragFloatV(\"##drag%d\", &state.drag%d, 1, %.3f, %.3f, \"%%.3f\", 0)\n",
			ind, id, id, props.Min, props.Max)

	case *document.SpinnerProps:
		cursor()
		fmt.Fprintf(b, "%simgui.ProgressBarV(float32(-imgui.Time()), %s, \"\")\n", ind, size)

	case *document.ColorPickerProps:
		cursor()
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%simgui.SameLine()\n", ind)
		fmt.Fprintf(b, "%simgui.ColorEdit4V(\"##color%d\", &state.color%d, imgui.ColorEditFlagsNoInputs)\n",
			ind, id, id)

	case *document.CodeProps:
		cursor()
		fmt.Fprintf(b, "%simgui.InputTextMultiline(\"##code%d\", &state.code%d, %s, imgui.InputTextFlagsAllowTabInput, nil)\n",
			ind, id, id, size)

	case *document.ImageProps:
		cursor()
		fmt.Fprintf(b, "%simgui.BeginDisabled()\n", ind)
		fmt.Fprintf(b, "%simgui.ButtonV(%s, %s)\n", ind, idLabel(props.Text, "image", id), size)
		fmt.Fprintf(b, "%simgui.EndDisabled()\n", ind)
		fmt.Fprintf(b, "%simgui.SetItemTooltip(%s)\n", ind, quote(props.URL))

	case *document.PlaceholderProps:
		cursor()
		r, g, bl, a := props.Color.RGBAF()
		fmt.Fprintf(b, "%simgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(%.3f, %.3f, %.3f, %.3f))\n",
			ind, r, g, bl, a)
		fmt.Fprintf(b, "%simgui.ButtonV(%s, %s)\n", ind, idLabel(props.Text, "placeholder", id), size)
		fmt.Fprintf(b, "%simgui.PopStyleColor()\n", ind)

	case *document.GroupProps:
		cursor()
		fmt.Fprintf(b, "%simgui.BeginChildStrV(\"group%d\", %s, imgui.ChildFlagsBorders, 0)\n", ind, id, size)
		if props.Text != "" {
			fmt.Fprintf(b, "%simgui.SeparatorText(%s)\n", ind, quote(props.Text))
		}
		layout := "vertical"
		if props.Horizontal {
			layout = "horizontal"
		}
		fmt.Fprintf(b, "%s// group contents (%s layout)\n", ind, layout)
		fmt.Fprintf(b, "%simgui.EndChild()\n", ind)

	case *document.ScrollBoxProps:
		cursor()
		fmt.Fprintf(b, "%simgui.BeginChildStrV(\"scroll%d\", %s, imgui.ChildFlagsBorders, 0)\n", ind, id, size)
		fmt.Fprintf(b, "%simgui.PushTextWrapPos()\n", ind)
		fmt.Fprintf(b, "%simgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%simgui.PopTextWrapPos()\n", ind)
		fmt.Fprintf(b, "%simgui.EndChild()\n", ind)

	case *document.TabBarProps:
		cursor()
		fmt.Fprintf(b, "%sif imgui.BeginTabBarV(\"tabs%d\", 0) {\n", ind, id)
		fmt.Fprintf(b, "%s\tfor i, tab := range %s {\n", ind, itemSlice(props.Items))
		fmt.Fprintf(b, "%s\t\tif imgui.BeginTabItemV(tab, nil, 0) {\n", ind)
		fmt.Fprintf(b, "%s\t\t\tstate.tab%d = int32(i)\n", ind, id)
		fmt.Fprintf(b, "%s\t\t\timgui.EndTabItem()\n", ind)
		fmt.Fprintf(b, "%s\t\t}\n", ind)
		fmt.Fprintf(b, "%s\t}\n", ind)
		fmt.Fprintf(b, "%s\timgui.EndTabBar()\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)

	case *document.ColumnsProps:
		cursor()
		cols := props.Columns
		if cols < 1 {
			cols = 1
		}
		fmt.Fprintf(b, "%simgui.ColumnsV(%d, \"cols%d\", true)\n", ind, cols, id)
		fmt.Fprintf(b, "%sfor i := 0; i < %d; i++ {\n", ind, cols)
		fmt.Fprintf(b, "%s\timgui.TextUnformatted(%s)\n", ind, quote(props.Text))
		fmt.Fprintf(b, "%s\timgui.NextColumn()\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)
		fmt.Fprintf(b, "%simgui.ColumnsV(1, \"\", false)\n", ind)

	case *document.WindowProps:
		fmt.Fprintf(b, "%simgui.SetNextWindowPosV(%s, imgui.CondFirstUseEver, imgui.NewVec2(0, 0))\n",
			ind, vec2(w.Pos.X, w.Pos.Y))
		fmt.Fprintf(b, "%simgui.SetNextWindowSizeV(%s, imgui.CondFirstUseEver)\n", ind, size)
		fmt.Fprintf(b, "%sif state.window%dOpen {\n", ind, id)
		fmt.Fprintf(b, "%s\tif imgui.BeginV(%s, &state.window%dOpen, 0) {\n",
			ind, idLabel(props.Text, "window", id), id)
		fmt.Fprintf(b, "%s\t\t// window contents\n", ind)
		fmt.Fprintf(b, "%s\t}\n", ind)
		fmt.Fprintf(b, "%s\timgui.End()\n", ind)
		fmt.Fprintf(b, "%s}\n", ind)
	}

	if behavior.Disabled {
		fmt.Fprintf(b, "%simgui.EndDisabled()\n", ind)
	}
	if behavior.Tooltip != "" {
		fmt.Fprintf(b, "%simgui.SetItemTooltip(%s)\n", ind, quote(behavior.Tooltip))
	}
}

// vec2 renders an imgui.NewVec2 expression with one decimal, the precision
// the designer stores geometry at.
func vec2(x, y float64) string {
	return fmt.Sprintf("imgui.NewVec2(%.1f, %.1f)", x, y)
}

// idLabel renders a widget label literal with an "##tagN" suffix so repeated
// labels keep distinct imgui IDs.
func idLabel(text, tag string, id document.ID) string {
	return fmt.Sprintf("\"%s##%s%d\"", Escape(text), tag, id)
}

// itemSlice renders an option list as a string slice literal; an empty list
// falls back to a single "Item" entry so emitted loops stay well-formed.
func itemSlice(items []string) string {
	if len(items) == 0 {
		items = []string{"Item"}
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = quote(it)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
