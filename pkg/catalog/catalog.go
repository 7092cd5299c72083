// Package catalog is the fixed per-kind table of widget defaults: the size a
// freshly placed control gets and the property variant it starts from. Both
// lookups are total: every kind has exactly one case and there is no error
// path.
package catalog

import (
	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/graphics"
)

// cornflower is the designer's default accent color; gray backs placeholder
// frames at half alpha.
var (
	cornflower, _ = graphics.Named("cornflowerblue")
	gray, _       = graphics.Named("gray")
)

// DefaultSize returns the canvas size a new widget of this kind is given.
// Every kind yields strictly positive dimensions.
func DefaultSize(kind document.Kind) graphics.Size {
	switch kind {
	case document.KindMenuButton:
		return graphics.Size{Width: 180, Height: 28}
	case document.KindLabel:
		return graphics.Size{Width: 140, Height: 24}
	case document.KindHeading:
		return graphics.Size{Width: 200, Height: 32}
	case document.KindSmall:
		return graphics.Size{Width: 120, Height: 20}
	case document.KindMonospace:
		return graphics.Size{Width: 140, Height: 20}
	case document.KindButton:
		return graphics.Size{Width: 160, Height: 32}
	case document.KindImageTextButton:
		return graphics.Size{Width: 200, Height: 36}
	case document.KindCheckbox:
		return graphics.Size{Width: 160, Height: 28}
	case document.KindTextEdit:
		return graphics.Size{Width: 220, Height: 36}
	case document.KindTextArea:
		return graphics.Size{Width: 280, Height: 120}
	case document.KindSlider:
		return graphics.Size{Width: 220, Height: 24}
	case document.KindProgressBar:
		return graphics.Size{Width: 220, Height: 20}
	case document.KindRadioGroup:
		return graphics.Size{Width: 200, Height: 80}
	case document.KindLink:
		return graphics.Size{Width: 160, Height: 20}
	case document.KindHyperlink:
		return graphics.Size{Width: 200, Height: 20}
	case document.KindSelectableLabel:
		return graphics.Size{Width: 180, Height: 24}
	case document.KindComboBox:
		return graphics.Size{Width: 220, Height: 28}
	case document.KindSeparator:
		return graphics.Size{Width: 220, Height: 8}
	case document.KindCollapsingHeader:
		return graphics.Size{Width: 260, Height: 80}
	case document.KindDatePicker:
		return graphics.Size{Width: 200, Height: 28}
	case document.KindAngleSelector:
		return graphics.Size{Width: 220, Height: 28}
	case document.KindPassword:
		return graphics.Size{Width: 220, Height: 36}
	case document.KindTree:
		return graphics.Size{Width: 260, Height: 200}
	case document.KindDragValue:
		return graphics.Size{Width: 180, Height: 24}
	case document.KindSpinner:
		return graphics.Size{Width: 32, Height: 32}
	case document.KindColorPicker:
		return graphics.Size{Width: 200, Height: 28}
	case document.KindCode:
		return graphics.Size{Width: 300, Height: 150}
	case document.KindImage:
		return graphics.Size{Width: 150, Height: 150}
	case document.KindPlaceholder:
		return graphics.Size{Width: 200, Height: 100}
	case document.KindGroup:
		return graphics.Size{Width: 250, Height: 150}
	case document.KindScrollBox:
		return graphics.Size{Width: 200, Height: 150}
	case document.KindTabBar:
		return graphics.Size{Width: 300, Height: 32}
	case document.KindColumns:
		return graphics.Size{Width: 300, Height: 120}
	case document.KindWindow:
		return graphics.Size{Width: 280, Height: 180}
	default:
		return graphics.Size{Width: 160, Height: 32}
	}
}

// DefaultProps returns the starting property variant for a kind, populating
// only the fields that kind reads.
func DefaultProps(kind document.Kind) document.Props {
	switch kind {
	case document.KindMenuButton:
		return &document.MenuButtonProps{
			Text:  "Menu",
			Items: []string{"First", "Second", "Third"},
		}
	case document.KindLabel:
		return &document.LabelProps{Text: "Label"}
	case document.KindHeading:
		return &document.HeadingProps{Text: "Heading"}
	case document.KindSmall:
		return &document.SmallProps{Text: "Small text"}
	case document.KindMonospace:
		return &document.MonospaceProps{Text: "code_value"}
	case document.KindButton:
		return &document.ButtonProps{Text: "Button"}
	case document.KindImageTextButton:
		return &document.ImageTextButtonProps{Text: "Button", Icon: "🖼️"}
	case document.KindCheckbox:
		return &document.CheckboxProps{Text: "Checkbox"}
	case document.KindTextEdit:
		return &document.TextEditProps{Text: "Type here"}
	case document.KindTextArea:
		return &document.TextAreaProps{Text: "Multi-line\ntext here"}
	case document.KindSlider:
		return &document.SliderProps{Text: "Value", Min: 0, Max: 100, Value: 42}
	case document.KindProgressBar:
		return &document.ProgressBarProps{Value: 0.25}
	case document.KindRadioGroup:
		return &document.RadioGroupProps{
			Text:  "Radio Group",
			Items: []string{"Option A", "Option B", "Option C"},
		}
	case document.KindLink:
		return &document.LinkProps{Text: "Link text"}
	case document.KindHyperlink:
		return &document.HyperlinkProps{Text: "Open website", URL: "https://example.com"}
	case document.KindSelectableLabel:
		return &document.SelectableLabelProps{Text: "Selectable"}
	case document.KindComboBox:
		return &document.ComboBoxProps{
			Text:  "Choose one",
			Items: []string{"Red", "Green", "Blue"},
		}
	case document.KindSeparator:
		return &document.SeparatorProps{}
	case document.KindCollapsingHeader:
		// Sections start open.
		return &document.CollapsingHeaderProps{Text: "Section", Open: true}
	case document.KindDatePicker:
		return &document.DatePickerProps{Text: "Pick a date", Year: 2025, Month: 1, Day: 1}
	case document.KindAngleSelector:
		return &document.AngleSelectorProps{Text: "Angle (deg)", Min: 0, Max: 360, Value: 45}
	case document.KindPassword:
		return &document.PasswordProps{Text: "password"}
	case document.KindTree:
		// Two leading spaces per nesting level.
		return &document.TreeProps{
			Text: "Tree",
			Lines: []string{
				"Animals",
				"  Mammals",
				"    Dogs",
				"    Cats",
				"  Birds",
				"Plants",
				"  Trees",
				"  Flowers",
			},
		}
	case document.KindDragValue:
		return &document.DragValueProps{Text: "Value", Min: 0, Max: 100, Value: 42}
	case document.KindSpinner:
		return &document.SpinnerProps{}
	case document.KindColorPicker:
		return &document.ColorPickerProps{Text: "Color", Color: cornflower}
	case document.KindCode:
		return &document.CodeProps{Text: "func main() {\n\tfmt.Println(\"Hello\")\n}"}
	case document.KindImage:
		return &document.ImageProps{Text: "image.png", URL: "file://image.png"}
	case document.KindPlaceholder:
		return &document.PlaceholderProps{Text: "Placeholder", Color: gray.WithAlpha8(128)}
	case document.KindGroup:
		return &document.GroupProps{Text: "Group"}
	case document.KindScrollBox:
		return &document.ScrollBoxProps{Text: "Scroll content here..."}
	case document.KindTabBar:
		return &document.TabBarProps{Items: []string{"Tab 1", "Tab 2", "Tab 3"}}
	case document.KindColumns:
		return &document.ColumnsProps{Text: "Column content", Columns: 2}
	case document.KindWindow:
		return &document.WindowProps{Text: "Window Title"}
	default:
		return &document.LabelProps{Text: "Label"}
	}
}

// Place spawns a widget of the given kind centered on the drop point (local
// to its dock area), snapped to the grid, sized and populated from the
// catalogue tables.
func Place(p *document.Project, kind document.Kind, at graphics.Offset, area document.DockArea, grid float64) *document.Widget {
	size := DefaultSize(kind)
	pos := graphics.Snap(graphics.Offset{
		X: at.X - size.Width/2,
		Y: at.Y - size.Height/2,
	}, grid)
	return p.Add(pos, size, area, DefaultProps(kind))
}
