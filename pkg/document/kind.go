// Package document holds the designer's document model: a Project of
// Widgets, each carrying a kind tag and a per-kind property variant, plus the
// YAML codec that persists it and the pure editing operations the designer
// chrome invokes on it.
package document

import "fmt"

// Kind identifies one of the control kinds a widget can be. The set is
// closed; every consumption site switches exhaustively over it.
type Kind string

const (
	KindMenuButton       Kind = "menu_button"
	KindLabel            Kind = "label"
	KindHeading          Kind = "heading"
	KindSmall            Kind = "small"
	KindMonospace        Kind = "monospace"
	KindButton           Kind = "button"
	KindImageTextButton  Kind = "image_text_button"
	KindCheckbox         Kind = "checkbox"
	KindTextEdit         Kind = "text_edit"
	KindTextArea         Kind = "text_area"
	KindSlider           Kind = "slider"
	KindProgressBar      Kind = "progress_bar"
	KindRadioGroup       Kind = "radio_group"
	KindLink             Kind = "link"
	KindHyperlink        Kind = "hyperlink"
	KindSelectableLabel  Kind = "selectable_label"
	KindComboBox         Kind = "combo_box"
	KindSeparator        Kind = "separator"
	KindCollapsingHeader Kind = "collapsing_header"
	KindDatePicker       Kind = "date_picker"
	KindAngleSelector    Kind = "angle_selector"
	KindPassword         Kind = "password"
	KindTree             Kind = "tree"
	KindDragValue        Kind = "drag_value"
	KindSpinner          Kind = "spinner"
	KindColorPicker      Kind = "color_picker"
	KindCode             Kind = "code"
	KindImage            Kind = "image"
	KindPlaceholder      Kind = "placeholder"
	KindGroup            Kind = "group"
	KindScrollBox        Kind = "scroll_box"
	KindTabBar           Kind = "tab_bar"
	KindColumns          Kind = "columns"
	KindWindow           Kind = "window"
)

// Kinds lists every widget kind in palette order.
var Kinds = []Kind{
	KindMenuButton,
	KindLabel,
	KindHeading,
	KindSmall,
	KindMonospace,
	KindButton,
	KindImageTextButton,
	KindCheckbox,
	KindTextEdit,
	KindTextArea,
	KindSlider,
	KindProgressBar,
	KindRadioGroup,
	KindLink,
	KindHyperlink,
	KindSelectableLabel,
	KindComboBox,
	KindSeparator,
	KindCollapsingHeader,
	KindDatePicker,
	KindAngleSelector,
	KindPassword,
	KindTree,
	KindDragValue,
	KindSpinner,
	KindColorPicker,
	KindCode,
	KindImage,
	KindPlaceholder,
	KindGroup,
	KindScrollBox,
	KindTabBar,
	KindColumns,
	KindWindow,
}

// DisplayName returns the human-readable palette label for a kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMenuButton:
		return "Menu Button"
	case KindLabel:
		return "Label"
	case KindHeading:
		return "Heading"
	case KindSmall:
		return "Small Text"
	case KindMonospace:
		return "Monospace"
	case KindButton:
		return "Button"
	case KindImageTextButton:
		return "Image+Text Button"
	case KindCheckbox:
		return "Checkbox"
	case KindTextEdit:
		return "Text Edit"
	case KindTextArea:
		return "Text Area"
	case KindSlider:
		return "Slider"
	case KindProgressBar:
		return "Progress Bar"
	case KindRadioGroup:
		return "Radio Group"
	case KindLink:
		return "Link"
	case KindHyperlink:
		return "Hyperlink"
	case KindSelectableLabel:
		return "Selectable Label"
	case KindComboBox:
		return "Combo Box"
	case KindSeparator:
		return "Separator"
	case KindCollapsingHeader:
		return "Collapsing Header"
	case KindDatePicker:
		return "Date Picker"
	case KindAngleSelector:
		return "Angle Selector"
	case KindPassword:
		return "Password"
	case KindTree:
		return "Tree"
	case KindDragValue:
		return "Drag Value"
	case KindSpinner:
		return "Spinner"
	case KindColorPicker:
		return "Color Picker"
	case KindCode:
		return "Code Editor"
	case KindImage:
		return "Image"
	case KindPlaceholder:
		return "Placeholder"
	case KindGroup:
		return "Group"
	case KindScrollBox:
		return "Scroll Box"
	case KindTabBar:
		return "Tab Bar"
	case KindColumns:
		return "Columns"
	case KindWindow:
		return "Window"
	default:
		return string(k)
	}
}

// ParseKind validates a kind tag read from a persisted document.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := propFactories[k]; !ok {
		return "", fmt.Errorf("document: unknown widget kind %q", s)
	}
	return k, nil
}
