package document

import "github.com/uiforge/forge/pkg/graphics"

// Props is the per-kind property variant carried by a widget. Each kind has
// exactly one variant type holding only the fields that kind reads; sites
// that consume props switch exhaustively over the concrete types so adding a
// kind surfaces every site that needs updating.
type Props interface {
	Kind() Kind
}

// Behavior holds the interaction fields shared by interactive kinds. The
// zero value is an enabled control with no tooltip.
type Behavior struct {
	Tooltip  string `yaml:"tooltip,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Interaction exposes the shared fields through embedding: any variant that
// embeds Behavior satisfies interface{ Interaction() Behavior }.
func (b Behavior) Interaction() Behavior { return b }

// ListProps is implemented by variants carrying an ordered option list with
// a selected index into it.
type ListProps interface {
	Props
	ItemList() []string
	SelectedIndex() int
	// SetItems replaces the option list and re-clamps the selected index to
	// max(0, len(items)-1).
	SetItems(items []string)
}

// ClampIndex clamps a selected index to the valid range for n items. An
// empty list clamps to 0.
func ClampIndex(sel, n int) int {
	if sel < 0 || n == 0 {
		return 0
	}
	if sel > n-1 {
		return n - 1
	}
	return sel
}

// MenuButtonProps backs a button that opens a menu of option items.
type MenuButtonProps struct {
	Text     string   `yaml:"text"`
	Items    []string `yaml:"items"`
	Selected int      `yaml:"selected"`
	Behavior `yaml:",inline"`
}

func (*MenuButtonProps) Kind() Kind           { return KindMenuButton }
func (p *MenuButtonProps) ItemList() []string { return p.Items }
func (p *MenuButtonProps) SelectedIndex() int { return p.Selected }
func (p *MenuButtonProps) SetItems(items []string) {
	p.Items = items
	p.Selected = ClampIndex(p.Selected, len(items))
}

// LabelProps backs a plain text label.
type LabelProps struct {
	Text string `yaml:"text"`
}

func (*LabelProps) Kind() Kind { return KindLabel }

// HeadingProps backs a heading-styled label.
type HeadingProps struct {
	Text string `yaml:"text"`
}

func (*HeadingProps) Kind() Kind { return KindHeading }

// SmallProps backs a small-styled label.
type SmallProps struct {
	Text string `yaml:"text"`
}

func (*SmallProps) Kind() Kind { return KindSmall }

// MonospaceProps backs a monospace-styled label.
type MonospaceProps struct {
	Text string `yaml:"text"`
}

func (*MonospaceProps) Kind() Kind { return KindMonospace }

// ButtonProps backs a push button.
type ButtonProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*ButtonProps) Kind() Kind { return KindButton }

// ImageTextButtonProps backs a button showing an icon next to its text.
type ImageTextButtonProps struct {
	Text     string `yaml:"text"`
	Icon     string `yaml:"icon"`
	Behavior `yaml:",inline"`
}

func (*ImageTextButtonProps) Kind() Kind { return KindImageTextButton }

// CheckboxProps backs a toggleable checkbox.
type CheckboxProps struct {
	Text     string `yaml:"text"`
	Checked  bool   `yaml:"checked"`
	Behavior `yaml:",inline"`
}

func (*CheckboxProps) Kind() Kind { return KindCheckbox }

// TextEditProps backs a single-line text input; Text doubles as the hint and
// the initial buffer contents.
type TextEditProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*TextEditProps) Kind() Kind { return KindTextEdit }

// TextAreaProps backs a multi-line text input.
type TextAreaProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*TextAreaProps) Kind() Kind { return KindTextArea }

// SliderProps backs a labeled slider over [Min, Max].
type SliderProps struct {
	Text     string  `yaml:"text"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Value    float64 `yaml:"value"`
	Behavior `yaml:",inline"`
}

func (*SliderProps) Kind() Kind { return KindSlider }

// ProgressBarProps backs a progress bar; Value is a fraction in [0, 1].
type ProgressBarProps struct {
	Value float64 `yaml:"value"`
}

func (*ProgressBarProps) Kind() Kind { return KindProgressBar }

// RadioGroupProps backs a vertical group of radio buttons.
type RadioGroupProps struct {
	Text     string   `yaml:"text"`
	Items    []string `yaml:"items"`
	Selected int      `yaml:"selected"`
	Behavior `yaml:",inline"`
}

func (*RadioGroupProps) Kind() Kind           { return KindRadioGroup }
func (p *RadioGroupProps) ItemList() []string { return p.Items }
func (p *RadioGroupProps) SelectedIndex() int { return p.Selected }
func (p *RadioGroupProps) SetItems(items []string) {
	p.Items = items
	p.Selected = ClampIndex(p.Selected, len(items))
}

// LinkProps backs a link-styled label with no target.
type LinkProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*LinkProps) Kind() Kind { return KindLink }

// HyperlinkProps backs a link that opens a URL.
type HyperlinkProps struct {
	Text     string `yaml:"text"`
	URL      string `yaml:"url"`
	Behavior `yaml:",inline"`
}

func (*HyperlinkProps) Kind() Kind { return KindHyperlink }

// SelectableLabelProps backs a label that toggles when clicked.
type SelectableLabelProps struct {
	Text     string `yaml:"text"`
	Checked  bool   `yaml:"checked"`
	Behavior `yaml:",inline"`
}

func (*SelectableLabelProps) Kind() Kind { return KindSelectableLabel }

// ComboBoxProps backs a drop-down selection box.
type ComboBoxProps struct {
	Text     string   `yaml:"text"`
	Items    []string `yaml:"items"`
	Selected int      `yaml:"selected"`
	Behavior `yaml:",inline"`
}

func (*ComboBoxProps) Kind() Kind           { return KindComboBox }
func (p *ComboBoxProps) ItemList() []string { return p.Items }
func (p *ComboBoxProps) SelectedIndex() int { return p.Selected }
func (p *ComboBoxProps) SetItems(items []string) {
	p.Items = items
	p.Selected = ClampIndex(p.Selected, len(items))
}

// SeparatorProps backs a horizontal rule; it carries no fields.
type SeparatorProps struct{}

func (*SeparatorProps) Kind() Kind { return KindSeparator }

// CollapsingHeaderProps backs a collapsible section header.
type CollapsingHeaderProps struct {
	Text     string `yaml:"text"`
	Open     bool   `yaml:"open"`
	Behavior `yaml:",inline"`
}

func (*CollapsingHeaderProps) Kind() Kind { return KindCollapsingHeader }

// DatePickerProps backs a labeled calendar date field.
type DatePickerProps struct {
	Text     string `yaml:"text"`
	Year     int    `yaml:"year"`
	Month    int    `yaml:"month"`
	Day      int    `yaml:"day"`
	Behavior `yaml:",inline"`
}

func (*DatePickerProps) Kind() Kind { return KindDatePicker }

// AngleSelectorProps backs a slider expressed in degrees.
type AngleSelectorProps struct {
	Text     string  `yaml:"text"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Value    float64 `yaml:"value"`
	Behavior `yaml:",inline"`
}

func (*AngleSelectorProps) Kind() Kind { return KindAngleSelector }

// PasswordProps backs a masked text input.
type PasswordProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*PasswordProps) Kind() Kind { return KindPassword }

// TreeProps backs a hierarchical tree; Lines hold the indented outline text
// (two leading spaces per nesting level).
type TreeProps struct {
	Text  string   `yaml:"text"`
	Lines []string `yaml:"lines"`
}

func (*TreeProps) Kind() Kind { return KindTree }

// DragValueProps backs a labeled draggable numeric field.
type DragValueProps struct {
	Text     string  `yaml:"text"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Value    float64 `yaml:"value"`
	Behavior `yaml:",inline"`
}

func (*DragValueProps) Kind() Kind { return KindDragValue }

// SpinnerProps backs an indeterminate activity indicator; it carries no
// fields.
type SpinnerProps struct{}

func (*SpinnerProps) Kind() Kind { return KindSpinner }

// ColorPickerProps backs a labeled color swatch editor.
type ColorPickerProps struct {
	Text     string         `yaml:"text"`
	Color    graphics.Color `yaml:"color"`
	Behavior `yaml:",inline"`
}

func (*ColorPickerProps) Kind() Kind { return KindColorPicker }

// CodeProps backs a code editor region.
type CodeProps struct {
	Text     string `yaml:"text"`
	Behavior `yaml:",inline"`
}

func (*CodeProps) Kind() Kind { return KindCode }

// ImageProps backs an image region; URL is the source, Text the alt label.
type ImageProps struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

func (*ImageProps) Kind() Kind { return KindImage }

// PlaceholderProps backs a colored placeholder frame with a centered label.
type PlaceholderProps struct {
	Text  string         `yaml:"text"`
	Color graphics.Color `yaml:"color"`
}

func (*PlaceholderProps) Kind() Kind { return KindPlaceholder }

// GroupProps backs a framed container laid out horizontally or vertically.
type GroupProps struct {
	Text       string `yaml:"text"`
	Horizontal bool   `yaml:"horizontal,omitempty"`
}

func (*GroupProps) Kind() Kind { return KindGroup }

// ScrollBoxProps backs a scrollable region.
type ScrollBoxProps struct {
	Text string `yaml:"text"`
}

func (*ScrollBoxProps) Kind() Kind { return KindScrollBox }

// TabBarProps backs a horizontal row of selectable tabs.
type TabBarProps struct {
	Items    []string `yaml:"items"`
	Selected int      `yaml:"selected"`
	Behavior `yaml:",inline"`
}

func (*TabBarProps) Kind() Kind           { return KindTabBar }
func (p *TabBarProps) ItemList() []string { return p.Items }
func (p *TabBarProps) SelectedIndex() int { return p.Selected }
func (p *TabBarProps) SetItems(items []string) {
	p.Items = items
	p.Selected = ClampIndex(p.Selected, len(items))
}

// ColumnsProps backs an n-column region with repeated content.
type ColumnsProps struct {
	Text    string `yaml:"text"`
	Columns int    `yaml:"columns"`
}

func (*ColumnsProps) Kind() Kind { return KindColumns }

// WindowProps backs a floating window.
type WindowProps struct {
	Text string `yaml:"text"`
}

func (*WindowProps) Kind() Kind { return KindWindow }

// propFactories maps each kind tag to a constructor for its zero variant;
// the codec uses it to pick a decode target, ParseKind uses it to validate
// tags.
var propFactories = map[Kind]func() Props{
	KindMenuButton:       func() Props { return &MenuButtonProps{} },
	KindLabel:            func() Props { return &LabelProps{} },
	KindHeading:          func() Props { return &HeadingProps{} },
	KindSmall:            func() Props { return &SmallProps{} },
	KindMonospace:        func() Props { return &MonospaceProps{} },
	KindButton:           func() Props { return &ButtonProps{} },
	KindImageTextButton:  func() Props { return &ImageTextButtonProps{} },
	KindCheckbox:         func() Props { return &CheckboxProps{} },
	KindTextEdit:         func() Props { return &TextEditProps{} },
	KindTextArea:         func() Props { return &TextAreaProps{} },
	KindSlider:           func() Props { return &SliderProps{} },
	KindProgressBar:      func() Props { return &ProgressBarProps{} },
	KindRadioGroup:       func() Props { return &RadioGroupProps{} },
	KindLink:             func() Props { return &LinkProps{} },
	KindHyperlink:        func() Props { return &HyperlinkProps{} },
	KindSelectableLabel:  func() Props { return &SelectableLabelProps{} },
	KindComboBox:         func() Props { return &ComboBoxProps{} },
	KindSeparator:        func() Props { return &SeparatorProps{} },
	KindCollapsingHeader: func() Props { return &CollapsingHeaderProps{} },
	KindDatePicker:       func() Props { return &DatePickerProps{} },
	KindAngleSelector:    func() Props { return &AngleSelectorProps{} },
	KindPassword:         func() Props { return &PasswordProps{} },
	KindTree:             func() Props { return &TreeProps{} },
	KindDragValue:        func() Props { return &DragValueProps{} },
	KindSpinner:          func() Props { return &SpinnerProps{} },
	KindColorPicker:      func() Props { return &ColorPickerProps{} },
	KindCode:             func() Props { return &CodeProps{} },
	KindImage:            func() Props { return &ImageProps{} },
	KindPlaceholder:      func() Props { return &PlaceholderProps{} },
	KindGroup:            func() Props { return &GroupProps{} },
	KindScrollBox:        func() Props { return &ScrollBoxProps{} },
	KindTabBar:           func() Props { return &TabBarProps{} },
	KindColumns:          func() Props { return &ColumnsProps{} },
	KindWindow:           func() Props { return &WindowProps{} },
}

// CloneProps deep-copies a property variant, including its slices, so a
// clipboard widget never aliases the live document.
func CloneProps(p Props) Props {
	switch v := p.(type) {
	case *MenuButtonProps:
		c := *v
		c.Items = append([]string(nil), v.Items...)
		return &c
	case *LabelProps:
		c := *v
		return &c
	case *HeadingProps:
		c := *v
		return &c
	case *SmallProps:
		c := *v
		return &c
	case *MonospaceProps:
		c := *v
		return &c
	case *ButtonProps:
		c := *v
		return &c
	case *ImageTextButtonProps:
		c := *v
		return &c
	case *CheckboxProps:
		c := *v
		return &c
	case *TextEditProps:
		c := *v
		return &c
	case *TextAreaProps:
		c := *v
		return &c
	case *SliderProps:
		c := *v
		return &c
	case *ProgressBarProps:
		c := *v
		return &c
	case *RadioGroupProps:
		c := *v
		c.Items = append([]string(nil), v.Items...)
		return &c
	case *LinkProps:
		c := *v
		return &c
	case *HyperlinkProps:
		c := *v
		return &c
	case *SelectableLabelProps:
		c := *v
		return &c
	case *ComboBoxProps:
		c := *v
		c.Items = append([]string(nil), v.Items...)
		return &c
	case *SeparatorProps:
		c := *v
		return &c
	case *CollapsingHeaderProps:
		c := *v
		return &c
	case *DatePickerProps:
		c := *v
		return &c
	case *AngleSelectorProps:
		c := *v
		return &c
	case *PasswordProps:
		c := *v
		return &c
	case *TreeProps:
		c := *v
		c.Lines = append([]string(nil), v.Lines...)
		return &c
	case *DragValueProps:
		c := *v
		return &c
	case *SpinnerProps:
		c := *v
		return &c
	case *ColorPickerProps:
		c := *v
		return &c
	case *CodeProps:
		c := *v
		return &c
	case *ImageProps:
		c := *v
		return &c
	case *PlaceholderProps:
		c := *v
		return &c
	case *GroupProps:
		c := *v
		return &c
	case *ScrollBoxProps:
		c := *v
		return &c
	case *TabBarProps:
		c := *v
		c.Items = append([]string(nil), v.Items...)
		return &c
	case *ColumnsProps:
		c := *v
		return &c
	case *WindowProps:
		c := *v
		return &c
	default:
		return p
	}
}
