package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/uiforge/forge/pkg/graphics"
)

// ID is a widget's opaque handle. IDs are allocated by the Project, strictly
// increase as widgets are created, and are never reused within a session.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// DockArea names the placement region a widget is assigned to.
type DockArea string

const (
	AreaFree   DockArea = "free"
	AreaTop    DockArea = "top"
	AreaBottom DockArea = "bottom"
	AreaLeft   DockArea = "left"
	AreaRight  DockArea = "right"
	AreaCenter DockArea = "center"
)

// DockAreas lists every area in the order generated code emits them; Free
// widgets share the central canvas and come last.
var DockAreas = []DockArea{AreaTop, AreaBottom, AreaLeft, AreaRight, AreaCenter, AreaFree}

// ParseDockArea validates an area tag read from a persisted document.
func ParseDockArea(s string) (DockArea, error) {
	switch a := DockArea(s); a {
	case AreaFree, AreaTop, AreaBottom, AreaLeft, AreaRight, AreaCenter:
		return a, nil
	}
	return "", fmt.Errorf("document: unknown dock area %q", s)
}

// Widget is one placed control: an identifier, a position local to its dock
// area, a size, a z-value used as the paint tie-break, and the property
// variant for its kind.
type Widget struct {
	ID    ID
	Pos   graphics.Offset
	Size  graphics.Size
	Z     int
	Area  DockArea
	Props Props
}

// Kind returns the widget's kind tag, carried by its property variant.
func (w *Widget) Kind() Kind {
	return w.Props.Kind()
}

// Clone returns a detached deep copy, suitable for holding as a clipboard
// value while the live document keeps changing.
func (w *Widget) Clone() *Widget {
	c := *w
	c.Props = CloneProps(w.Props)
	return &c
}

// widgetDoc is the persisted shape of a Widget. Props are decoded in a
// second pass once the kind tag is known.
type widgetDoc struct {
	ID    ID              `yaml:"id"`
	Kind  string          `yaml:"kind"`
	Pos   graphics.Offset `yaml:"pos"`
	Size  graphics.Size   `yaml:"size"`
	Z     int             `yaml:"z"`
	Area  string          `yaml:"area"`
	Props yaml.Node       `yaml:"props"`
}

// MarshalYAML encodes the widget with its kind as a named tag.
func (w *Widget) MarshalYAML() (any, error) {
	return struct {
		ID    ID              `yaml:"id"`
		Kind  Kind            `yaml:"kind"`
		Pos   graphics.Offset `yaml:"pos"`
		Size  graphics.Size   `yaml:"size"`
		Z     int             `yaml:"z"`
		Area  DockArea        `yaml:"area"`
		Props Props           `yaml:"props"`
	}{w.ID, w.Kind(), w.Pos, w.Size, w.Z, w.Area, w.Props}, nil
}

// UnmarshalYAML decodes the widget envelope, then dispatches on the kind tag
// to decode the matching property variant.
func (w *Widget) UnmarshalYAML(node *yaml.Node) error {
	var doc widgetDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return err
	}
	area, err := ParseDockArea(doc.Area)
	if err != nil {
		return err
	}
	props := propFactories[kind]()
	if doc.Props.Kind != 0 { // props may be omitted entirely
		if err := doc.Props.Decode(props); err != nil {
			return fmt.Errorf("document: widget %d props: %w", doc.ID, err)
		}
	}
	w.ID = doc.ID
	w.Pos = doc.Pos
	w.Size = doc.Size
	w.Z = doc.Z
	w.Area = area
	w.Props = props
	return nil
}
