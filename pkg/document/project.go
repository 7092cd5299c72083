package document

import (
	"github.com/uiforge/forge/pkg/graphics"
)

// Project is the designer document: an ordered collection of widgets (order
// is significant: the generator emits widgets within an area in collection
// order), the logical canvas size, and the four docking panel enable flags.
//
// A Project is exclusively owned by its caller; nothing in this package
// locks, and a Project must not be shared across concurrent operations.
type Project struct {
	Widgets     []*Widget     `yaml:"widgets"`
	CanvasSize  graphics.Size `yaml:"canvas_size"`
	PanelTop    bool          `yaml:"panel_top"`
	PanelBottom bool          `yaml:"panel_bottom"`
	PanelLeft   bool          `yaml:"panel_left"`
	PanelRight  bool          `yaml:"panel_right"`

	// nextID is session state, recomputed from the widget list when a
	// document is decoded; it is never persisted.
	nextID ID
}

// NewProject returns an empty document with all four docking panels enabled.
func NewProject() *Project {
	return &Project{
		CanvasSize:  graphics.Size{Width: 960, Height: 640},
		PanelTop:    true,
		PanelBottom: true,
		PanelLeft:   true,
		PanelRight:  true,
		nextID:      1,
	}
}

// Add appends a widget built from the given parts, allocating the next ID.
// The z-value starts at the ID, matching creation order, and can be changed
// later by the z-order operations.
func (p *Project) Add(pos graphics.Offset, size graphics.Size, area DockArea, props Props) *Widget {
	id := p.allocID()
	w := &Widget{
		ID:    id,
		Pos:   pos,
		Size:  size,
		Z:     int(id),
		Area:  area,
		Props: props,
	}
	p.Widgets = append(p.Widgets, w)
	return w
}

// Paste appends a detached clone (for example a clipboard value) under a
// fresh ID and z-value, leaving the clone's other fields intact.
func (p *Project) Paste(w *Widget) *Widget {
	c := w.Clone()
	c.ID = p.allocID()
	c.Z = int(c.ID)
	p.Widgets = append(p.Widgets, c)
	return c
}

// Remove deletes the widget with the given ID, preserving the order of the
// rest. The ID is never reused. Removing an absent ID is a no-op.
func (p *Project) Remove(id ID) {
	for i, w := range p.Widgets {
		if w.ID == id {
			p.Widgets = append(p.Widgets[:i], p.Widgets[i+1:]...)
			return
		}
	}
}

// Widget returns the widget with the given ID, or nil.
func (p *Project) Widget(id ID) *Widget {
	for _, w := range p.Widgets {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// ByArea returns the widgets assigned to one dock area, in collection order.
func (p *Project) ByArea(area DockArea) []*Widget {
	var out []*Widget
	for _, w := range p.Widgets {
		if w.Area == area {
			out = append(out, w)
		}
	}
	return out
}

// HasKind reports whether any widget of the given kind is present.
func (p *Project) HasKind(kind Kind) bool {
	for _, w := range p.Widgets {
		if w.Kind() == kind {
			return true
		}
	}
	return false
}

// WidgetsInRect returns the IDs of widgets whose rectangle (relative to the
// given area origin) intersects rect. Used by box selection.
func (p *Project) WidgetsInRect(rect graphics.Rect, areaOrigin graphics.Offset) []ID {
	var out []ID
	for _, w := range p.Widgets {
		r := graphics.RectFromLTWH(areaOrigin.X+w.Pos.X, areaOrigin.Y+w.Pos.Y, w.Size.Width, w.Size.Height)
		if rect.Intersects(r) {
			out = append(out, w.ID)
		}
	}
	return out
}

// allocID hands out the next identifier, seeding from the widget list when
// the project was decoded rather than built in this session.
func (p *Project) allocID() ID {
	if p.nextID == 0 {
		p.nextID = p.maxID() + 1
	}
	id := p.nextID
	p.nextID++
	return id
}

func (p *Project) maxID() ID {
	var max ID
	for _, w := range p.Widgets {
		if w.ID > max {
			max = w.ID
		}
	}
	return max
}
