package document

import "sort"

// Arrange operations mutate widget geometry and z-order in place. Each takes
// the IDs of the current selection; IDs that are absent are ignored, and
// operations needing a reference widget or a minimum count are no-ops below
// it. They never touch widgets outside the selection.

// selected resolves IDs to live widgets, preserving the ID order given.
func (p *Project) selected(ids []ID) []*Widget {
	var out []*Widget
	for _, id := range ids {
		if w := p.Widget(id); w != nil {
			out = append(out, w)
		}
	}
	return out
}

// AlignLeft moves every selected widget to the leftmost selected edge.
func (p *Project) AlignLeft(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	min := ws[0].Pos.X
	for _, w := range ws[1:] {
		if w.Pos.X < min {
			min = w.Pos.X
		}
	}
	for _, w := range ws {
		w.Pos.X = min
	}
}

// AlignRight moves every selected widget so its right edge meets the
// rightmost selected edge.
func (p *Project) AlignRight(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	max := ws[0].Pos.X + ws[0].Size.Width
	for _, w := range ws[1:] {
		if e := w.Pos.X + w.Size.Width; e > max {
			max = e
		}
	}
	for _, w := range ws {
		w.Pos.X = max - w.Size.Width
	}
}

// AlignTop moves every selected widget to the topmost selected edge.
func (p *Project) AlignTop(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	min := ws[0].Pos.Y
	for _, w := range ws[1:] {
		if w.Pos.Y < min {
			min = w.Pos.Y
		}
	}
	for _, w := range ws {
		w.Pos.Y = min
	}
}

// AlignBottom moves every selected widget so its bottom edge meets the
// bottommost selected edge.
func (p *Project) AlignBottom(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	max := ws[0].Pos.Y + ws[0].Size.Height
	for _, w := range ws[1:] {
		if e := w.Pos.Y + w.Size.Height; e > max {
			max = e
		}
	}
	for _, w := range ws {
		w.Pos.Y = max - w.Size.Height
	}
}

// AlignCenterH centers the selection on a shared vertical axis.
func (p *Project) AlignCenterH(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	var sum float64
	for _, w := range ws {
		sum += w.Pos.X + w.Size.Width/2
	}
	center := sum / float64(len(ws))
	for _, w := range ws {
		w.Pos.X = center - w.Size.Width/2
	}
}

// AlignCenterV centers the selection on a shared horizontal axis.
func (p *Project) AlignCenterV(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	var sum float64
	for _, w := range ws {
		sum += w.Pos.Y + w.Size.Height/2
	}
	center := sum / float64(len(ws))
	for _, w := range ws {
		w.Pos.Y = center - w.Size.Height/2
	}
}

// DistributeHorizontal spaces three or more widgets evenly between the
// leftmost and rightmost of the selection.
func (p *Project) DistributeHorizontal(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 3 {
		return
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].Pos.X < ws[j].Pos.X })
	first, last := ws[0], ws[len(ws)-1]
	span := (last.Pos.X - first.Pos.X) / float64(len(ws)-1)
	for i, w := range ws {
		w.Pos.X = first.Pos.X + span*float64(i)
	}
}

// DistributeVertical spaces three or more widgets evenly between the topmost
// and bottommost of the selection.
func (p *Project) DistributeVertical(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 3 {
		return
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].Pos.Y < ws[j].Pos.Y })
	first, last := ws[0], ws[len(ws)-1]
	span := (last.Pos.Y - first.Pos.Y) / float64(len(ws)-1)
	for i, w := range ws {
		w.Pos.Y = first.Pos.Y + span*float64(i)
	}
}

// MatchWidth sets every selected widget's width to the first selection's.
func (p *Project) MatchWidth(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	ref := ws[0].Size.Width
	for _, w := range ws[1:] {
		w.Size.Width = ref
	}
}

// MatchHeight sets every selected widget's height to the first selection's.
func (p *Project) MatchHeight(ids []ID) {
	ws := p.selected(ids)
	if len(ws) < 2 {
		return
	}
	ref := ws[0].Size.Height
	for _, w := range ws[1:] {
		w.Size.Height = ref
	}
}

// BringToFront raises a widget above every other (highest z plus one).
func (p *Project) BringToFront(id ID) {
	w := p.Widget(id)
	if w == nil {
		return
	}
	max := w.Z
	for _, other := range p.Widgets {
		if other.Z > max {
			max = other.Z
		}
	}
	w.Z = max + 1
}

// SendToBack lowers a widget below every other (lowest z minus one).
func (p *Project) SendToBack(id ID) {
	w := p.Widget(id)
	if w == nil {
		return
	}
	min := w.Z
	for _, other := range p.Widgets {
		if other.Z < min {
			min = other.Z
		}
	}
	w.Z = min - 1
}
