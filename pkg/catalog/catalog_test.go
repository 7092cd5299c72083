package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uiforge/forge/pkg/catalog"
	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/graphics"
)

func TestDefaultSize_PositiveForEveryKind(t *testing.T) {
	for _, kind := range document.Kinds {
		size := catalog.DefaultSize(kind)
		if size.Width <= 0 || size.Height <= 0 {
			t.Errorf("DefaultSize(%s) = %+v, want positive dimensions", kind, size)
		}
	}
}

func TestDefaultProps_KindMatchesAndSelectionValid(t *testing.T) {
	for _, kind := range document.Kinds {
		props := catalog.DefaultProps(kind)
		if props == nil {
			t.Fatalf("DefaultProps(%s) = nil", kind)
		}
		if props.Kind() != kind {
			t.Errorf("DefaultProps(%s).Kind() = %s", kind, props.Kind())
		}
		if lp, ok := props.(document.ListProps); ok {
			items, sel := lp.ItemList(), lp.SelectedIndex()
			if len(items) == 0 {
				t.Errorf("DefaultProps(%s) has no items", kind)
			}
			if sel < 0 || sel >= len(items) {
				t.Errorf("DefaultProps(%s) selected %d out of range for %d items", kind, sel, len(items))
			}
		}
	}
}

func TestDefaultProps_Values(t *testing.T) {
	slider, ok := catalog.DefaultProps(document.KindSlider).(*document.SliderProps)
	if !ok {
		t.Fatal("slider default has wrong props type")
	}
	if slider.Min != 0 || slider.Max != 100 || slider.Value != 42 {
		t.Errorf("slider default = %+v, want 42 in [0, 100]", slider)
	}

	progress, ok := catalog.DefaultProps(document.KindProgressBar).(*document.ProgressBarProps)
	if !ok {
		t.Fatal("progress bar default has wrong props type")
	}
	if progress.Value != 0.25 {
		t.Errorf("progress bar default = %v, want 0.25", progress.Value)
	}

	date, ok := catalog.DefaultProps(document.KindDatePicker).(*document.DatePickerProps)
	if !ok {
		t.Fatal("date picker default has wrong props type")
	}
	if date.Year != 2025 || date.Month != 1 || date.Day != 1 {
		t.Errorf("date picker default = %d-%d-%d, want 2025-1-1", date.Year, date.Month, date.Day)
	}
}

func TestDefaultProps_Detached(t *testing.T) {
	a, _ := catalog.DefaultProps(document.KindComboBox).(*document.ComboBoxProps)
	b, _ := catalog.DefaultProps(document.KindComboBox).(*document.ComboBoxProps)
	if a == nil || b == nil {
		t.Fatal("combo box default has wrong props type")
	}
	a.Items[0] = "mutated"
	if b.Items[0] == "mutated" {
		t.Error("defaults share item slices between calls")
	}
	if diff := cmp.Diff(catalog.DefaultProps(document.KindComboBox), b); diff != "" {
		t.Errorf("defaults are not deterministic (-fresh +earlier):\n%s", diff)
	}
}

func TestPlace_CentersAndSnaps(t *testing.T) {
	p := document.NewProject()
	// Button default is 160x32; centering on (105, 101) gives (25, 85),
	// which snaps to (24, 88) on an 8px grid.
	w := catalog.Place(p, document.KindButton, graphics.Offset{X: 105, Y: 101}, document.AreaCenter, 8)
	if w == nil {
		t.Fatal("Place returned nil")
	}
	size := catalog.DefaultSize(document.KindButton)
	if w.Size != size {
		t.Errorf("placed size = %+v, want %+v", w.Size, size)
	}
	want := graphics.Snap(graphics.Offset{X: 105 - size.Width/2, Y: 101 - size.Height/2}, 8)
	if w.Pos != want {
		t.Errorf("placed pos = %+v, want %+v", w.Pos, want)
	}
	if w.Area != document.AreaCenter {
		t.Errorf("placed area = %s, want center", w.Area)
	}
	if len(p.Widgets) != 1 || p.Widgets[0] != w {
		t.Error("Place did not append the widget to the project")
	}
}

func TestPlace_ZeroGridLeavesPosition(t *testing.T) {
	p := document.NewProject()
	size := catalog.DefaultSize(document.KindLabel)
	w := catalog.Place(p, document.KindLabel, graphics.Offset{X: 101, Y: 51}, document.AreaFree, 0)
	if w.Pos.X != 101-size.Width/2 || w.Pos.Y != 51-size.Height/2 {
		t.Errorf("pos = %+v, want exact centering without snapping", w.Pos)
	}
}
