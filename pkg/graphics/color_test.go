package graphics_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/uiforge/forge/pkg/graphics"
)

func TestColor_Channels(t *testing.T) {
	c := graphics.RGBA8(0x12, 0x34, 0x56, 0x78)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("channels = %x %x %x %x", c.R(), c.G(), c.B(), c.A())
	}
	if got := graphics.RGB(1, 2, 3).A(); got != 0xFF {
		t.Errorf("RGB alpha = %x, want FF", got)
	}
	if got := c.WithAlpha8(0x80).A(); got != 0x80 {
		t.Errorf("WithAlpha8 = %x, want 80", got)
	}
}

func TestColor_ParseAndString(t *testing.T) {
	c := graphics.RGBA8(0x64, 0x95, 0xED, 0xFF)
	parsed, err := graphics.ParseColor(c.String())
	if err != nil {
		t.Fatalf("ParseColor(%q): %v", c.String(), err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, want %v", parsed, c)
	}

	short, err := graphics.ParseColor("#6495ED")
	if err != nil {
		t.Fatalf("ParseColor short form: %v", err)
	}
	if short != c {
		t.Errorf("short form = %v, want %v (opaque)", short, c)
	}

	if _, err := graphics.ParseColor("cheese#"); err == nil {
		t.Error("ParseColor accepted garbage")
	}
}

func TestColor_Named(t *testing.T) {
	c, ok := graphics.Named("cornflowerblue")
	if !ok {
		t.Fatal("cornflowerblue not found")
	}
	if c.R() != 0x64 || c.G() != 0x95 || c.B() != 0xED || c.A() != 0xFF {
		t.Errorf("cornflowerblue = %v", c)
	}
	if _, ok := graphics.Named("not-a-color"); ok {
		t.Error("Named accepted an unknown name")
	}
}

func TestColor_YAML(t *testing.T) {
	c := graphics.RGBA8(0x64, 0x95, 0xED, 0x80)
	data, err := yaml.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back graphics.Color
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != c {
		t.Errorf("yaml round trip = %v, want %v", back, c)
	}

	var named graphics.Color
	if err := yaml.Unmarshal([]byte("gray"), &named); err != nil {
		t.Fatalf("Unmarshal named: %v", err)
	}
	if want, _ := graphics.Named("gray"); named != want {
		t.Errorf("named yaml = %v, want %v", named, want)
	}
}
