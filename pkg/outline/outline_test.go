package outline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uiforge/forge/pkg/outline"
)

func TestParse_FlatLines(t *testing.T) {
	got := outline.Parse([]string{"A", "B", "C"})
	want := []outline.Node{{Label: "A"}, {Label: "B"}, {Label: "C"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Nesting(t *testing.T) {
	lines := []string{
		"Animals",
		"  Mammals",
		"    Dog",
		"    Cat",
		"  Birds",
		"Plants",
	}
	want := []outline.Node{
		{Label: "Animals", Children: []outline.Node{
			{Label: "Mammals", Children: []outline.Node{
				{Label: "Dog"},
				{Label: "Cat"},
			}},
			{Label: "Birds"},
		}},
		{Label: "Plants"},
	}
	got := outline.Parse(lines)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyAndBlankLines(t *testing.T) {
	if got := outline.Parse(nil); len(got) != 0 {
		t.Errorf("Parse(nil) = %v, want empty", got)
	}
	got := outline.Parse([]string{"", "A", "   ", "  B", ""})
	want := []outline.Node{{Label: "A", Children: []outline.Node{{Label: "B"}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LabelsAreTrimmed(t *testing.T) {
	got := outline.Parse([]string{"  Leaf   "})
	if len(got) != 1 || got[0].Label != "Leaf" {
		t.Errorf("Parse = %v, want single trimmed Leaf", got)
	}
}

// A line more than one level deeper than its parent is unreachable, and the
// control-flow unwind also abandons everything after it. This behavior is
// load-bearing for documents authored against it; the test pins it.
func TestParse_IndentJumpAbandonsRest(t *testing.T) {
	lines := []string{
		"A",
		"    TooDeep",
		"B",
	}
	want := []outline.Node{{Label: "A"}}
	got := outline.Parse(lines)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_OddIndentRoundsDown(t *testing.T) {
	// Three spaces is still level one (indent/2 == 1).
	got := outline.Parse([]string{"A", "   B"})
	want := []outline.Node{{Label: "A", Children: []outline.Node{{Label: "B"}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}
