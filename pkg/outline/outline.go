// Package outline converts indented text lines into a forest of
// label/children nodes. A line's nesting level is its leading space count
// divided by two. Both the designer's live tree preview and the code
// generator's literal synthesis parse through this one routine, so the two
// can never disagree about the same input.
package outline

import "strings"

// Node is one parsed outline entry.
type Node struct {
	Label    string
	Children []Node
}

type line struct {
	indent int
	label  string
}

// Parse builds the forest for the given lines. Parsing is total: any input
// yields a forest, and an empty input yields an empty forest.
//
// A line indented more than one level past its parent ends the current level
// without being consumed, and is abandoned once an ancestor resumes at a
// shallower level. This matches the designer's long-standing behavior and is
// pinned by tests; do not "fix" it to normalize the jump.
func Parse(lines []string) []Node {
	var items []line
	for _, raw := range lines {
		label := strings.TrimSpace(raw)
		if label == "" {
			continue
		}
		indent := countLeadingSpaces(raw) / 2
		items = append(items, line{indent: indent, label: label})
	}
	cursor := 0
	return build(items, &cursor, 0)
}

func build(items []line, cursor *int, level int) []Node {
	var out []Node
	for *cursor < len(items) {
		it := items[*cursor]
		if it.indent != level {
			// Shallower lines belong to an ancestor; deeper lines skipped a
			// level and are left for an ancestor to abandon.
			return out
		}
		*cursor++
		children := build(items, cursor, level+1)
		out = append(out, Node{Label: it.label, Children: children})
	}
	return out
}

func countLeadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}
