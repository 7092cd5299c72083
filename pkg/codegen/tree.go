package codegen

import (
	"strings"

	"github.com/uiforge/forge/pkg/outline"
)

// treeHelpers is the support code emitted once when the document contains a
// tree widget: the node type and the recursive renderer the emitted literals
// feed into.
const treeHelpers = `type genTreeNode struct {
	label    string
	children []genTreeNode
}

func genShowTree(nodes []genTreeNode) {
	for _, n := range nodes {
		if len(n.children) == 0 {
			imgui.TextUnformatted(n.label)
			continue
		}
		if imgui.TreeNodeStr(n.label) {
			genShowTree(n.children)
			imgui.TreePop()
		}
	}
}

`

// treeLiteral serializes an outline forest as a genTreeNode slice literal of
// the same shape, escaping every label.
func treeLiteral(nodes []outline.Node) string {
	var b strings.Builder
	b.WriteString("[]genTreeNode{")
	writeNodes(&b, nodes)
	b.WriteString("}")
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []outline.Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("{label: ")
		b.WriteString(quote(n.Label))
		if len(n.Children) > 0 {
			b.WriteString(", children: []genTreeNode{")
			writeNodes(b, n.Children)
			b.WriteString("}")
		}
		b.WriteString("}")
	}
}
