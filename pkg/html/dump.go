package html

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the tree as an ASCII diagram for debugging and test
// failure output. Attributes print in sorted order so output is stable.
func Dump(root *Node) string {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(root))
	addBranches(tree, root)
	return tree.String()
}

func addBranches(branch treeprint.Tree, n *Node) {
	for _, child := range n.Children {
		if child.Type == TextNode {
			branch.AddNode(nodeLabel(child))
			continue
		}
		addBranches(branch.AddBranch(nodeLabel(child)), child)
	}
}

func nodeLabel(n *Node) string {
	if n.Type == TextNode {
		return strconv.Quote(n.Text)
	}
	if len(n.Attributes) == 0 {
		return "<" + n.TagName + ">"
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.TagName)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(strconv.Quote(n.Attributes[k]))
	}
	sb.WriteByte('>')
	return sb.String()
}
