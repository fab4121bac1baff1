package html

import (
	"sort"
	"strings"
)

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is either an element or a text span. Parent pointers are a derived
// index: they are only valid after FixParentPointers has run over the tree,
// never during construction.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Style      map[string]string // computed properties, set by the css resolver
	Children   []*Node
	Parent     *Node
}

func NewElement(tag string, attrs map[string]string) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: attrs,
		Children:   make([]*Node, 0),
	}
}

func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// AppendChild adds a child node and sets its parent pointer.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild before refChild in this node's children.
// If refChild is nil, appends newChild at the end.
// If newChild already has a parent, it is removed from that parent first.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}

	if refChild == nil {
		n.AppendChild(newChild)
		return newChild
	}

	for i, c := range n.Children {
		if c == refChild {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+1:], n.Children[i:])
			n.Children[i] = newChild
			newChild.Parent = n
			return newChild
		}
	}

	// refChild not found — append
	n.AppendChild(newChild)
	return newChild
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	if n == other {
		return true
	}
	for _, child := range n.Children {
		if child.Contains(other) {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// Flatten returns every node in the subtree rooted at n in pre-order.
// Collaborators use this for flat handle tables and the css resolver for
// ancestor chains.
func Flatten(n *Node) []*Node {
	list := []*Node{n}
	for _, child := range n.Children {
		list = append(list, Flatten(child)...)
	}
	return list
}

// FixParentPointers rebuilds the parent back-references for the whole
// subtree rooted at node. The tree builder runs this once construction is
// final; collaborators must call it again after structurally mutating a
// subtree out-of-band.
func FixParentPointers(node, parent *Node) {
	node.Parent = parent
	for _, child := range node.Children {
		FixParentPointers(child, node)
	}
}

// Serialize returns the innerHTML of this node — the serialized markup of
// all child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node — the node's own tags
// plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}

	if voidTags[n.TagName] {
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
