package css

import "github.com/braheezy/zibra-sub000/pkg/html"

// Selector matches nodes against an ancestor chain and carries the
// cascade priority derived from its shape.
type Selector interface {
	// Matches reports whether the selector matches node. ancestors is the
	// node's ancestor chain ordered nearest to farthest; it is passed
	// explicitly so matching never depends on parent pointers.
	Matches(node *html.Node, ancestors []*html.Node) bool
	// Priority is the cascade rank: tag selectors are lowest, descendant
	// selectors accumulate with chain depth.
	Priority() int
}

// TagSelector matches elements by exact lower-cased tag name. It never
// matches a text node.
type TagSelector struct {
	Tag string
}

func (s TagSelector) Matches(node *html.Node, _ []*html.Node) bool {
	return node.Type == html.ElementNode && node.TagName == s.Tag
}

func (s TagSelector) Priority() int { return 1 }

// DescendantSelector matches a node when its Descendant selector matches
// the node itself and its Ancestor selector matches some element anywhere
// in the ancestor chain, not only the immediate parent.
type DescendantSelector struct {
	Ancestor   Selector
	Descendant Selector
}

func (s DescendantSelector) Matches(node *html.Node, ancestors []*html.Node) bool {
	if !s.Descendant.Matches(node, ancestors) {
		return false
	}
	for i, a := range ancestors {
		if s.Ancestor.Matches(a, ancestors[i+1:]) {
			return true
		}
	}
	return false
}

func (s DescendantSelector) Priority() int {
	return s.Ancestor.Priority() + s.Descendant.Priority()
}
