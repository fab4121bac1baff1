package css

import (
	"sort"
	"strconv"
	"strings"

	"github.com/braheezy/zibra-sub000/pkg/html"
)

// InheritedProperties are seeded into every element's computed style from
// its parent's resolved value, or from these defaults at the root.
var InheritedProperties = map[string]string{
	"font-size":   "16px",
	"font-style":  "normal",
	"font-weight": "normal",
	"color":       "black",
}

// Style resolves the computed style map for every element in the tree
// rooted at root. Rules are layered lowest priority first, with source
// order as the tie-break, then inline style wins over everything.
// Text nodes are skipped. Re-running with the same rules and an unchanged
// tree produces identical maps.
func Style(root *html.Node, rules []Rule) {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Selector.Priority() < sorted[j].Selector.Priority()
	})
	styleNode(root, nil, nil, sorted)
}

func styleNode(node *html.Node, inherited map[string]string, ancestors []*html.Node, rules []Rule) {
	if node.Type == html.TextNode {
		return
	}

	style := make(map[string]string, len(InheritedProperties))
	for property, def := range InheritedProperties {
		if inherited != nil {
			style[property] = inherited[property]
		} else {
			style[property] = def
		}
	}

	for _, rule := range rules {
		if rule.Selector.Matches(node, ancestors) {
			for property, value := range rule.Body {
				style[property] = value
			}
		}
	}

	if inline, ok := node.GetAttribute("style"); ok {
		for property, value := range ParseInline(inline) {
			style[property] = value
		}
	}

	// A percentage font-size resolves against the inherited value, not the
	// overlaid one. An unparseable value is simply left as assigned.
	if strings.HasSuffix(style["font-size"], "%") {
		base := InheritedProperties["font-size"]
		if inherited != nil {
			base = inherited["font-size"]
		}
		if px, ok := resolvePercent(style["font-size"], base); ok {
			style["font-size"] = px
		}
	}

	node.Style = style

	chain := make([]*html.Node, 0, len(ancestors)+1)
	chain = append(chain, node)
	chain = append(chain, ancestors...)
	for _, child := range node.Children {
		styleNode(child, style, chain, rules)
	}
}

// resolvePercent turns a percentage font-size into an absolute pixel
// string against the parent's resolved size. A parent value that is not a
// pixel length falls back to the default 16px.
func resolvePercent(pct, parent string) (string, bool) {
	fraction, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
	if err != nil {
		return "", false
	}
	fraction /= 100.0
	base, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parent), "px"), 64)
	if err != nil {
		base = 16.0
	}
	return strconv.FormatFloat(fraction*base, 'f', 1, 64) + "px", true
}
