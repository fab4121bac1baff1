package html

import (
	"errors"
	"strings"
)

// ErrNoNodes is returned when end-of-input is reached with nothing built:
// an empty or entirely unparseable document.
var ErrNoNodes = errors.New("no nodes created")

// Parser builds a tree from tag soup. It keeps an explicit stack of open
// ("unfinished") elements; the top of the stack is the current insertion
// point. With ImplicitTags enabled it synthesizes the html/head/body
// structure real documents rely on.
type Parser struct {
	tokenizer    *Tokenizer
	unfinished   []*Node
	sawHead      bool
	ImplicitTags bool
}

func NewParser(markup string) *Parser {
	return &Parser{
		tokenizer:    NewTokenizer(markup),
		unfinished:   []*Node{},
		ImplicitTags: true,
	}
}

// Parse runs the builder to end-of-input and returns the root of the
// finished tree. Parent pointers are valid on return.
func Parse(markup string) (*Node, error) {
	return NewParser(markup).Parse()
}

// ParseFragment parses a markup fragment without implicit-tag repair and
// returns its top-level nodes. The nodes have no parent; callers splicing
// them into a tree must re-run FixParentPointers on the enclosing subtree.
func ParseFragment(markup string) ([]*Node, error) {
	p := NewParser("<html>" + markup + "</html>")
	p.ImplicitTags = false
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	for _, child := range root.Children {
		child.Parent = nil
	}
	return root.Children, nil
}

func (p *Parser) Parse() (*Node, error) {
	for {
		tok := p.tokenizer.Next()
		if tok.Type == EOFToken {
			break
		}
		if tok.Type == TextToken {
			p.addText(tok.Content)
			continue
		}
		p.addTag(tok.Content)
		p.captureRawText(tok.Content)
	}
	return p.finish()
}

// captureRawText runs after a tag event. If that event just opened a
// raw-text element, everything up to its literal closing tag is captured
// as a single text child; the closing tag is then tokenized normally.
func (p *Parser) captureRawText(tagBody string) {
	if strings.HasPrefix(tagBody, "/") || len(p.unfinished) == 0 {
		return
	}
	top := p.unfinished[len(p.unfinished)-1]
	if !rawTextTags[top.TagName] {
		return
	}
	if raw := p.tokenizer.ReadRawText(top.TagName); raw != "" {
		top.Children = append(top.Children, NewText(raw))
	}
}

// addText appends a text node at the insertion point. Whitespace-only runs
// are dropped here, not in the tokenizer.
func (p *Parser) addText(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if p.ImplicitTags {
		p.implicitTags("")
	}
	if len(p.unfinished) == 0 {
		return
	}
	parent := p.unfinished[len(p.unfinished)-1]
	parent.Children = append(parent.Children, NewText(text))
}

// addTag dispatches a single tag event.
func (p *Parser) addTag(body string) {
	closing := strings.HasPrefix(body, "/")
	if closing {
		body = body[1:]
	}
	tag, attrs, _ := parseTag(body)
	if tag == "" {
		return
	}
	if tag == "head" && !closing {
		p.sawHead = true
	}

	if p.ImplicitTags {
		name := tag
		if closing {
			name = "/" + tag
		}
		p.implicitTags(name)
		if !closing && !voidTags[tag] {
			p.closeSelfNesting(tag)
		}
	}

	switch {
	case closing:
		p.closeTag(tag)
	case voidTags[tag]:
		node := NewElement(tag, attrs)
		if len(p.unfinished) == 0 {
			// Bare void element as the whole document.
			p.unfinished = append(p.unfinished, node)
			return
		}
		parent := p.unfinished[len(p.unfinished)-1]
		parent.Children = append(parent.Children, node)
	default:
		// Parent assignment is deferred to the finish fixup pass.
		p.unfinished = append(p.unfinished, NewElement(tag, attrs))
	}
}

// closeTag searches the stack from the top for a matching open element.
// A stray closer with no match is a no-op. Closing a formatting element
// reconstructs any formatting elements that were opened above it.
func (p *Parser) closeTag(tag string) {
	if len(p.unfinished) <= 1 {
		// The root can only be closed by the finish step.
		return
	}
	idx := -1
	for i := len(p.unfinished) - 1; i >= 0; i-- {
		if p.unfinished[i].TagName == tag {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	if idx == 0 {
		// Closing the root closes everything above it but keeps the root
		// open so later content still has somewhere to go.
		p.closeThrough(1)
		return
	}

	if formattingTags[tag] {
		// Collect formatting tags opened strictly above the match,
		// innermost first.
		var reopen []string
		for i := len(p.unfinished) - 1; i > idx; i-- {
			if formattingTags[p.unfinished[i].TagName] {
				reopen = append(reopen, p.unfinished[i].TagName)
			}
		}
		p.closeThrough(idx)
		// Reopen outer-to-inner as fresh empty elements at the current
		// insertion point.
		for i := len(reopen) - 1; i >= 0; i-- {
			p.unfinished = append(p.unfinished, NewElement(reopen[i], make(map[string]string)))
		}
		return
	}

	p.closeThrough(idx)
}

// closeThrough pops every element from the top of the stack down through
// index idx, appending each popped node to the element below it.
func (p *Parser) closeThrough(idx int) {
	for len(p.unfinished) > idx && len(p.unfinished) > 1 {
		node := p.unfinished[len(p.unfinished)-1]
		p.unfinished = p.unfinished[:len(p.unfinished)-1]
		parent := p.unfinished[len(p.unfinished)-1]
		parent.Children = append(parent.Children, node)
	}
}

// closeSelfNesting closes an open p/li before another of the same kind
// opens, walking up from the stack top and stopping at block boundaries.
func (p *Parser) closeSelfNesting(tag string) {
	if !selfNestingTags[tag] {
		return
	}
	for i := len(p.unfinished) - 1; i >= 1; i-- {
		name := p.unfinished[i].TagName
		if name == tag {
			p.closeThrough(i)
			return
		}
		if blockBoundaryTags[name] {
			return
		}
	}
}

// implicitTags synthesizes structural elements before the given tag event.
// name carries a leading '/' for closing tags and is empty for text.
func (p *Parser) implicitTags(name string) {
	for {
		switch {
		case len(p.unfinished) == 0:
			if name == "html" {
				return
			}
			p.addTag("html")
		case len(p.unfinished) == 1 && p.unfinished[0].TagName == "html":
			if name == "head" || name == "body" || name == "/html" {
				return
			}
			if headTags[name] {
				p.addTag("head")
			} else if !p.sawHead {
				// Body content before any head: the finished tree still
				// carries an empty head so its shape is deterministic.
				p.addTag("head")
				p.addTag("/head")
			} else {
				p.addTag("body")
			}
		case len(p.unfinished) == 2 &&
			p.unfinished[0].TagName == "html" && p.unfinished[1].TagName == "head":
			if headTags[name] || name == "/head" {
				return
			}
			p.addTag("/head")
		default:
			return
		}
	}
}

// finish folds whatever remains on the stack into a single root, makes the
// implicit document shape deterministic, and rebuilds every parent pointer.
func (p *Parser) finish() (*Node, error) {
	if len(p.unfinished) == 0 {
		return nil, ErrNoNodes
	}

	if p.ImplicitTags && len(p.unfinished) == 2 &&
		p.unfinished[0].TagName == "html" && p.unfinished[1].TagName == "head" {
		// A head-only document still gets an empty body.
		p.addTag("/head")
		p.addTag("body")
	}

	for len(p.unfinished) > 1 {
		node := p.unfinished[len(p.unfinished)-1]
		p.unfinished = p.unfinished[:len(p.unfinished)-1]
		parent := p.unfinished[len(p.unfinished)-1]
		parent.Children = append(parent.Children, node)
	}
	root := p.unfinished[0]
	p.unfinished = p.unfinished[:0]

	// No parent pointer is trustworthy until the tree shape is final.
	FixParentPointers(root, nil)
	return root, nil
}
