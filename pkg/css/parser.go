package css

import (
	"fmt"
	"strings"
)

// Rule pairs a selector with its declared properties. Cascade priority
// comes from the selector alone; source position only breaks ties.
type Rule struct {
	Selector Selector
	Body     map[string]string
}

// Parser is a cursor over rule text. One malformed declaration or rule
// never aborts the rest of the sheet: recovery skips to the next ';' or
// '}' boundary and continues.
type Parser struct {
	s string
	i int
}

func NewParser(text string) *Parser {
	return &Parser{s: text}
}

// ParseInline parses the declaration block of a style="..." attribute.
func ParseInline(styleAttr string) map[string]string {
	return NewParser(styleAttr).Body()
}

// ParseSheet parses full stylesheet text into rules in source order.
func ParseSheet(text string) []Rule {
	return NewParser(text).Parse()
}

func (p *Parser) peek() byte {
	if p.i >= len(p.s) {
		return 0
	}
	return p.s[p.i]
}

// whitespace skips spaces and /* ... */ comments.
func (p *Parser) whitespace() {
	for p.i < len(p.s) {
		c := p.s[p.i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			p.i++
		case c == '/' && p.i+1 < len(p.s) && p.s[p.i+1] == '*':
			p.i += 2
			if end := strings.Index(p.s[p.i:], "*/"); end >= 0 {
				p.i += end + 2
			} else {
				p.i = len(p.s)
			}
		default:
			return
		}
	}
}

func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '#' || c == '-' || c == '.' || c == '%':
		return true
	}
	return false
}

func (p *Parser) word() (string, error) {
	start := p.i
	for p.i < len(p.s) && isWordChar(p.s[p.i]) {
		p.i++
	}
	if p.i == start {
		return "", fmt.Errorf("expected word at position %d", p.i)
	}
	return p.s[start:p.i], nil
}

func (p *Parser) literal(ch byte) error {
	if p.i >= len(p.s) || p.s[p.i] != ch {
		return fmt.Errorf("expected %q at position %d", string(ch), p.i)
	}
	p.i++
	return nil
}

// value reads up to the next ';' or '}' and trims trailing whitespace,
// so multi-word values ("1px solid black") come through intact.
func (p *Parser) value() (string, error) {
	start := p.i
	for p.i < len(p.s) && p.s[p.i] != ';' && p.s[p.i] != '}' {
		p.i++
	}
	val := strings.TrimRight(p.s[start:p.i], " \t\n\r\f")
	if val == "" {
		return "", fmt.Errorf("empty value at position %d", p.i)
	}
	return val, nil
}

// pair reads one "property: value" declaration.
func (p *Parser) pair() (string, string, error) {
	p.whitespace()
	prop, err := p.word()
	if err != nil {
		return "", "", err
	}
	p.whitespace()
	if err := p.literal(':'); err != nil {
		return "", "", err
	}
	p.whitespace()
	val, err := p.value()
	if err != nil {
		return "", "", err
	}
	return strings.ToLower(prop), val, nil
}

// ignoreUntil skips forward to the first of the given characters and
// reports which one stopped the scan; false means end of input.
func (p *Parser) ignoreUntil(chars string) (byte, bool) {
	for p.i < len(p.s) {
		if strings.IndexByte(chars, p.s[p.i]) >= 0 {
			return p.s[p.i], true
		}
		p.i++
	}
	return 0, false
}

// Body reads declarations until '}' or end of input. A malformed pair is
// skipped to the next ';' or '}'.
func (p *Parser) Body() map[string]string {
	pairs := make(map[string]string)
	for {
		p.whitespace()
		if p.i >= len(p.s) || p.peek() == '}' {
			break
		}
		prop, val, err := p.pair()
		if err == nil {
			pairs[prop] = val
			p.whitespace()
			if p.peek() == ';' {
				p.i++
			}
			continue
		}
		why, ok := p.ignoreUntil(";}")
		if !ok {
			break
		}
		if why == ';' {
			p.i++
			continue
		}
		break // '}' belongs to the caller
	}
	return pairs
}

// selector reads whitespace-separated tag words before '{'. Each extra
// word deepens a descendant selector.
func (p *Parser) selector() (Selector, error) {
	w, err := p.word()
	if err != nil {
		return nil, err
	}
	var out Selector = TagSelector{Tag: strings.ToLower(w)}
	p.whitespace()
	for p.i < len(p.s) && p.peek() != '{' {
		w, err := p.word()
		if err != nil {
			return nil, err
		}
		out = DescendantSelector{
			Ancestor:   out,
			Descendant: TagSelector{Tag: strings.ToLower(w)},
		}
		p.whitespace()
	}
	return out, nil
}

// Parse reads repeated "selector { declarations }" units. A rule that
// fails mid-parse is abandoned and the cursor skips to the next '}'.
func (p *Parser) Parse() []Rule {
	var rules []Rule
	for {
		p.whitespace()
		if p.i >= len(p.s) {
			break
		}
		if rule, ok := p.rule(); ok {
			rules = append(rules, rule)
			continue
		}
		if _, ok := p.ignoreUntil("}"); !ok {
			break
		}
		p.i++ // consume '}' and try the next rule
	}
	return rules
}

func (p *Parser) rule() (Rule, bool) {
	sel, err := p.selector()
	if err != nil {
		return Rule{}, false
	}
	if err := p.literal('{'); err != nil {
		return Rule{}, false
	}
	p.whitespace()
	body := p.Body()
	if err := p.literal('}'); err != nil {
		return Rule{}, false
	}
	return Rule{Selector: sel, Body: body}, true
}
