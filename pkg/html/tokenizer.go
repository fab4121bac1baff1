package html

import "strings"

type TokenType int

const (
	TextToken TokenType = iota
	TagToken
	EOFToken
)

// Token is a single tokenizer event. For TagToken, Content is the raw tag
// body between '<' and '>' exclusive; for TextToken it is the raw text run.
type Token struct {
	Type    TokenType
	Content string
}

// Tokenizer slices markup into text runs and tag bodies. It does no
// copying: token contents are slices of the original input. Whitespace-only
// text runs are still emitted; the tree builder drops them at insertion.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup, pos: 0}
}

func (t *Tokenizer) Next() Token {
	if t.pos >= len(t.input) {
		return Token{Type: EOFToken}
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

func (t *Tokenizer) readTag() Token {
	t.pos++ // consume '<'

	// <!-- comments --> may contain '>'; scan to the closing sequence.
	if strings.HasPrefix(t.input[t.pos:], "!--") {
		t.pos += 3
		if end := strings.Index(t.input[t.pos:], "-->"); end >= 0 {
			t.pos += end + 3
		} else {
			t.pos = len(t.input)
		}
		return t.Next()
	}

	end := strings.IndexByte(t.input[t.pos:], '>')
	if end < 0 {
		// Unterminated tag at end of input: nothing usable remains.
		t.pos = len(t.input)
		return Token{Type: EOFToken}
	}
	body := t.input[t.pos : t.pos+end]
	t.pos += end + 1

	// Doctype and other '!' declarations are discarded.
	if strings.HasPrefix(body, "!") {
		return t.Next()
	}
	return Token{Type: TagToken, Content: body}
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	return Token{Type: TextToken, Content: t.input[start:t.pos]}
}

// ReadRawText captures everything up to the literal closing tag for a
// raw-text element (e.g. </script>), ignoring any '<' or '>' inside. The
// cursor is left at the closing tag so the next call to Next tokenizes it
// normally. If the closing tag never appears, the rest of the input is
// captured.
func (t *Tokenizer) ReadRawText(tag string) string {
	needle := "</" + tag + ">"
	lower := strings.ToLower(t.input[t.pos:])
	if idx := strings.Index(lower, needle); idx >= 0 {
		content := t.input[t.pos : t.pos+idx]
		t.pos += idx
		return content
	}
	content := t.input[t.pos:]
	t.pos = len(t.input)
	return content
}
