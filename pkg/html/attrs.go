package html

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote reports a quoted attribute value with no closing
// quote. The element is still created with everything parsed up to and
// including the run-to-end value.
var ErrUnterminatedQuote = errors.New("unterminated quoted attribute value")

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseTag splits a raw tag body into a lower-cased tag name and an
// attribute map. Attribute names and values keep their original case.
// Quoted values may use either quote character; a bare name with no '='
// becomes a boolean attribute with an empty value.
func parseTag(body string) (string, map[string]string, error) {
	i := 0
	for i < len(body) && !isSpace(body[i]) {
		i++
	}
	// `<br/>` with no space glues the slash onto the name.
	tag := strings.TrimSuffix(strings.ToLower(body[:i]), "/")
	attrs := make(map[string]string)

	for i < len(body) {
		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) {
			break
		}

		start := i
		for i < len(body) && body[i] != '=' && !isSpace(body[i]) {
			i++
		}
		name := body[start:i]
		// A stray '=' or the trailing '/' of self-closing syntax is not
		// an attribute.
		if name == "" {
			i++
			continue
		}
		if name == "/" {
			continue
		}

		if i >= len(body) || body[i] != '=' {
			attrs[name] = ""
			continue
		}
		i++ // consume '='
		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) {
			attrs[name] = ""
			break
		}

		if q := body[i]; q == '"' || q == '\'' {
			i++
			vstart := i
			for i < len(body) && body[i] != q {
				i++
			}
			if i >= len(body) {
				// Missing close quote: take the rest of the tag body.
				attrs[name] = body[vstart:]
				return tag, attrs, ErrUnterminatedQuote
			}
			attrs[name] = body[vstart:i]
			i++ // consume closing quote
		} else {
			vstart := i
			for i < len(body) && !isSpace(body[i]) {
				i++
			}
			attrs[name] = body[vstart:i]
		}
	}
	return tag, attrs, nil
}
