package html

// Static tag-classification tables. Initialized once, never mutated.

// voidTags are elements that can have no content and are never pushed
// onto the open-element stack.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// headTags are elements that belong in the head section; seeing one while
// only an implicit <html> is open routes it into an implicit <head>.
var headTags = map[string]bool{
	"base": true, "basefont": true, "bgsound": true, "noscript": true,
	"link": true, "meta": true, "title": true, "style": true, "script": true,
}

// formattingTags are inline elements eligible for reconstruction when they
// are closed out of nesting order.
var formattingTags = map[string]bool{
	"b": true, "i": true, "u": true, "em": true, "strong": true,
	"small": true, "s": true, "code": true, "span": true, "font": true,
	"big": true, "tt": true, "mark": true, "sub": true, "sup": true,
}

// rawTextTags are elements whose content is captured verbatim up to the
// literal closing tag. Only script today.
var rawTextTags = map[string]bool{
	"script": true,
}

// selfNestingTags cannot contain another element of their own kind; an open
// one is closed before a new one starts.
var selfNestingTags = map[string]bool{
	"p": true, "li": true,
}

// blockBoundaryTags stop the upward walk when closing a self-nesting tag.
var blockBoundaryTags = map[string]bool{
	"html": true, "body": true, "div": true, "section": true,
	"article": true, "blockquote": true, "ul": true, "ol": true,
	"table": true, "td": true, "th": true,
}
