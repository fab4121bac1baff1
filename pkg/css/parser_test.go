package css

import "testing"

func TestParseSheet_SingleRule(t *testing.T) {
	rules := ParseSheet(`p { color: red; }`)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	sel, ok := rules[0].Selector.(TagSelector)
	if !ok || sel.Tag != "p" {
		t.Fatalf("expected tag selector p, got %#v", rules[0].Selector)
	}
	if rules[0].Body["color"] != "red" {
		t.Errorf("unexpected body: %v", rules[0].Body)
	}
}

func TestParseSheet_MultipleRulesInSourceOrder(t *testing.T) {
	rules := ParseSheet(`
		p { color: red; }
		div { color: blue; }
	`)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Selector.(TagSelector).Tag != "p" || rules[1].Selector.(TagSelector).Tag != "div" {
		t.Errorf("rules out of source order")
	}
}

func TestParseSheet_MultiWordValue(t *testing.T) {
	rules := ParseSheet(`div { border: 1px solid black; }`)
	if rules[0].Body["border"] != "1px solid black" {
		t.Errorf("multi-word value mangled: %q", rules[0].Body["border"])
	}
}

func TestParseSheet_MissingFinalSemicolon(t *testing.T) {
	rules := ParseSheet(`p { color: red }`)
	if len(rules) != 1 || rules[0].Body["color"] != "red" {
		t.Fatalf("expected final declaration without ';' to parse: %v", rules)
	}
}

func TestParseSheet_PropertyLowercased(t *testing.T) {
	rules := ParseSheet(`p { COLOR: Red; }`)
	if rules[0].Body["color"] != "Red" {
		t.Errorf("property should be lower-cased, value preserved: %v", rules[0].Body)
	}
}

func TestParseSheet_DescendantSelector(t *testing.T) {
	rules := ParseSheet(`ul li { font-weight: bold; }`)
	sel, ok := rules[0].Selector.(DescendantSelector)
	if !ok {
		t.Fatalf("expected descendant selector, got %#v", rules[0].Selector)
	}
	if sel.Ancestor.(TagSelector).Tag != "ul" || sel.Descendant.(TagSelector).Tag != "li" {
		t.Errorf("selector parts wrong: %#v", sel)
	}
}

func TestParseSheet_DeepDescendantSelector(t *testing.T) {
	rules := ParseSheet(`body ul li { color: green; }`)
	sel := rules[0].Selector.(DescendantSelector)
	if sel.Descendant.(TagSelector).Tag != "li" {
		t.Fatalf("match selector should be the last word")
	}
	inner := sel.Ancestor.(DescendantSelector)
	if inner.Ancestor.(TagSelector).Tag != "body" || inner.Descendant.(TagSelector).Tag != "ul" {
		t.Errorf("ancestor chain wrong: %#v", sel)
	}
}

func TestParseSheet_SelectorLowercased(t *testing.T) {
	rules := ParseSheet(`DIV { color: red; }`)
	if rules[0].Selector.(TagSelector).Tag != "div" {
		t.Errorf("selector not lower-cased: %#v", rules[0].Selector)
	}
}

func TestParseInline(t *testing.T) {
	pairs := ParseInline(`color: blue; font-size: 150%`)
	if pairs["color"] != "blue" || pairs["font-size"] != "150%" {
		t.Errorf("unexpected pairs: %v", pairs)
	}
}

func TestParseInline_Empty(t *testing.T) {
	if pairs := ParseInline(""); len(pairs) != 0 {
		t.Errorf("expected no pairs, got %v", pairs)
	}
}
