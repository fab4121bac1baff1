package js

import (
	"testing"

	"github.com/braheezy/zibra-sub000/pkg/html"
)

func parseDoc(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := html.Parse(markup)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return root
}

func TestEngine_ConsoleCapture(t *testing.T) {
	e := New()
	root := parseDoc(t, `<p>x</p>`)
	if err := e.Run(root, `console.log("hello", 42); console.warn("careful");`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	out := e.ConsoleOutput()
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %v", out)
	}
	if out[0] != "hello 42" || out[1] != "WARN: careful" {
		t.Errorf("unexpected console output: %v", out)
	}
}

func TestEngine_ScriptError(t *testing.T) {
	e := New()
	root := parseDoc(t, `<p>x</p>`)
	if err := e.Run(root, `not valid js <<<`); err == nil {
		t.Fatalf("expected script error")
	}
}

func TestDocument_GetElementById(t *testing.T) {
	e := New()
	root := parseDoc(t, `<div id="main"><p id="greeting">Hello</p></div>`)
	err := e.Run(root, `
		var el = document.getElementById("greeting");
		console.log(el.tagName);
		console.log(el.textContent);
		console.log(document.getElementById("missing"));
	`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	out := e.ConsoleOutput()
	if out[0] != "P" || out[1] != "Hello" || out[2] != "null" {
		t.Errorf("unexpected output: %v", out)
	}
}

func TestDocument_GetElementsByTagName(t *testing.T) {
	e := New()
	root := parseDoc(t, `<ul><li>a<li>b<li>c</ul>`)
	err := e.Run(root, `console.log(document.getElementsByTagName("li").length);`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out := e.ConsoleOutput(); out[0] != "3" {
		t.Errorf("expected 3 list items, got %v", out)
	}
}

func TestElement_ProxyIdentity(t *testing.T) {
	e := New()
	root := parseDoc(t, `<div id="a"></div>`)
	err := e.Run(root, `
		var x = document.getElementById("a");
		var y = document.getElementById("a");
		console.log(x === y);
	`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out := e.ConsoleOutput(); out[0] != "true" {
		t.Errorf("proxies for the same node must be identical: %v", out)
	}
}

func TestElement_SetAttributeMutatesTree(t *testing.T) {
	e := New()
	root := parseDoc(t, `<p id="target">x</p>`)
	err := e.Run(root, `document.getElementById("target").setAttribute("style", "color: blue");`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	body := root.Children[1]
	if got, _ := body.Children[0].GetAttribute("style"); got != "color: blue" {
		t.Errorf("attribute write did not reach the tree: %q", got)
	}
}

func TestElement_InnerHTMLRead(t *testing.T) {
	e := New()
	root := parseDoc(t, `<div id="d"><b>x</b></div>`)
	err := e.Run(root, `console.log(document.getElementById("d").innerHTML);`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out := e.ConsoleOutput(); out[0] != "<b>x</b>" {
		t.Errorf("unexpected innerHTML: %v", out)
	}
}

func TestElement_InnerHTMLWriteReparsesAndFixesParents(t *testing.T) {
	e := New()
	root := parseDoc(t, `<div id="d">old</div>`)
	err := e.Run(root, `
		var d = document.getElementById("d");
		d.innerHTML = "<p>new <b>content</b></p>";
		console.log(d.children.length);
	`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out := e.ConsoleOutput(); out[0] != "1" {
		t.Errorf("unexpected children count: %v", out)
	}

	body := root.Children[1]
	div := body.Children[0]
	if len(div.Children) != 1 || div.Children[0].TagName != "p" {
		t.Fatalf("tree not replaced\n%s", html.Dump(root))
	}
	p := div.Children[0]
	if p.Parent != div {
		t.Errorf("parent pointers not rebuilt after innerHTML")
	}
	if b := p.Children[1]; b.Parent != p || b.Children[0].Parent != b {
		t.Errorf("nested parent pointers not rebuilt")
	}
	if div.Parent != body {
		t.Errorf("mutated element detached from its own parent")
	}
}

func TestDocument_BodyAndDocumentElement(t *testing.T) {
	e := New()
	root := parseDoc(t, `<p>x</p>`)
	err := e.Run(root, `
		console.log(document.documentElement.tagName);
		console.log(document.body.tagName);
	`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	out := e.ConsoleOutput()
	if out[0] != "HTML" || out[1] != "BODY" {
		t.Errorf("unexpected output: %v", out)
	}
}
