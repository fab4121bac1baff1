package js

import (
	"strings"

	"github.com/dop251/goja"

	"github.com/braheezy/zibra-sub000/pkg/html"
)

// domContext holds shared state for DOM bindings within a single run.
// It maintains a node-to-proxy cache so the same JS object is returned for
// the same underlying *html.Node (needed for === identity checks).
type domContext struct {
	vm    *goja.Runtime
	root  *html.Node
	cache map[*html.Node]*goja.Object
}

// registerDocument sets up the global `document` object on the runtime.
// Lookups run over the flat pre-order handle table.
func registerDocument(vm *goja.Runtime, root *html.Node) *domContext {
	ctx := &domContext{
		vm:    vm,
		root:  root,
		cache: make(map[*html.Node]*goja.Object),
	}

	doc := vm.NewObject()
	doc.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		id := call.Arguments[0].String()
		for _, n := range html.Flatten(ctx.root) {
			if n.Type != html.ElementNode {
				continue
			}
			if val, ok := n.GetAttribute("id"); ok && val == id {
				return ctx.elementProxy(n)
			}
		}
		return goja.Null()
	})
	doc.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		matched := []goja.Value{}
		if len(call.Arguments) == 0 {
			return ctx.vm.ToValue(matched)
		}
		tag := strings.ToLower(call.Arguments[0].String())
		for _, n := range html.Flatten(ctx.root) {
			if n.Type == html.ElementNode && n.TagName == tag {
				matched = append(matched, ctx.elementProxy(n))
			}
		}
		return ctx.vm.ToValue(matched)
	})
	doc.Set("documentElement", ctx.elementProxy(root))
	if body := findTag(root, "body"); body != nil {
		doc.Set("body", ctx.elementProxy(body))
	}

	vm.Set("document", doc)
	return ctx
}

func findTag(n *html.Node, tag string) *html.Node {
	for _, node := range html.Flatten(n) {
		if node.Type == html.ElementNode && node.TagName == tag {
			return node
		}
	}
	return nil
}

// elementProxy wraps a node as a JS object. Proxies are cached per node.
func (ctx *domContext) elementProxy(n *html.Node) goja.Value {
	if obj, ok := ctx.cache[n]; ok {
		return obj
	}
	obj := ctx.vm.NewObject()
	ctx.cache[n] = obj

	obj.Set("tagName", strings.ToUpper(n.TagName))
	obj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		val, ok := n.GetAttribute(call.Arguments[0].String())
		if !ok {
			return goja.Null()
		}
		return ctx.vm.ToValue(val)
	})
	obj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(ctx.vm.NewTypeError("setAttribute: 2 arguments required"))
		}
		n.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
		return goja.Undefined()
	})

	obj.DefineAccessorProperty("children",
		ctx.vm.ToValue(func(goja.FunctionCall) goja.Value {
			kids := []goja.Value{}
			for _, child := range n.Children {
				if child.Type == html.ElementNode {
					kids = append(kids, ctx.elementProxy(child))
				}
			}
			return ctx.vm.ToValue(kids)
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("textContent",
		ctx.vm.ToValue(func(goja.FunctionCall) goja.Value {
			return ctx.vm.ToValue(n.TextContent())
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("innerHTML",
		ctx.vm.ToValue(func(goja.FunctionCall) goja.Value {
			return ctx.vm.ToValue(n.Serialize())
		}),
		ctx.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Undefined()
			}
			kids, err := html.ParseFragment(call.Arguments[0].String())
			if err != nil {
				panic(ctx.vm.NewTypeError("innerHTML: %v", err))
			}
			n.Children = append(n.Children[:0], kids...)
			// Out-of-band structural mutation: parent pointers in the
			// replaced subtree must be rebuilt before anyone reads them.
			html.FixParentPointers(n, n.Parent)
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	return obj
}
