// Package js is the script bridge over a built tree. The core parser and
// style engine never depend on it; it consumes the tree the way any
// external collaborator would: flat node handles for lookups, and
// FixParentPointers after every structural mutation.
package js

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/braheezy/zibra-sub000/pkg/html"
)

// Engine executes scripts against a tree's DOM.
type Engine struct {
	vm      *goja.Runtime
	console *consoleAPI
}

// New creates an engine with a fresh goja runtime and console bindings.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, console: &consoleAPI{}}
	e.console.register(vm)
	return e
}

// Run binds the given tree as the global document and executes the script.
// Script errors are returned; the tree keeps whatever mutations happened
// before the failure, with parent pointers already repaired.
func (e *Engine) Run(root *html.Node, script string) error {
	registerDocument(e.vm, root)
	if _, err := e.vm.RunString(script); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// ConsoleOutput returns everything scripts have logged so far.
func (e *Engine) ConsoleOutput() []string {
	return e.console.lines
}
