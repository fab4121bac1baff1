package js

import (
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn, and console.error.
// Output is captured so embedders decide where it goes.
type consoleAPI struct {
	lines []string
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.sink(""))
	console.Set("warn", c.sink("WARN: "))
	console.Set("error", c.sink("ERROR: "))
	vm.Set("console", console)
}

func (c *consoleAPI) sink(prefix string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		c.lines = append(c.lines, prefix+formatArgs(call.Arguments))
		return goja.Undefined()
	}
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
