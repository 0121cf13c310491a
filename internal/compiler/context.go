package compiler

import (
	"fmt"
	"strings"

	"cppemit/internal/ast"
)

// Options controls the textual shape of the emitted code.
type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// FuncPrefix is prepended to every defined function name, to self-call
	// references and to identifiers naming a declared function.
	FuncPrefix string
	// BindResults binds the last value of each branch of a lowered
	// conditional into result temporaries of type ResultType when the
	// conditional carries no type of its own.
	BindResults bool
	ResultType  ast.TypeDef
	// RawChars emits character constants without surrounding quotes.
	RawChars bool
}

func DefaultOptions() Options {
	return Options{Indent: 2}
}

// Context is the mutable state of one emission run. It is not safe for
// concurrent use.
type Context struct {
	opts    Options
	temps   int
	callees []string
	frames  [][]string
	funcs   map[string]bool
}

func NewContext(opts Options) *Context {
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return &Context{opts: opts, frames: [][]string{nil}}
}

// DeclareFunc records name as a function of the unit being emitted, so
// identifiers naming it receive FuncPrefix like its definition does.
func (c *Context) DeclareFunc(name string) {
	if c.funcs == nil {
		c.funcs = map[string]bool{}
	}
	c.funcs[name] = true
}

func (c *Context) identName(name string) string {
	if c.opts.FuncPrefix != "" && c.funcs[name] {
		return c.opts.FuncPrefix + name
	}
	return name
}

// NextTemp allocates a fresh temporary name. Names are never reused.
func (c *Context) NextTemp() string {
	c.temps++
	return fmt.Sprintf("_%d", c.temps)
}

// Temps reports how many temporaries have been allocated.
func (c *Context) Temps() int {
	return c.temps
}

func (c *Context) PushCallee(name string) {
	c.callees = append(c.callees, name)
}

func (c *Context) PopCallee() string {
	if len(c.callees) == 0 {
		violate("pop callee", "enclosing-function stack is empty")
	}
	name := c.callees[len(c.callees)-1]
	c.callees = c.callees[:len(c.callees)-1]
	return name
}

// Callee returns the innermost enclosing function name.
func (c *Context) Callee() string {
	if len(c.callees) == 0 {
		violate("self call", "no enclosing function")
	}
	return c.callees[len(c.callees)-1]
}

func (c *Context) Depth() int {
	return len(c.callees)
}

// Pending drains the statements queued at the outermost level, i.e. those
// produced while emitting an expression outside of any statement.
func (c *Context) Pending() []string {
	lines := c.frames[0]
	c.frames[0] = nil
	return lines
}

func (c *Context) pushFrame() {
	c.frames = append(c.frames, nil)
}

func (c *Context) popFrame() []string {
	if len(c.frames) == 1 {
		violate("pop frame", "statement frame stack is empty")
	}
	lines := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	return lines
}

// queue adds lines that must run before the statement being emitted.
func (c *Context) queue(lines ...string) {
	top := len(c.frames) - 1
	c.frames[top] = append(c.frames[top], lines...)
}

// indent pads every line by one level. Multi-line entries are split first.
func (c *Context) indent(lines []string) []string {
	pad := strings.Repeat(" ", c.opts.Indent)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			if part == "" {
				out = append(out, "")
				continue
			}
			out = append(out, pad+part)
		}
	}
	return out
}
