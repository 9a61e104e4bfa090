// Package runtime implements exprlang's environment: the Context stack of
// Frames that backs every variable declaration, lookup, and assignment
// (spec §4.4).
package runtime

import (
	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/internal/lexer"
	"github.com/jleeming/exprlang/internal/types"
)

// nonlocalSentinel marks a name as deliberately absent from the top frame:
// VarRef must skip past it and keep searching outer frames (spec §4.4's
// nonlocal mechanic).
type nonlocalSentinel struct{}

func (nonlocalSentinel) Type() *types.Type { return nil }
func (nonlocalSentinel) String() string    { return "<nonlocal>" }

// nonlocalMarker is the single NONLOCAL value installed by Context.Nonlocal.
var nonlocalMarker types.Value = nonlocalSentinel{}

// Slot is one variable's binding: its current value, its declared type
// (used to validate future assignments), and whether it is const.
type Slot struct {
	Value        types.Value
	DeclaredType *types.Type
	Const        bool
}

// Frame is one scope's mapping from identifier to variable slot.
type Frame map[string]*Slot

// Context is the ordered stack of frames active during evaluation. The
// bottom frame is the root (types and builtins the host seeds before
// evaluation); the top frame is the innermost scope.
type Context struct {
	frames []Frame
}

// NewContext returns a Context holding a single root frame.
func NewContext() *Context {
	return &Context{frames: []Frame{{}}}
}

// Depth reports how many frames are currently on the stack.
func (c *Context) Depth() int { return len(c.frames) }

// Push appends a new, empty frame.
func (c *Context) Push() {
	c.frames = append(c.frames, Frame{})
}

// Pop discards the top frame. Popping a Context that has no frames left is
// a programmer error in the evaluator, not a user-facing one, so it panics
// rather than returning an error.
func (c *Context) Pop() {
	if len(c.frames) == 0 {
		panic("runtime: Pop on empty Context")
	}
	c.frames = c.frames[:len(c.frames)-1]
}

// Peek returns the top frame.
func (c *Context) Peek() Frame {
	return c.frames[len(c.frames)-1]
}

// Scoped pushes a new frame, runs fn, and pops the frame on every exit
// path — including when fn returns an error — so a failing nested
// evaluation never leaves an unbalanced stack (spec §5's scoped
// acquisition idiom).
func (c *Context) Scoped(fn func() error) error {
	c.Push()
	defer c.Pop()
	return fn()
}

// Declare creates a slot for name in the top frame, overwriting any
// existing entry already there.
func (c *Context) Declare(name string, declaredType *types.Type, value types.Value, constFlag bool) {
	if value == nil {
		value = types.Undefined
	}
	c.Peek()[name] = &Slot{Value: value, DeclaredType: declaredType, Const: constFlag}
}

// Nonlocal marks name as nonlocal in the top frame: subsequent Get/VarRef
// lookups for name skip the top frame and search outward from there.
func (c *Context) Nonlocal(name string) {
	c.Peek()[name] = &Slot{Value: nonlocalMarker}
}

// Contains reports whether name is bound in any frame, top to bottom.
func (c *Context) Contains(name string) bool {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if _, ok := c.frames[i][name]; ok {
			return true
		}
	}
	return false
}

// TopFrameLookup looks up name in the top frame only. nonlocal reports
// whether the binding found is the NONLOCAL sentinel (spec §4.4: a
// subsequent VarRef must treat that as "not really here" and search
// outer frames instead of returning the sentinel itself).
func (c *Context) TopFrameLookup(name string) (value types.Value, nonlocal bool, ok bool) {
	slot, ok := c.Peek()[name]
	if !ok {
		return nil, false, false
	}
	if slot.Value == nonlocalMarker {
		return nil, true, true
	}
	return slot.Value, false, true
}

// LookupBelowTop searches every frame except the top one, top to bottom,
// for name, honoring the nonlocal marker. It fails with NameError if no
// frame below the top holds name.
func (c *Context) LookupBelowTop(pos lexer.Position, name string) (types.Value, error) {
	for i := len(c.frames) - 2; i >= 0; i-- {
		slot, ok := c.frames[i][name]
		if !ok || slot.Value == nonlocalMarker {
			continue
		}
		return slot.Value, nil
	}
	return nil, errors.NewNameError(pos, "name %q is not declared", name)
}

// Get searches top to bottom and returns the first slot whose value is
// not undefined, honoring the nonlocal marker by skipping past it. It
// fails with NameError if every binding found is undefined (or there is
// no binding at all).
func (c *Context) Get(pos lexer.Position, name string) (types.Value, error) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		slot, ok := c.frames[i][name]
		if !ok {
			continue
		}
		if slot.Value == nonlocalMarker {
			continue
		}
		if slot.Value == types.Undefined {
			continue
		}
		return slot.Value, nil
	}
	return nil, errors.NewNameError(pos, "name %q is not declared", name)
}

// GetVariable returns the first slot bound to name regardless of its
// value, honoring the nonlocal marker. allowUndefined controls whether an
// undefined binding is acceptable; when false it behaves like Get and
// keeps searching past an undefined slot instead of stopping at it.
func (c *Context) GetVariable(pos lexer.Position, name string, allowUndefined bool) (types.Value, error) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		slot, ok := c.frames[i][name]
		if !ok {
			continue
		}
		if slot.Value == nonlocalMarker {
			continue
		}
		if !allowUndefined && slot.Value == types.Undefined {
			continue
		}
		return slot.Value, nil
	}
	return nil, errors.NewNameError(pos, "name %q is not declared", name)
}

// Set searches top to bottom for a frame holding name and assigns value
// to it, provided the slot is not const and value's type matches the
// slot's declared type. It fails with NameError otherwise — including
// when name is not declared at all.
func (c *Context) Set(pos lexer.Position, name string, value types.Value) error {
	for i := len(c.frames) - 1; i >= 0; i-- {
		slot, ok := c.frames[i][name]
		if !ok || slot.Value == nonlocalMarker {
			continue
		}
		if slot.Const {
			return errors.NewNameError(pos, "%q is declared constant", name)
		}
		if slot.DeclaredType != nil && value.Type() != slot.DeclaredType {
			return errors.NewNameError(pos, "%q is declared as %s, not %s", name, slot.DeclaredType, value.Type())
		}
		slot.Value = value
		return nil
	}
	return errors.NewNameError(pos, "%q is not declared", name)
}
