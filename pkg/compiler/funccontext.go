package compiler

// FuncContext holds the codegen-only state that used to live in a
// process-wide global in the source this compiler is modeled on: the
// stack-slot assignment for every declared local, and the monotonic
// counter that mints unique jump labels. It is constructed empty at the
// start of a single top-level compile and threaded explicitly through the
// codegen walk (see codegen.go) — nothing outside that one walk can see
// or mutate it.
type FuncContext struct {
	locals    map[string]int
	stackSize int
	nextLabel int
}

// NewFuncContext returns an empty context ready for a fresh compile.
func NewFuncContext() *FuncContext {
	return &FuncContext{locals: make(map[string]int)}
}

// Declare assigns the next 8-byte stack slot to ident and advances the
// frame size. Duplicate declarations are not detected — a second Declare
// of the same name silently overwrites its offset — matching the source's
// documented open issue.
func (f *FuncContext) Declare(ident string) int {
	off := f.stackSize
	f.locals[ident] = off
	f.stackSize += 8
	return off
}

// Offset looks up the stack offset of a previously declared local.
// Referencing an undeclared name silently yields offset zero, matching
// the source's documented open issue — Offset never fails.
func (f *FuncContext) Offset(ident string) int {
	return f.locals[ident]
}

// NextLabel mints the next label number in the monotonic sequence
// 1, 2, 3, … used to build names like ".if3.else" and ".loop7.cond".
func (f *FuncContext) NextLabel() int {
	f.nextLabel++
	return f.nextLabel
}
