// Package asmcheck is a read-only structural pass over the AArch64 text
// the compiler's codegen stage produces. It never assembles anything —
// there is no target CPU in this module to run AArch64 on — and never
// touches the bytes handed downstream to a real assembler. It exists to
// make a handful of codegen invariants mechanically checkable: every
// local label the generator references is defined exactly once, and
// every .loc directive it emits carries three integer fields.
package asmcheck

import (
	"fmt"
	"strconv"
	"strings"
)

// CompileError mirrors the compiler package's own error shape so callers
// across the module boundary get one consistent value, without this
// package importing compiler (which would create an import cycle, since
// compiler calls into asmcheck).
type CompileError struct {
	Stage   string
	Message string
}

func (e *CompileError) Error() string {
	return e.Stage + " error: " + e.Message
}

func fail(format string, args ...any) *CompileError {
	return &CompileError{Stage: "asmcheck", Message: fmt.Sprintf(format, args...)}
}

// localLabelPrefixes are the jump-target shapes emitted by this
// compiler's codegen: .if<N>.else, .if<N>.end, .loop<N>.cond, .loop<N>.end.
var localLabelPrefixes = []string{".if", ".loop"}

// minOperands is the fixed minimum operand count for every mnemonic this
// compiler's codegen is contracted to emit. Operand count is measured as
// the number of comma-separated fields after the mnemonic; it is a lower
// bound, not an exact arity, since some of these (e.g. madd) take more
// operands than others (e.g. ret, which takes none).
var minOperands = map[string]int{
	"movz": 2, "movk": 2, "str": 2, "ldr": 2,
	"add": 2, "sub": 2, "mul": 2, "udiv": 2, "msub": 3, "madd": 3,
	"neg": 2, "cmp": 2, "cset": 2,
	"and": 2, "eor": 2, "orr": 2,
	"b": 1, "b.eq": 1, "ret": 0, "mov": 2,
}

// Validate scans asmText line by line and returns the first structural
// violation it finds, or nil if the text is well-formed by the rules
// above. It does not check instruction semantics — register liveness,
// stack balance, control-flow reachability — only the syntactic shape.
func Validate(asmText string) *CompileError {
	defs := map[string]int{}
	uses := map[string]bool{}

	lines := strings.Split(asmText, "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if lbl, ok := labelDefinition(line); ok {
			defs[lbl]++
			continue
		}

		if strings.HasPrefix(line, ".loc") {
			if err := checkLocDirective(line); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(line, ".") {
			continue // other directives (.file, .text, .globl, .align) are untyped
		}

		mnemonic, operands := splitInstruction(line)
		for _, ref := range localLabelRefs(operands) {
			uses[ref] = true
		}

		if mnemonic == "" {
			continue
		}
		min, ok := minOperands[mnemonic]
		if !ok {
			return fail("unrecognized mnemonic %q", mnemonic)
		}
		if got := len(operands); got < min {
			return fail("mnemonic %q expects at least %d operands, got %d", mnemonic, min, got)
		}
	}

	for ref := range uses {
		switch defs[ref] {
		case 0:
			return fail("label %q is referenced but never defined", ref)
		case 1:
			// fine
		default:
			return fail("label %q is defined %d times, want exactly once", ref, defs[ref])
		}
	}

	return nil
}

// labelDefinition recognizes a line of the form "name:" with nothing
// else on it — the shape codegen emits for .if/.loop labels and the
// function entry label.
func labelDefinition(line string) (string, bool) {
	if !strings.HasSuffix(line, ":") {
		return "", false
	}
	name := strings.TrimSuffix(line, ":")
	if name == "" || strings.ContainsAny(name, " \t,") {
		return "", false
	}
	return name, true
}

// splitInstruction separates a non-directive, non-label line into its
// mnemonic and comma-separated operand list.
func splitInstruction(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	mnemonic := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(line, mnemonic))
	if rest == "" {
		return mnemonic, nil
	}
	parts := strings.Split(rest, ",")
	operands := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			operands = append(operands, p)
		}
	}
	return mnemonic, operands
}

// localLabelRefs picks out operands shaped like a local jump target from
// an instruction's operand list (e.g. the ".if3.else" in "b.eq .if3.else").
func localLabelRefs(operands []string) []string {
	var refs []string
	for _, op := range operands {
		for _, prefix := range localLabelPrefixes {
			if strings.HasPrefix(op, prefix) {
				refs = append(refs, op)
				break
			}
		}
	}
	return refs
}

// checkLocDirective verifies a ".loc" line has exactly three
// whitespace-separated fields after the directive name, all parseable as
// non-negative integers.
func checkLocDirective(line string) *CompileError {
	fields := strings.Fields(line)
	args := fields[1:]
	if len(args) != 3 {
		return fail(".loc directive %q has %d fields, want 3", line, len(args))
	}
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return fail(".loc directive %q has non-integer field %q", line, a)
		}
	}
	return nil
}
