package compiler

import (
	"fmt"
	"strings"
)

// CodeGen walks a single top-level statement's AST and emits AArch64
// assembly text. It never executes anything it emits — the text is the
// entire product. Some programs the parser accepts still fail here, with
// a StageCodegen error and no source location: pointer + pointer and
// integer - pointer (see emitAddSub), the shift and logical operators
// (no emitter), and assignment to an expression that is not an lvalue
// (see emitAddr).
type CodeGen struct {
	out strings.Builder
	fn  *FuncContext
}

// NewCodeGen returns a CodeGen with a fresh, empty FuncContext.
func NewCodeGen() *CodeGen {
	return &CodeGen{fn: NewFuncContext()}
}

func (g *CodeGen) emit(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteByte('\n')
}

// Generate emits a complete assembly file for body: the fixed prologue
// this target always opens with, the body's own instructions, and the
// fixed epilogue that returns even if body never executes a return
// statement itself.
func Generate(body Stmt) (string, *CompileError) {
	g := NewCodeGen()

	g.emit(".file 1 %q", "stdin")
	g.emit(".text")
	g.emit(".globl _main")
	g.emit(".align 4")
	g.emit("_main:")

	g.emit("mov fp, sp")
	g.emit("sub sp, sp, 256")

	if err := g.emitStmt(body); err != nil {
		return "", err
	}

	g.emit("add sp, sp, 256")
	g.emit("ret")

	return g.out.String(), nil
}

// emitLoc writes a .loc directive pinning the next instructions to the
// source position loc.
func (g *CodeGen) emitLoc(loc Location) {
	g.emit(".loc %d %d %d", loc.File, loc.Line, loc.Col)
}

// emitConstant materializes value into reg using up to four movz/movk
// instructions, one per 16-bit slice, skipping any slice that is zero
// except the lowest (movz always runs, even for zero).
func (g *CodeGen) emitConstant(reg string, value uint64) {
	g.emit("movz %s, %d", reg, value&0xFFFF)
	if (value>>16)&0xFFFF != 0 {
		g.emit("movk %s, %d, lsl 16", reg, (value>>16)&0xFFFF)
	}
	if (value>>32)&0xFFFF != 0 {
		g.emit("movk %s, %d, lsl 32", reg, (value>>32)&0xFFFF)
	}
	if (value>>48)&0xFFFF != 0 {
		g.emit("movk %s, %d, lsl 48", reg, (value>>48)&0xFFFF)
	}
}

// emitAddr emits code that leaves the address of the lvalue expr in x0.
// Only VariableExpr and *e (dereference) are lvalues in this subset. The
// parser accepts any expression on the left of `=`, so a program such as
// `1 = 2;` reaches here with a non-lvalue; that is reported with no
// source location via failNoLoc.
func (g *CodeGen) emitAddr(expr Expr) *CompileError {
	switch e := expr.(type) {
	case *VariableExpr:
		g.emit("add x0, fp, %d", g.fn.Offset(e.Ident))
		return nil
	case *UnOpExpr:
		if e.Op == Dereference {
			return g.emitExpr(e.E)
		}
		return failNoLoc(StageCodegen, "unknown unop kind in lvalue position: %s", e.Op)
	default:
		return failNoLoc(StageCodegen, "expression is not an lvalue: %s", expr)
	}
}

// emitAddSub handles pointer-aware + and -: plain integer arithmetic when
// neither side is a pointer, scaled arithmetic by the pointee size
// otherwise. lhs is in x1, rhs is in x0 on entry (see emitExpr's BinOpExpr
// case), matching the source's register convention exactly.
func (g *CodeGen) emitAddSub(e *BinOpExpr) *CompileError {
	isAdd := e.Op == Add
	lt := DeriveType(e.Lhs)
	rt := DeriveType(e.Rhs)
	lp := lt.IsPointer()
	rp := rt.IsPointer()

	switch {
	case lp && rp:
		if isAdd {
			return failNoLoc(StageCodegen, "pointer + pointer is invalid")
		}
		g.emitConstant("x2", sizeOf(*lt.Base))
		g.emit("sub x0, x1, x0")
		g.emit("udiv x0, x0, x2")
		return nil
	case lp && !rp:
		g.emitConstant("x2", sizeOf(*lt.Base))
		if isAdd {
			g.emit("madd x0, x0, x2, x1") // x0 = x1 + x0 * x2
		} else {
			g.emit("msub x0, x0, x2, x1") // x0 = x1 - x0 * x2
		}
		return nil
	case !lp && rp:
		if !isAdd {
			return failNoLoc(StageCodegen, "integer - pointer is invalid")
		}
		g.emitConstant("x2", sizeOf(*rt.Base))
		g.emit("madd x0, x1, x2, x0") // x0 = x0 + x1 * x2
		return nil
	}

	if isAdd {
		g.emit("add x0, x1, x0")
	} else {
		g.emit("sub x0, x1, x0")
	}
	return nil
}

func sizeOf(t Type) uint64 {
	n, _ := t.Size()
	return uint64(n)
}

// emitExpr emits code that leaves the value of expr in x0.
func (g *CodeGen) emitExpr(expr Expr) *CompileError {
	switch e := expr.(type) {
	case *IntegerConstantExpr:
		g.emitLoc(e.At)
		g.emitConstant("x0", e.Value)
		return nil

	case *VariableExpr:
		g.emit("ldr x0, [fp, %d]", g.fn.Offset(e.Ident))
		return nil

	case *UnOpExpr:
		if e.Op == AddressOf {
			return g.emitAddr(e.E)
		}
		if err := g.emitExpr(e.E); err != nil {
			return err
		}
		g.emitLoc(e.At)
		switch e.Op {
		case Dereference:
			g.emit("ldr x0, [x0]")
			return nil
		case Posate:
			return nil
		case Negate:
			g.emit("neg x0, x0")
			return nil
		default:
			return failNoLoc(StageCodegen, "unknown unop kind: %s", e.Op)
		}

	case *BinOpExpr:
		if err := g.emitExpr(e.Lhs); err != nil {
			return err
		}
		g.emit("str x0, [sp, -16]!")
		if err := g.emitExpr(e.Rhs); err != nil {
			return err
		}
		g.emit("ldr x1, [sp], 16")

		g.emitLoc(e.At)
		switch e.Op {
		case Add, Subtract:
			return g.emitAddSub(e)
		case Multiply:
			g.emit("mul x0, x1, x0")
			return nil
		case Divide:
			g.emit("udiv x0, x1, x0") // unsigned divide for now
			return nil
		case Modulo:
			g.emit("udiv x2, x1, x0") // unsigned for now
			g.emit("msub x0, x2, x0, x1")
			return nil
		case LessThan:
			g.emit("cmp x1, x0")
			g.emit("cset x0, lt") // signed compare
			return nil
		case GreaterThan:
			g.emit("cmp x1, x0")
			g.emit("cset x0, gt") // signed compare
			return nil
		case LessThanEqual:
			g.emit("cmp x1, x0")
			g.emit("cset x0, le") // signed compare
			return nil
		case GreaterThanEqual:
			g.emit("cmp x1, x0")
			g.emit("cset x0, ge") // signed compare
			return nil
		case Equal:
			g.emit("cmp x1, x0")
			g.emit("cset x0, eq")
			return nil
		case NotEqual:
			g.emit("cmp x1, x0")
			g.emit("cset x0, ne")
			return nil
		case BitAnd:
			g.emit("and x0, x1, x0")
			return nil
		case BitXor:
			g.emit("eor x0, x1, x0")
			return nil
		case BitOr:
			g.emit("orr x0, x1, x0")
			return nil
		default:
			// LShift, RShift, LogicalAnd and LogicalOr parse but have no
			// emitter: the original never lowers them either.
			return failNoLoc(StageCodegen, "unknown binop kind: %s", e.Op)
		}

	case *AssignExpr:
		if err := g.emitAddr(e.Lhs); err != nil {
			return err
		}
		g.emit("str x0, [sp, -16]!")
		if err := g.emitExpr(e.Rhs); err != nil {
			return err
		}
		g.emit("ldr x1, [sp], 16")
		g.emit("str x0, [x1]")
		return nil

	default:
		return failNoLoc(StageCodegen, "unknown expr kind: %T", expr)
	}
}

// emitStmt emits the code for one statement.
func (g *CodeGen) emitStmt(stmt Stmt) *CompileError {
	switch s := stmt.(type) {
	case *CompoundStmt:
		for _, item := range s.Items {
			if err := g.emitStmt(item); err != nil {
				return err
			}
		}
		return nil

	case *ExprStmt:
		if s.E != nil {
			return g.emitExpr(s.E)
		}
		return nil

	case *IfStmt:
		i := g.fn.NextLabel()
		if err := g.emitExpr(s.Cond); err != nil {
			return err
		}
		g.emit("cmp x0, 0")
		g.emit("b.eq .if%d.else", i)
		if err := g.emitStmt(s.Then); err != nil {
			return err
		}
		g.emit("b .if%d.end", i)
		g.emit(".if%d.else:", i)
		if s.Else != nil {
			if err := g.emitStmt(s.Else); err != nil {
				return err
			}
		}
		g.emit(".if%d.end:", i)
		return nil

	case *LoopStmt:
		i := g.fn.NextLabel()
		if s.Init != nil {
			if err := g.emitExpr(s.Init); err != nil {
				return err
			}
		}
		g.emit(".loop%d.cond:", i)
		if s.Cond != nil {
			if err := g.emitExpr(s.Cond); err != nil {
				return err
			}
			g.emit("cmp x0, 0")
			g.emit("b.eq .loop%d.end", i)
		}
		if err := g.emitStmt(s.Body); err != nil {
			return err
		}
		if s.Incr != nil {
			if err := g.emitExpr(s.Incr); err != nil {
				return err
			}
		}
		g.emit("b .loop%d.cond", i)
		g.emit(".loop%d.end:", i)
		return nil

	case *ReturnStmt:
		if s.E != nil {
			if err := g.emitExpr(s.E); err != nil {
				return err
			}
		}
		g.emitLoc(s.At)
		g.emit("ret")
		return nil

	case *DeclStmt:
		// No duplicate-declaration check: a second declaration of the same
		// name silently claims a new slot and the old one becomes dead.
		g.fn.Declare(s.Ident)
		return nil

	default:
		return failNoLoc(StageCodegen, "unknown stmt kind: %T", stmt)
	}
}
