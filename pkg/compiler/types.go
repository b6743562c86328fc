package compiler

import "fmt"

// TypeKind discriminates the three-member Type sum: Invalid, Int, Pointer.
type TypeKind int

const (
	InvalidType TypeKind = iota
	IntType
	PointerType
)

// Type is this compiler's entire type system: an int, a pointer to
// another Type, or Invalid — the result of an ill-formed combination such
// as `ptr + ptr`. Every non-Invalid Type this compiler can construct is
// exactly 8 bytes; there is no narrower integer and no struct/array type.
type Type struct {
	Kind TypeKind
	Base *Type // meaningful when Kind == PointerType
}

var Invalid = Type{Kind: InvalidType}
var Int = Type{Kind: IntType}

// Pointer builds the type of a pointer to base.
func Pointer(base Type) Type {
	b := base
	return Type{Kind: PointerType, Base: &b}
}

// Size returns the type's size in bytes. It is defined for every
// non-Invalid type and is always a positive power of two — this compiler
// fixes both its integers and its pointers at 8 bytes.
func (t Type) Size() (int, bool) {
	switch t.Kind {
	case IntType, PointerType:
		return 8, true
	default:
		return 0, false
	}
}

func (t Type) IsPointer() bool { return t.Kind == PointerType }
func (t Type) IsInvalid() bool { return t.Kind == InvalidType }

func (t Type) String() string {
	switch t.Kind {
	case IntType:
		return "int"
	case PointerType:
		return fmt.Sprintf("%s*", t.Base)
	default:
		return "<invalid>"
	}
}

// DeriveType is a pure, deterministic function computing the type of an
// expression node. It never mutates the AST and never fails — Invalid is
// itself a first-class result, not an error — matching the source
// language's deliberately loose typing (see the Dereference case and the
// open issue about it in the design notes).
func DeriveType(e Expr) Type {
	switch n := e.(type) {
	case *IntegerConstantExpr:
		return Int
	case *VariableExpr:
		return Int
	case *UnOpExpr:
		return deriveUnOpType(n)
	case *BinOpExpr:
		return deriveBinOpType(n)
	case *AssignExpr:
		return DeriveType(n.Lhs)
	default:
		return Invalid
	}
}

func deriveUnOpType(e *UnOpExpr) Type {
	switch e.Op {
	case AddressOf:
		return Pointer(DeriveType(e.E))
	case Dereference:
		t := DeriveType(e.E)
		if t.IsPointer() {
			return *t.Base
		}
		// Deliberately loose: dereferencing a non-pointer types as Int
		// rather than Invalid. Preserved from the source; see design notes.
		return Int
	case Posate, Negate:
		return DeriveType(e.E)
	default:
		return Invalid
	}
}

func deriveBinOpType(e *BinOpExpr) Type {
	lt := DeriveType(e.Lhs)
	rt := DeriveType(e.Rhs)

	switch e.Op {
	case Add:
		switch {
		case lt.IsPointer() && rt.IsPointer():
			return Invalid
		case !lt.IsPointer() && rt.IsPointer():
			return rt
		default:
			return lt
		}
	case Subtract:
		switch {
		case lt.IsPointer() && rt.IsPointer():
			return Int
		case !lt.IsPointer() && rt.IsPointer():
			return Invalid
		default:
			return lt
		}
	case Multiply, Divide, Modulo, LShift, RShift, BitAnd, BitXor, BitOr:
		return lt
	case LessThan, GreaterThan, LessThanEqual, GreaterThanEqual, Equal, NotEqual, LogicalAnd, LogicalOr:
		return Int
	default:
		return Invalid
	}
}
