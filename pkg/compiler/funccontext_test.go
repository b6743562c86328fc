package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncContext_DeclareAssignsIncreasingOffsets(t *testing.T) {
	fc := NewFuncContext()
	assert.Equal(t, 0, fc.Declare("a"))
	assert.Equal(t, 8, fc.Declare("b"))
	assert.Equal(t, 16, fc.Declare("c"))
}

func TestFuncContext_OffsetOfUndeclaredIsZero(t *testing.T) {
	fc := NewFuncContext()
	assert.Equal(t, 0, fc.Offset("never-declared"))
}

func TestFuncContext_NextLabelIsMonotonicStartingAtOne(t *testing.T) {
	fc := NewFuncContext()
	assert.Equal(t, 1, fc.NextLabel())
	assert.Equal(t, 2, fc.NextLabel())
	assert.Equal(t, 3, fc.NextLabel())
}

func TestFuncContext_DuplicateDeclareOverwrites(t *testing.T) {
	fc := NewFuncContext()
	fc.Declare("x")
	second := fc.Declare("x")
	assert.Equal(t, second, fc.Offset("x"))
}
