package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileError_FormatWithLocation(t *testing.T) {
	loc := Location{Line: 3, Col: 5}
	err := fail(StageParse, loc, "unexpected %s", "}")
	assert.Equal(t, "parse error at 3:5: unexpected }", err.Error())
}

func TestCompileError_FormatWithoutLocation(t *testing.T) {
	err := failNoLoc(StageCodegen, "unreachable")
	assert.Equal(t, "failed assert unreachable", err.Error())
}
