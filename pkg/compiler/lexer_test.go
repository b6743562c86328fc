package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	cs := NewCharStream(1, src)
	var toks []Token
	for {
		tok, err := lexOne(cs)
		assert.Nil(t, err)
		toks = append(toks, tok)
		if tok.Kind == EndOfFile {
			return toks
		}
	}
}

func TestLex_IntegerAndIdentifier(t *testing.T) {
	toks := lexAll(t, "x 42 foo_bar")
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Text)
	assert.Equal(t, IntegerConstant, toks[1].Kind)
	assert.Equal(t, uint64(42), toks[1].Value)
	assert.Equal(t, Identifier, toks[2].Kind)
	assert.Equal(t, "foo_bar", toks[2].Text)
	assert.Equal(t, EndOfFile, toks[3].Kind)
}

func TestLex_LongestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want PunctuatorKind
	}{
		{"<", LAngle},
		{"<=", LAngleEq},
		{"<<", LLAngle},
		{"<<=", LLAngleEq},
		{"=", Eq},
		{"==", EqEq},
		{"-", Minus},
		{"->", Arrow},
		{"--", MinusMinus},
		{".", Dot},
		{"...", DotDotDot},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		assert.Equal(t, Punctuator, toks[0].Kind, "source %q", tt.src)
		assert.Equal(t, tt.want, toks[0].Punct, "source %q", tt.src)
		assert.Equal(t, EndOfFile, toks[1].Kind, "source %q should be fully consumed", tt.src)
	}
}

func TestLex_WhitespaceIsTransparent(t *testing.T) {
	a := lexAll(t, "x+y")
	b := lexAll(t, "  x  +\t y\n")
	assert.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Kind, b[i].Kind)
	}
}

func TestLex_CommentIsFatal(t *testing.T) {
	cs := NewCharStream(1, "// nope")
	_, err := lexOne(cs)
	assert.NotNil(t, err)
	assert.Equal(t, StageLex, err.Stage)
}

func TestLex_UnrecognizedByteIsFatal(t *testing.T) {
	cs := NewCharStream(1, "$")
	_, err := lexOne(cs)
	assert.NotNil(t, err)
	assert.Equal(t, StageLex, err.Stage)
}

func TestLex_DotDotWithoutThirdDotIsFatal(t *testing.T) {
	cs := NewCharStream(1, "..")
	_, err := lexOne(cs)
	assert.NotNil(t, err)
}
