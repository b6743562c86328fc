package compiler

import "fmt"

// FileID identifies a source file within a single compile. This compiler
// only ever sees one buffer (stdin-equivalent, per the driver), but the
// field exists so a Location is self-describing without an implicit
// "current file" anywhere else.
type FileID int

// Location pins a token or AST node to a byte range in a source buffer.
//
// Line and Col are 1-based; Index and Length are 0-based byte offsets.
// A Location is captured at token-start time by the lexer and inherited
// unchanged by every AST node derived from that token.
type Location struct {
	File   FileID
	Line   int
	Col    int
	Index  int
	Length int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// CharStream is a byte-accurate cursor over an in-memory source buffer.
// It tracks two unexported locations: current, the region accumulated so
// far for the token under construction, and next, the prospective
// location of the next unread byte.
type CharStream struct {
	src     []byte
	current Location
	next    Location
}

// NewCharStream creates a cursor over src tagged with the given file id.
func NewCharStream(file FileID, src string) *CharStream {
	loc := Location{File: file, Line: 1, Col: 1}
	return &CharStream{src: []byte(src), current: loc, next: loc}
}

// Peek returns the byte at the next unread position without consuming it.
func (c *CharStream) Peek() (byte, bool) {
	if c.next.Index >= len(c.src) {
		return 0, false
	}
	return c.src[c.next.Index], true
}

// Get consumes and returns the next byte, advancing next and growing the
// length of the token currently under construction.
func (c *CharStream) Get() (byte, bool) {
	if c.next.Index >= len(c.src) {
		return 0, false
	}
	ch := c.src[c.next.Index]
	c.current.Length++
	c.next.Index++
	c.next.Col++
	if ch == '\n' {
		c.next.Line++
		c.next.Col = 1
	}
	return ch, true
}

// ConsumeIf consumes the next byte and returns true if it equals b, and
// leaves the cursor untouched otherwise.
func (c *CharStream) ConsumeIf(b byte) bool {
	if peeked, ok := c.Peek(); ok && peeked == b {
		c.Get()
		return true
	}
	return false
}

// Loc returns a snapshot of the location of the token currently under
// construction.
func (c *CharStream) Loc() Location {
	return c.current
}

// NewLoc commits the cursor: current becomes next, starting a fresh
// zero-length region for whatever token comes next.
func (c *CharStream) NewLoc() {
	c.current = c.next
}

// AtEOF reports whether every byte of the buffer has been consumed.
func (c *CharStream) AtEOF() bool {
	_, ok := c.Peek()
	return !ok
}
