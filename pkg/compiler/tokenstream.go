package compiler

// TokenStream wraps a CharStream with one-token lookahead, lexing lazily:
// no token is produced until something actually asks for it.
type TokenStream struct {
	cs        *CharStream
	lookahead *Token
	lastLoc   Location
}

// NewTokenStream creates a TokenStream reading from src under the given
// file id.
func NewTokenStream(file FileID, src string) *TokenStream {
	return &TokenStream{cs: NewCharStream(file, src)}
}

// Peek returns the next token without consuming it, lexing it the first
// time it's asked for and caching it until Next is called.
func (ts *TokenStream) Peek() (Token, *CompileError) {
	if ts.lookahead != nil {
		return *ts.lookahead, nil
	}
	tok, err := lexOne(ts.cs)
	if err != nil {
		return Token{}, err
	}
	ts.lookahead = &tok
	return tok, nil
}

// Next consumes and returns the next token, lexing it if Peek was not
// already called.
func (ts *TokenStream) Next() (Token, *CompileError) {
	tok, err := ts.Peek()
	if err != nil {
		return Token{}, err
	}
	ts.lookahead = nil
	ts.lastLoc = tok.Loc
	return tok, nil
}

// ConsumeIf consumes and returns true if the next token is the given
// punctuator, leaving the stream untouched otherwise.
func (ts *TokenStream) ConsumeIf(k PunctuatorKind) (bool, *CompileError) {
	tok, err := ts.Peek()
	if err != nil {
		return false, err
	}
	if tok.IsPunct(k) {
		_, err := ts.Next()
		return true, err
	}
	return false, nil
}

// ConsumeIfKeyword consumes and returns true if the next token is an
// identifier spelled exactly like kw.
func (ts *TokenStream) ConsumeIfKeyword(kw string) (bool, *CompileError) {
	tok, err := ts.Peek()
	if err != nil {
		return false, err
	}
	if tok.IsKeyword(kw) {
		_, err := ts.Next()
		return true, err
	}
	return false, nil
}

// Loc returns the location of the most recently produced (Next'd) token.
// The parser uses this to attach source locations to AST nodes it builds
// right after consuming the token that starts them.
func (ts *TokenStream) Loc() Location {
	return ts.lastLoc
}
