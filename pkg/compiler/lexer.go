package compiler

// keywords lists the words the parser recognizes by text. The lexer itself
// is keyword-agnostic — every alphabetic run becomes an Identifier token —
// and the parser calls Token.IsKeyword with each word spelled out; it does
// not read this map, and it does not reject these words where an
// identifier is expected.
var keywords = map[string]bool{
	"int": true, "if": true, "else": true, "while": true, "for": true, "return": true,
}

func isDecimalDigit(b byte, ok bool) bool {
	return ok && b >= '0' && b <= '9'
}

func isIdentStart(b byte, ok bool) bool {
	return ok && (b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'))
}

func isIdentCont(b byte, ok bool) bool {
	return isIdentStart(b, ok) || isDecimalDigit(b, ok)
}

func isSpace(b byte, ok bool) bool {
	if !ok {
		return false
	}
	switch b {
	case ' ', '\t', '\v', '\r', '\n':
		return true
	default:
		return false
	}
}

// lexOne skips whitespace, commits a fresh Location via cs.NewLoc, and
// scans exactly one token. It implements the lexing rules of the
// distilled specification in order: whitespace skip, EOF check, digit run,
// identifier run, then longest-match punctuation. A leading "//" is a
// fatal lex error (comments are not implemented by this subset), as is
// any byte that matches none of the above.
func lexOne(cs *CharStream) (Token, *CompileError) {
	for {
		b, ok := cs.Peek()
		if !isSpace(b, ok) {
			break
		}
		cs.Get()
	}

	if cs.AtEOF() {
		return Token{Kind: EndOfFile, Loc: cs.Loc()}, nil
	}

	cs.NewLoc()

	b, _ := cs.Peek()

	switch {
	case isDecimalDigit(b, true):
		return lexInteger(cs)
	case isIdentStart(b, true):
		return lexIdentifier(cs), nil
	}

	return lexPunctuator(cs, b)
}

func lexInteger(cs *CharStream) (Token, *CompileError) {
	var digits []byte
	for {
		b, ok := cs.Peek()
		if !isDecimalDigit(b, ok) {
			break
		}
		cs.Get()
		digits = append(digits, b)
	}
	var value uint64
	for _, d := range digits {
		value = value*10 + uint64(d-'0')
	}
	return Token{Kind: IntegerConstant, Loc: cs.Loc(), Value: value}, nil
}

func lexIdentifier(cs *CharStream) Token {
	var text []byte
	for {
		b, ok := cs.Peek()
		if !isIdentCont(b, ok) {
			break
		}
		cs.Get()
		text = append(text, b)
	}
	return Token{Kind: Identifier, Loc: cs.Loc(), Text: string(text)}
}

// lexPunctuator consumes the punctuator whose first byte is already known
// (b), applying longest-match: every multi-character punctuator is tried
// before falling back to its single-character prefix.
func lexPunctuator(cs *CharStream, b byte) (Token, *CompileError) {
	cs.Get()
	punct := func(k PunctuatorKind) (Token, *CompileError) {
		return Token{Kind: Punctuator, Loc: cs.Loc(), Punct: k}, nil
	}
	switch b {
	case '[':
		return punct(LBracket)
	case ']':
		return punct(RBracket)
	case '(':
		return punct(LParen)
	case ')':
		return punct(RParen)
	case '{':
		return punct(LBrace)
	case '}':
		return punct(RBrace)
	case ';':
		return punct(Semi)
	case ',':
		return punct(Comma)
	case ':':
		return punct(Colon)
	case '?':
		return punct(Query)
	case '~':
		return punct(Tilde)
	case '.':
		if cs.ConsumeIf('.') {
			if !cs.ConsumeIf('.') {
				return Token{}, fail(StageLex, cs.Loc(), "expected '...'")
			}
			return punct(DotDotDot)
		}
		return punct(Dot)
	case '-':
		if cs.ConsumeIf('-') {
			return punct(MinusMinus)
		}
		if cs.ConsumeIf('>') {
			return punct(Arrow)
		}
		if cs.ConsumeIf('=') {
			return punct(MinusEq)
		}
		return punct(Minus)
	case '+':
		if cs.ConsumeIf('+') {
			return punct(PlusPlus)
		}
		if cs.ConsumeIf('=') {
			return punct(PlusEq)
		}
		return punct(Plus)
	case '*':
		if cs.ConsumeIf('=') {
			return punct(StarEq)
		}
		return punct(Star)
	case '%':
		if cs.ConsumeIf('=') {
			return punct(ModuloEq)
		}
		return punct(Percent)
	case '/':
		if cs.ConsumeIf('/') {
			return Token{}, fail(StageLex, cs.Loc(), "comments are not implemented")
		}
		if cs.ConsumeIf('=') {
			return punct(SlashEq)
		}
		return punct(Slash)
	case '&':
		if cs.ConsumeIf('&') {
			return punct(AndAnd)
		}
		if cs.ConsumeIf('=') {
			return punct(AndEq)
		}
		return punct(And)
	case '|':
		if cs.ConsumeIf('|') {
			return punct(OrOr)
		}
		if cs.ConsumeIf('=') {
			return punct(OrEq)
		}
		return punct(Or)
	case '^':
		if cs.ConsumeIf('=') {
			return punct(CaretEq)
		}
		return punct(Caret)
	case '!':
		if cs.ConsumeIf('=') {
			return punct(NotEq)
		}
		return punct(Not)
	case '<':
		if cs.ConsumeIf('<') {
			if cs.ConsumeIf('=') {
				return punct(LLAngleEq)
			}
			return punct(LLAngle)
		}
		if cs.ConsumeIf('=') {
			return punct(LAngleEq)
		}
		return punct(LAngle)
	case '>':
		if cs.ConsumeIf('>') {
			if cs.ConsumeIf('=') {
				return punct(RRAngleEq)
			}
			return punct(RRAngle)
		}
		if cs.ConsumeIf('=') {
			return punct(RAngleEq)
		}
		return punct(RAngle)
	case '=':
		if cs.ConsumeIf('=') {
			return punct(EqEq)
		}
		return punct(Eq)
	case '#':
		if cs.ConsumeIf('#') {
			return punct(HashHash)
		}
		return punct(Hash)
	default:
		return Token{}, fail(StageLex, cs.Loc(), "unexpected character %q", rune(b))
	}
}
