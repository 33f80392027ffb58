package lang

import (
	"strings"
	"unicode"
)

type lexer struct {
	src   []rune
	off   int
	line  int
	col   int
	depth int
}

func tokenize(src string) ([]token, error) {
	lx := &lexer{src: []rune(src), line: 1, col: 1}

	var out []token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		out = append(out, tok)

		if tok.kind == tokEOF {
			return out, nil
		}
	}
}

func (lx *lexer) peek(ahead int) rune {
	if lx.off+ahead >= len(lx.src) {
		return 0
	}

	return lx.src[lx.off+ahead]
}

func (lx *lexer) advance() rune {
	r := lx.src[lx.off]
	lx.off++

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return r
}

func (lx *lexer) pos() Pos {
	return Pos{Line: lx.line, Col: lx.col}
}

func (lx *lexer) next() (token, error) {
	for lx.off < len(lx.src) {
		r := lx.peek(0)

		switch {
		case r == '#':
			for lx.off < len(lx.src) && lx.peek(0) != '\n' {
				lx.advance()
			}
		case r == '\n' && lx.depth == 0:
			p := lx.pos()
			lx.advance()

			return token{kind: tokNewline, text: "\n", pos: p}, nil
		case unicode.IsSpace(r):
			lx.advance()
		default:
			return lx.scan()
		}
	}

	return token{kind: tokEOF, pos: lx.pos()}, nil
}

func (lx *lexer) scan() (token, error) {
	p := lx.pos()
	r := lx.peek(0)

	switch {
	case r == '_' || unicode.IsLetter(r):
		var sb strings.Builder
		for lx.off < len(lx.src) && (lx.peek(0) == '_' || unicode.IsLetter(lx.peek(0)) || unicode.IsDigit(lx.peek(0))) {
			sb.WriteRune(lx.advance())
		}

		word := sb.String()
		if keywords[word] {
			return token{kind: tokKeyword, text: word, pos: p}, nil
		}

		return token{kind: tokIdent, text: word, pos: p}, nil
	case unicode.IsDigit(r):
		return lx.number(p), nil
	case r == '"' || r == '\'':
		return lx.str(p)
	}

	two := string([]rune{r, lx.peek(1)})
	switch two {
	case "==", "!=", "<=", ">=":
		lx.advance()
		lx.advance()

		return token{kind: tokOp, text: two, pos: p}, nil
	}

	switch r {
	case '(', '[', '{':
		lx.depth++
	case ')', ']', '}':
		if lx.depth > 0 {
			lx.depth--
		}
	}

	if strings.ContainsRune("()[]{},.:;=+-*/%<>", r) {
		lx.advance()
		return token{kind: tokOp, text: string(r), pos: p}, nil
	}

	return token{}, &SyntaxError{Pos: p, Msg: "unexpected character " + string(r)}
}

func (lx *lexer) number(p Pos) token {
	var sb strings.Builder

	kind := tokInt

	for lx.off < len(lx.src) {
		r := lx.peek(0)

		switch {
		case unicode.IsDigit(r), r == '_':
			sb.WriteRune(lx.advance())
		case r == '.' && kind == tokInt && unicode.IsDigit(lx.peek(1)):
			kind = tokFloat
			sb.WriteRune(lx.advance())
		case (r == 'e' || r == 'E') && sb.Len() > 0:
			kind = tokFloat
			sb.WriteRune(lx.advance())

			if lx.peek(0) == '-' || lx.peek(0) == '+' {
				sb.WriteRune(lx.advance())
			}
		default:
			return token{kind: kind, text: sb.String(), pos: p}
		}
	}

	return token{kind: kind, text: sb.String(), pos: p}
}

var escapes = map[rune]rune{'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '\'': '\'', '"': '"', '0': 0}

func (lx *lexer) str(p Pos) (token, error) {
	quote := lx.advance()

	var sb strings.Builder

	for {
		if lx.off >= len(lx.src) || lx.peek(0) == '\n' {
			return token{}, &SyntaxError{Pos: p, Msg: "unterminated string"}
		}

		r := lx.advance()

		switch r {
		case quote:
			return token{kind: tokString, text: sb.String(), pos: p}, nil
		case '\\':
			if lx.off >= len(lx.src) {
				return token{}, &SyntaxError{Pos: p, Msg: "unterminated string"}
			}

			esc := lx.advance()

			out, ok := escapes[esc]
			if !ok {
				return token{}, &SyntaxError{Pos: lx.pos(), Msg: "unknown escape \\" + string(esc)}
			}

			sb.WriteRune(out)
		default:
			sb.WriteRune(r)
		}
	}
}
