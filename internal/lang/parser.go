package lang

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precCompare
	precSum
	precProduct
	precPrefix
	precPostfix
)

var binaryPrec = map[string]int{
	"or":  precOr,
	"and": precAnd,
	"==":  precCompare,
	"!=":  precCompare,
	"<":   precCompare,
	"<=":  precCompare,
	">":   precCompare,
	">=":  precCompare,
	"+":   precSum,
	"-":   precSum,
	"*":   precProduct,
	"/":   precProduct,
	"%":   precProduct,
}

type parser struct {
	toks []token
	i    int
}

func parse(src string) ([]stmt, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	var out []stmt

	for {
		p.skipSeparators()

		if p.cur().kind == tokEOF {
			return out, nil
		}

		s, err := p.statement()
		if err != nil {
			return nil, err
		}

		out = append(out, s)

		switch t := p.cur(); {
		case t.kind == tokEOF, t.kind == tokNewline, t.is(tokOp, ";"):
		default:
			return nil, p.errorf(t, "expected end of statement, found %s", t)
		}
	}
}

func (p *parser) cur() token { return p.toks[p.i] }

func (p *parser) advance() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) skipSeparators() {
	for p.cur().kind == tokNewline || p.cur().is(tokOp, ";") {
		p.advance()
	}
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind, text string) (token, error) {
	t := p.cur()
	if !t.is(kind, text) {
		return t, p.errorf(t, "expected %q, found %s", text, t)
	}

	return p.advance(), nil
}

func (p *parser) statement() (stmt, error) {
	start := p.cur()

	if start.is(tokKeyword, "return") {
		p.advance()

		if t := p.cur(); t.kind == tokEOF || t.kind == tokNewline || t.is(tokOp, ";") {
			return &returnStmt{pos: start.pos}, nil
		}

		x, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		return &returnStmt{pos: start.pos, x: x}, nil
	}

	x, err := p.expression(precLowest)
	if err != nil {
		return nil, err
	}

	if !p.cur().is(tokOp, "=") {
		return &exprStmt{pos: start.pos, x: x}, nil
	}

	switch x.(type) {
	case *ident, *attrExpr, *indexExpr:
	default:
		return nil, p.errorf(start, "cannot assign to expression")
	}

	p.advance()

	val, err := p.expression(precLowest)
	if err != nil {
		return nil, err
	}

	return &assignStmt{pos: start.pos, target: x, x: val}, nil
}

func (p *parser) expression(prec int) (expr, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}

	for {
		t := p.cur()

		if t.kind == tokOp {
			switch t.text {
			case "(", ".", "[":
				left, err = p.postfix(left)
				if err != nil {
					return nil, err
				}

				continue
			}
		}

		if t.kind != tokOp && t.kind != tokKeyword {
			return left, nil
		}

		opPrec, ok := binaryPrec[t.text]
		if !ok || opPrec <= prec {
			return left, nil
		}

		p.advance()

		right, err := p.expression(opPrec)
		if err != nil {
			return nil, err
		}

		left = &binaryExpr{pos: t.pos, op: t.text, l: left, r: right}
	}
}

func (p *parser) prefix() (expr, error) {
	t := p.advance()

	switch t.kind {
	case tokInt:
		n, err := strconv.ParseInt(strings.ReplaceAll(t.text, "_", ""), 10, 64)
		if err != nil {
			return nil, p.errorf(t, "invalid integer %s", t.text)
		}

		return &literal{pos: t.pos, v: int(n)}, nil
	case tokFloat:
		f, err := strconv.ParseFloat(strings.ReplaceAll(t.text, "_", ""), 64)
		if err != nil {
			return nil, p.errorf(t, "invalid number %s", t.text)
		}

		return &literal{pos: t.pos, v: f}, nil
	case tokString:
		return &literal{pos: t.pos, v: t.text}, nil
	case tokIdent:
		return &ident{pos: t.pos, name: t.text}, nil
	case tokKeyword:
		return p.keywordPrefix(t)
	case tokOp:
		return p.opPrefix(t)
	}

	return nil, p.errorf(t, "unexpected %s", t)
}

func (p *parser) keywordPrefix(t token) (expr, error) {
	switch t.text {
	case "true":
		return &literal{pos: t.pos, v: true}, nil
	case "false":
		return &literal{pos: t.pos, v: false}, nil
	case "nil":
		return &literal{pos: t.pos, v: nil}, nil
	case "not":
		x, err := p.expression(precNot)
		if err != nil {
			return nil, err
		}

		return &unaryExpr{pos: t.pos, op: "not", x: x}, nil
	case "if":
		cond, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokKeyword, "then"); err != nil {
			return nil, err
		}

		then, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokKeyword, "else"); err != nil {
			return nil, err
		}

		orElse, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		return &condExpr{pos: t.pos, cond: cond, then: then, orElse: orElse}, nil
	}

	return nil, p.errorf(t, "unexpected %s", t)
}

func (p *parser) opPrefix(t token) (expr, error) {
	switch t.text {
	case "-":
		x, err := p.expression(precPrefix)
		if err != nil {
			return nil, err
		}

		return &unaryExpr{pos: t.pos, op: "-", x: x}, nil
	case "(":
		x, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokOp, ")"); err != nil {
			return nil, err
		}

		return x, nil
	case "[":
		elems, err := p.exprList("]")
		if err != nil {
			return nil, err
		}

		return &listLit{pos: t.pos, elems: elems}, nil
	case "{":
		return p.dict(t)
	}

	return nil, p.errorf(t, "unexpected %s", t)
}

func (p *parser) dict(open token) (expr, error) {
	d := &dictLit{pos: open.pos}

	for !p.cur().is(tokOp, "}") {
		k := p.advance()
		if k.kind != tokString && k.kind != tokIdent {
			return nil, p.errorf(k, "dict keys must be strings, found %s", k)
		}

		if _, err := p.expect(tokOp, ":"); err != nil {
			return nil, err
		}

		v, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		d.entries = append(d.entries, dictEntry{key: k.text, val: v})

		if !p.cur().is(tokOp, ",") {
			break
		}

		p.advance()
	}

	if _, err := p.expect(tokOp, "}"); err != nil {
		return nil, err
	}

	return d, nil
}

func (p *parser) exprList(closer string) ([]expr, error) {
	var out []expr

	for !p.cur().is(tokOp, closer) {
		x, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		out = append(out, x)

		if !p.cur().is(tokOp, ",") {
			break
		}

		p.advance()
	}

	if _, err := p.expect(tokOp, closer); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *parser) postfix(left expr) (expr, error) {
	t := p.advance()

	switch t.text {
	case ".":
		name := p.advance()
		if name.kind != tokIdent {
			return nil, p.errorf(name, "expected attribute name, found %s", name)
		}

		return &attrExpr{pos: t.pos, x: left, name: name.text}, nil
	case "[":
		idx, err := p.expression(precLowest)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokOp, "]"); err != nil {
			return nil, err
		}

		return &indexExpr{pos: t.pos, x: left, index: idx}, nil
	}

	call := &callExpr{pos: t.pos, fn: left}

	for !p.cur().is(tokOp, ")") {
		if p.cur().kind == tokIdent && p.toks[p.i+1].is(tokOp, "=") {
			name := p.advance()
			p.advance()

			v, err := p.expression(precLowest)
			if err != nil {
				return nil, err
			}

			call.kwargs = append(call.kwargs, keywordArg{name: name.text, val: v})
		} else {
			if len(call.kwargs) > 0 {
				return nil, p.errorf(p.cur(), "positional argument follows keyword argument")
			}

			v, err := p.expression(precLowest)
			if err != nil {
				return nil, err
			}

			call.args = append(call.args, v)
		}

		if !p.cur().is(tokOp, ",") {
			break
		}

		p.advance()
	}

	if _, err := p.expect(tokOp, ")"); err != nil {
		return nil, err
	}

	return call, nil
}
