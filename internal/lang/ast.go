package lang

type (
	stmt interface{ position() Pos }
	expr interface{ position() Pos }
)

type returnStmt struct {
	pos Pos
	x   expr // nil for a bare return
}

type assignStmt struct {
	pos    Pos
	target expr
	x      expr
}

type exprStmt struct {
	pos Pos
	x   expr
}

type literal struct {
	pos Pos
	v   any
}

type ident struct {
	pos  Pos
	name string
}

type listLit struct {
	pos   Pos
	elems []expr
}

type dictEntry struct {
	key string
	val expr
}

type dictLit struct {
	pos     Pos
	entries []dictEntry
}

type attrExpr struct {
	pos  Pos
	x    expr
	name string
}

type indexExpr struct {
	pos   Pos
	x     expr
	index expr
}

type keywordArg struct {
	name string
	val  expr
}

type callExpr struct {
	pos    Pos
	fn     expr
	args   []expr
	kwargs []keywordArg
}

type unaryExpr struct {
	pos Pos
	op  string
	x   expr
}

type binaryExpr struct {
	pos  Pos
	op   string
	l, r expr
}

type condExpr struct {
	pos        Pos
	cond       expr
	then, orElse expr
}

func (s *returnStmt) position() Pos { return s.pos }
func (s *assignStmt) position() Pos { return s.pos }
func (s *exprStmt) position() Pos   { return s.pos }
func (e *literal) position() Pos    { return e.pos }
func (e *ident) position() Pos      { return e.pos }
func (e *listLit) position() Pos    { return e.pos }
func (e *dictLit) position() Pos    { return e.pos }
func (e *attrExpr) position() Pos   { return e.pos }
func (e *indexExpr) position() Pos  { return e.pos }
func (e *callExpr) position() Pos   { return e.pos }
func (e *unaryExpr) position() Pos  { return e.pos }
func (e *binaryExpr) position() Pos { return e.pos }
func (e *condExpr) position() Pos   { return e.pos }
