package expr

import "github.com/flowglyph/flowglyph/value"

// Parser parses a single inline expression (no surrounding `{{ }}`).
type parser struct {
	lex *lexer
	cur Token
	src string
}

// Parse compiles src into an Expr. Returns a *ParseError on malformed input,
// per spec §9 ("parser returns Result<Expr, ParseError>").
func Parse(src string) (Expr, error) {
	p := &parser{lex: newLexer(src), src: src}
	if err := p.advance(); err != nil {
		return nil, err
	}
	e, err := p.parseNullCoalesce()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokEOF {
		return nil, newParseError("unexpected trailing input", p.cur.Pos, p.src)
	}
	return e, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) expect(k TokenKind, what string) error {
	if p.cur.Kind != k {
		return newParseError("expected "+what, p.cur.Pos, p.src)
	}
	return p.advance()
}

// Binding power 0.5: ?? (lowest of all, null-coalesce).
func (p *parser) parseNullCoalesce() (Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokQuestionQuestion {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: TokQuestionQuestion, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 1: ||
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokOrOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: TokOrOr, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 2: &&
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokAndAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: TokAndAnd, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 3: ==, !=
func (p *parser) parseEquality() (Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokEq || p.cur.Kind == TokNeq {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 4: <, >, <=, >=
func (p *parser) parseRelational() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokLt || p.cur.Kind == TokGt || p.cur.Kind == TokLte || p.cur.Kind == TokGte {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 5: +, -
func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokPlus || p.cur.Kind == TokMinus {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 6: *, /
func (p *parser) parseMultiplicative() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokStar || p.cur.Kind == TokSlash {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// Binding power 7: unary -, !. The operand is parsed through the filter
// pipe level, so filters bind tighter than unary (spec §4.2).
func (p *parser) parseUnary() (Expr, error) {
	if p.cur.Kind == TokMinus || p.cur.Kind == TokBang {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.parseFilterPipe()
}

// Binding power 8: | filter pipe, left-associative chaining (a pipeline:
// each stage feeds the next), binds tighter than arithmetic.
func (p *parser) parseFilterPipe() (Expr, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != TokIdent {
			return nil, newParseError("expected filter name", p.cur.Pos, p.src)
		}
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseFilterArgs()
		if err != nil {
			return nil, err
		}
		left = FilterExpr{Input: left, Name: name, Args: args}
	}
	return left, nil
}

func (p *parser) parseFilterArgs() (FilterArguments, error) {
	args := FilterArguments{Named: map[string]*value.Value{}}
	if p.cur.Kind == TokColon {
		if err := p.advance(); err != nil {
			return args, err
		}
		v, err := p.parseAtomValue()
		if err != nil {
			return args, err
		}
		args.Positional = &v
	}
	for p.cur.Kind == TokIdent {
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return args, err
		}
		if p.cur.Kind == TokColon {
			if err := p.advance(); err != nil {
				return args, err
			}
			v, err := p.parseAtomValue()
			if err != nil {
				return args, err
			}
			args.Named[name] = &v
		} else {
			args.Named[name] = nil
		}
	}
	return args, nil
}

// parseAtomValue parses a single literal value used as a filter argument
// (number, string, true/false/null) — filter arguments are not full
// sub-expressions per spec's grammar.
func (p *parser) parseAtomValue() (value.Value, error) {
	switch p.cur.Kind {
	case TokNumber:
		n := p.cur.Num
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		return value.Number(n), nil
	case TokString:
		s := p.cur.Text
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		return value.String(s), nil
	case TokTrue:
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		return value.Bool(true), nil
	case TokFalse:
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		return value.Bool(false), nil
	case TokNull:
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		return value.Null, nil
	case TokMinus:
		if err := p.advance(); err != nil {
			return value.Null, err
		}
		v, err := p.parseAtomValue()
		if err != nil {
			return value.Null, err
		}
		n, _ := v.NumberCoerce()
		return value.Number(-n), nil
	default:
		return value.Null, newParseError("expected literal filter argument", p.cur.Pos, p.src)
	}
}

// Binding power 9: primaries plus postfix .member and [index] chains.
func (p *parser) parsePostfix() (Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case TokDot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Kind != TokIdent {
				return nil, newParseError("expected identifier after '.'", p.cur.Pos, p.src)
			}
			name := p.cur.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
			e = MemberExpr{Target: e, Name: name}
		case TokLBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseNullCoalesce()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokRBracket, "']'"); err != nil {
				return nil, err
			}
			e = IndexExpr{Target: e, Index: idx}
		default:
			return e, nil
		}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.cur.Kind {
	case TokNumber:
		n := p.cur.Num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return LiteralExpr{Value: value.Number(n)}, nil
	case TokString:
		s := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return LiteralExpr{Value: value.String(s)}, nil
	case TokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return LiteralExpr{Value: value.Bool(true)}, nil
	case TokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return LiteralExpr{Value: value.Bool(false)}, nil
	case TokNull:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return LiteralExpr{Value: value.Null}, nil
	case TokIdent:
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return IdentExpr{Name: name}, nil
	case TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseNullCoalesce()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, newParseError("expected expression", p.cur.Pos, p.src)
	}
}
