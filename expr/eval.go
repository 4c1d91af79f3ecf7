package expr

import "github.com/flowglyph/flowglyph/value"

// EvalContext bundles what Eval needs beyond the expression and scope: the
// filter registry and the active culture tag (spec §4.2's filter table is
// culture-aware).
type EvalContext struct {
	Scope    *Scope
	Filters  *Registry
	Culture  string
}

// Eval evaluates e against ctx. All evaluation errors (divide-by-zero,
// missing paths, bad filter input) are non-fatal and degrade to Null per
// spec §7 — Eval never returns an error.
func Eval(e Expr, ctx *EvalContext) value.Value {
	switch n := e.(type) {
	case LiteralExpr:
		return n.Value
	case IdentExpr:
		if ctx == nil || ctx.Scope == nil {
			return value.Null
		}
		return ctx.Scope.Resolve(n.Name)
	case MemberExpr:
		target := Eval(n.Target, ctx)
		return getMember(target, n.Name)
	case IndexExpr:
		target := Eval(n.Target, ctx)
		idx := Eval(n.Index, ctx)
		return value.Index(target, idx)
	case UnaryExpr:
		return evalUnary(n, ctx)
	case BinaryExpr:
		return evalBinary(n, ctx)
	case FilterExpr:
		return evalFilter(n, ctx)
	default:
		return value.Null
	}
}

func getMember(target value.Value, name string) value.Value {
	obj, ok := target.AsObject()
	if !ok {
		return value.Null
	}
	v, found := obj.Get(name)
	if !found {
		return value.Null
	}
	return v
}

func evalUnary(n UnaryExpr, ctx *EvalContext) value.Value {
	v := Eval(n.Operand, ctx)
	switch n.Op {
	case TokBang:
		return value.Bool(!v.Truthy())
	case TokMinus:
		f, ok := v.NumberCoerce()
		if !ok {
			return value.Null
		}
		return value.Number(-f)
	default:
		return value.Null
	}
}

func evalBinary(n BinaryExpr, ctx *EvalContext) value.Value {
	switch n.Op {
	case TokQuestionQuestion:
		l := Eval(n.Left, ctx)
		if l.IsNull() {
			return Eval(n.Right, ctx)
		}
		return l
	case TokOrOr:
		l := Eval(n.Left, ctx)
		if l.Truthy() {
			return l
		}
		return Eval(n.Right, ctx)
	case TokAndAnd:
		l := Eval(n.Left, ctx)
		if !l.Truthy() {
			return l
		}
		return Eval(n.Right, ctx)
	}

	l := Eval(n.Left, ctx)
	r := Eval(n.Right, ctx)

	switch n.Op {
	case TokEq:
		return value.Bool(value.Equal(l, r))
	case TokNeq:
		return value.Bool(!value.Equal(l, r))
	case TokLt:
		return value.Bool(value.Compare(l, r) < 0)
	case TokGt:
		return value.Bool(value.Compare(l, r) > 0)
	case TokLte:
		return value.Bool(value.Compare(l, r) <= 0)
	case TokGte:
		return value.Bool(value.Compare(l, r) >= 0)
	case TokPlus:
		return evalPlus(l, r)
	case TokMinus:
		return evalArith(l, r, func(a, b float64) float64 { return a - b })
	case TokStar:
		return evalArith(l, r, func(a, b float64) float64 { return a * b })
	case TokSlash:
		lf, lok := l.NumberCoerce()
		rf, rok := r.NumberCoerce()
		if !lok || !rok || rf == 0 {
			return value.Null
		}
		return value.Number(lf / rf)
	default:
		return value.Null
	}
}

// evalPlus implements spec §4.2: "3"+"4"="34" if both sides are explicit
// strings; otherwise operands are numerified ("3"+4=7).
func evalPlus(l, r value.Value) value.Value {
	_, lIsStr := l.AsString()
	_, rIsStr := r.AsString()
	if lIsStr && rIsStr {
		ls, _ := l.AsString()
		rs, _ := r.AsString()
		return value.String(ls + rs)
	}
	return evalArith(l, r, func(a, b float64) float64 { return a + b })
}

func evalArith(l, r value.Value, op func(a, b float64) float64) value.Value {
	lf, lok := l.NumberCoerce()
	rf, rok := r.NumberCoerce()
	if !lok || !rok {
		return value.Null
	}
	return value.Number(op(lf, rf))
}

func evalFilter(n FilterExpr, ctx *EvalContext) value.Value {
	input := Eval(n.Input, ctx)
	if ctx == nil || ctx.Filters == nil {
		return value.Null
	}
	fn, ok := ctx.Filters.Lookup(n.Name)
	if !ok {
		return value.Null
	}
	culture := ""
	if ctx != nil {
		culture = ctx.Culture
	}
	return fn(input, n.Args, culture)
}
