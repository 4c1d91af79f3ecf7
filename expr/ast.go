package expr

import "github.com/flowglyph/flowglyph/value"

// Expr is a parsed expression node. The parser returns a Result[Expr] in the
// sense of spec §9: a ParseError value rather than an exception.
type Expr interface{ exprNode() }

type LiteralExpr struct{ Value value.Value }

// IdentExpr is a bare identifier, resolved against the current data scope
// (spec §4.3's item/index variables) or the root data object.
type IdentExpr struct{ Name string }

// MemberExpr is one step of a path chain: Target.Name.
type MemberExpr struct {
	Target Expr
	Name   string
}

// IndexExpr is arr[i] / obj["key"].
type IndexExpr struct {
	Target Expr
	Index  Expr
}

// BinaryExpr covers ||, &&, ??, ==, !=, <, >, <=, >=, +, -, *, /.
type BinaryExpr struct {
	Op          TokenKind
	Left, Right Expr
}

// UnaryExpr covers unary - and !.
type UnaryExpr struct {
	Op      TokenKind
	Operand Expr
}

// FilterArguments carries a filter call's arguments (spec §4.2).
type FilterArguments struct {
	Positional *value.Value
	Named      map[string]*value.Value // nil value = flag present without value
}

// FilterExpr applies a named filter to Input.
type FilterExpr struct {
	Input Expr
	Name  string
	Args  FilterArguments
}

func (LiteralExpr) exprNode() {}
func (IdentExpr) exprNode()   {}
func (MemberExpr) exprNode()  {}
func (IndexExpr) exprNode()   {}
func (BinaryExpr) exprNode()  {}
func (UnaryExpr) exprNode()   {}
func (FilterExpr) exprNode()  {}
