// Package ast holds the expression and declaration sum types described in
// spec.md §3-4.B/C, the Symbol/SymbolVariable pattern-variable model (§4.D),
// and the Scope/SymbolSet containers (§4.E/F).  It is deliberately a leaf
// package: resolution policy (the Resolver, the rewrite fixpoint, the
// matcher, the instantiator) lives in sibling packages that type-switch over
// these nodes, so that ast never has to import them back.
package ast

import (
	"kyfoo/report"
	"kyfoo/token"
)

// ExprKind tags the five expression shapes of spec.md §3.
type ExprKind int

const (
	KindPrimary ExprKind = iota
	KindTuple
	KindApply
	KindSymbolExpr
	KindConstraint
)

// Expression is the common interface of every expression shape.  Resolution
// rewrites expressions in place by calling SetDeclaration once a lookup
// succeeds; the declaration reference is non-owning (its lifetime is bounded
// by whichever Scope owns the pointee).
type Expression interface {
	ExprKind() ExprKind
	Constraints() []Expression
	AddConstraint(Expression)
	Declaration() Declaration
	SetDeclaration(Declaration)
	Position() *report.TextPosition
}

// exprBase is embedded by every concrete expression type.
type exprBase struct {
	constraints []Expression
	decl        Declaration
}

func (b *exprBase) Constraints() []Expression    { return b.constraints }
func (b *exprBase) AddConstraint(c Expression)   { b.constraints = append(b.constraints, c) }
func (b *exprBase) Declaration() Declaration     { return b.decl }
func (b *exprBase) SetDeclaration(d Declaration) { b.decl = d }

// -----------------------------------------------------------------------------

// Primary wraps a single token: an identifier, a free variable, a literal, or
// the Undefined placeholder used by SymbolExpr before its identifier is
// rotated in.
type Primary struct {
	exprBase
	Token token.Token
}

func NewPrimary(t token.Token) *Primary {
	return &Primary{Token: t}
}

func (p *Primary) ExprKind() ExprKind { return KindPrimary }

func (p *Primary) Position() *report.TextPosition {
	return report.FromToken(p.Token)
}

// -----------------------------------------------------------------------------

// TupleKind tags the bracket shape that produced a Tuple.
type TupleKind int

const (
	TupleOpen TupleKind = iota
	TupleOpenLeft
	TupleOpenRight
	TupleClosed
)

// Tuple is an ordered list of sub-expressions bracketed one of four ways.
// Open/Close are the literal bracket tokens, kept (per original_source's
// TupleExpression) so diagnostics can point at the bracket that opened an
// unterminated tuple.
type Tuple struct {
	exprBase
	TKind    TupleKind
	Elements []Expression
	Open     token.Token
	Close    token.Token
}

func NewTuple(kind TupleKind, open, close token.Token, elems ...Expression) *Tuple {
	if kind < TupleOpen || kind > TupleClosed {
		report.ICE("illegal tuple kind %d", kind)
	}
	return &Tuple{TKind: kind, Elements: elems, Open: open, Close: close}
}

func (t *Tuple) ExprKind() ExprKind { return KindTuple }

func (t *Tuple) Position() *report.TextPosition {
	return report.FromRange(report.FromToken(t.Open), report.FromToken(t.Close))
}

// -----------------------------------------------------------------------------

// Apply is an ordered application `f x y`; the first element is the callee.
// A single-element Apply is a construction-time artifact that resolution
// collapses to its sole element.
type Apply struct {
	exprBase
	Elements []Expression
}

func NewApply(elems ...Expression) *Apply {
	return &Apply{Elements: elems}
}

func (a *Apply) ExprKind() ExprKind { return KindApply }

func (a *Apply) Position() *report.TextPosition {
	if len(a.Elements) == 0 {
		return nil
	}
	return report.FromRange(a.Elements[0].Position(), a.Elements[len(a.Elements)-1].Position())
}

// -----------------------------------------------------------------------------

// SymbolExpr is an explicit symbol reference: an identifier (or Undefined,
// rotated in from the first argument) plus an ordered argument list.
// OpenAngle/CloseAngle are non-nil only when the reference used `<...>`
// generic-argument syntax explicitly.
type SymbolExpr struct {
	exprBase
	Identifier token.Token
	Args       []Expression
	OpenAngle  *token.Token
	CloseAngle *token.Token
}

func NewSymbolExpr(id token.Token, args ...Expression) *SymbolExpr {
	return &SymbolExpr{Identifier: id, Args: args}
}

func (s *SymbolExpr) ExprKind() ExprKind { return KindSymbolExpr }

func (s *SymbolExpr) Position() *report.TextPosition {
	start := report.FromToken(s.Identifier)
	if len(s.Args) == 0 {
		return start
	}
	return report.FromRange(start, s.Args[len(s.Args)-1].Position())
}

// -----------------------------------------------------------------------------

// Constraint pairs a subject expression with a constraint expression; both
// are required non-nil at construction (spec.md §7: a nil side is a
// programming error, not a diagnostic).  Constraints are resolved and
// traversed but, per spec.md §9's open question, never evaluated for
// satisfaction here.
type Constraint struct {
	exprBase
	Subject Expression
	Clause  Expression
}

func NewConstraint(subject, clause Expression) *Constraint {
	if subject == nil || clause == nil {
		report.ICE("constraint constructed with a nil side")
	}
	return &Constraint{Subject: subject, Clause: clause}
}

func (c *Constraint) ExprKind() ExprKind { return KindConstraint }

func (c *Constraint) Position() *report.TextPosition {
	return report.FromRange(c.Subject.Position(), c.Clause.Position())
}
