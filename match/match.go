// Package match implements the three relations over expressions described
// in spec.md §4.H: structural/pattern equivalence, overload compatibility,
// and value-match with binding extraction.  It depends only on ast — it
// never triggers instantiation itself (that decision belongs to whichever
// caller holds a resolve.Context, per the dependency-inversion noted in
// DESIGN.md) so that it can sit beneath both resolve and instantiate without
// creating an import cycle.
package match

import "kyfoo/ast"

// variableDecl reports whether an expression's declaration is a
// SymbolVariable, and returns it if so.
func variableDecl(e ast.Expression) (*ast.SymbolVariableDecl, bool) {
	if e == nil {
		return nil, false
	}
	sv, ok := e.Declaration().(*ast.SymbolVariableDecl)
	return sv, ok
}

// Pattern reports structural/pattern equivalence (spec.md §4.H): same shape;
// Primaries backed by a SymbolVariable are equivalent unconditionally;
// otherwise lexeme equality; Tuples require the same TupleKind and pairwise
// equivalent children.
func Pattern(a, b ast.Expression) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.ExprKind() != b.ExprKind() {
		return false
	}

	switch av := a.(type) {
	case *ast.Primary:
		bv := b.(*ast.Primary)

		_, aIsVar := variableDecl(a)
		_, bIsVar := variableDecl(b)
		if aIsVar && bIsVar {
			return true
		}

		return av.Token.Equal(bv.Token)

	case *ast.Tuple:
		bv := b.(*ast.Tuple)
		if av.TKind != bv.TKind || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Pattern(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case *ast.Apply:
		bv := b.(*ast.Apply)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Pattern(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case *ast.SymbolExpr:
		bv := b.(*ast.SymbolExpr)
		if av.Identifier.Lexeme != bv.Identifier.Lexeme || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Pattern(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true

	case *ast.Constraint:
		bv := b.(*ast.Constraint)
		return Pattern(av.Subject, bv.Subject) && Pattern(av.Clause, bv.Clause)
	}

	return false
}

// PatternList reports whether two expression lists are pairwise pattern
// equivalent (used by FindEquivalent and by the instantiator's
// memoisation check over binding sets).
func PatternList(a, b []ast.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Pattern(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SymbolEquivalent reports whether two Symbols are equivalent: equal name
// and pairwise pattern-equivalent parameter lists (spec.md §4.D).
func SymbolEquivalent(a, b *ast.Symbol) bool {
	if a.Name() != b.Name() {
		return false
	}
	return PatternList(a.Params, b.Params)
}

// Overload reports overload compatibility (spec.md §4.H): Primaries are
// equivalent when both are SymbolVariable-backed (regardless of name) or
// when both resolve to the same declaration; a Constraint matches by its
// subject only; Tuples compare pairwise.
func Overload(a, b ast.Expression) bool {
	if a == nil || b == nil {
		return a == b
	}

	if av, ok := a.(*ast.Constraint); ok {
		return Overload(av.Subject, b)
	}
	if bv, ok := b.(*ast.Constraint); ok {
		return Overload(a, bv.Subject)
	}

	if a.ExprKind() != b.ExprKind() {
		return false
	}

	switch av := a.(type) {
	case *ast.Primary:
		_, aIsVar := variableDecl(a)
		_, bIsVar := variableDecl(b)
		if aIsVar && bIsVar {
			return true
		}
		return a.Declaration() != nil && a.Declaration() == b.Declaration()

	case *ast.Tuple:
		bv := b.(*ast.Tuple)
		if av.TKind != bv.TKind || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Overload(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case *ast.Apply:
		bv := b.(*ast.Apply)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Overload(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case *ast.SymbolExpr:
		bv := b.(*ast.SymbolExpr)
		if len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Overload(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return a.Declaration() != nil && a.Declaration() == b.Declaration()
	}

	return false
}
