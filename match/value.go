package match

import "kyfoo/ast"

// ValueMatch is the result of a successful MatchValue: Left records every
// prototype SymbolVariable bound during the match (these drive
// instantiation); Right records every argument-side SymbolVariable bound
// against a concrete prototype expression.
// Per spec.md §9's open question, a non-empty Right map means the caller
// should return the prototype as-is without instantiating — the argument
// itself is still polymorphic.
type ValueMatch struct {
	Left  map[*ast.SymbolVariableDecl]ast.Expression
	Right map[*ast.SymbolVariableDecl]ast.Expression
}

func newValueMatch() *ValueMatch {
	return &ValueMatch{
		Left:  make(map[*ast.SymbolVariableDecl]ast.Expression),
		Right: make(map[*ast.SymbolVariableDecl]ast.Expression),
	}
}

// LeftBindingsOrdered returns the left bindings in the order the
// prototype's Symbol declares its variables, which is the order
// resolve.BindVariables expects.
func (vm *ValueMatch) LeftBindingsOrdered(variables []*ast.SymbolVariableDecl) ([]ast.Expression, bool) {
	out := make([]ast.Expression, len(variables))
	for i, v := range variables {
		e, ok := vm.Left[v]
		if !ok {
			return nil, false
		}
		out[i] = e
	}
	return out, true
}

// MatchValue walks a prototype's parameter list against a call's argument
// list, extracting bindings as it goes.  A binding conflict — the same
// SymbolVariable bound to two structurally non-equivalent expressions — is a
// match failure, not a fatal error, matching spec.md §4.H.
func MatchValue(params, args []ast.Expression) (*ValueMatch, bool) {
	if len(params) != len(args) {
		return nil, false
	}

	vm := newValueMatch()
	for i := range params {
		if !matchOne(params[i], args[i], vm) {
			return nil, false
		}
	}
	return vm, true
}

func matchOne(p, a ast.Expression, vm *ValueMatch) bool {
	if p == nil || a == nil {
		return p == a
	}

	// Constraints are only ever peeled on the parameter (left) side: the
	// constraint clause is ignored for structural matching purposes (its
	// satisfaction is not evaluated here, per spec.md §9).
	if pc, ok := p.(*ast.Constraint); ok {
		return matchOne(pc.Subject, a, vm)
	}

	if pv, ok := variableDecl(p); ok {
		if existing, bound := vm.Left[pv]; bound {
			return Pattern(existing, a)
		}
		vm.Left[pv] = a
		return true
	}

	if av, ok := variableDecl(a); ok {
		if existing, bound := vm.Right[av]; bound {
			return Pattern(existing, p)
		}
		vm.Right[av] = p
		return true
	}

	if p.ExprKind() != a.ExprKind() {
		return false
	}

	switch pv := p.(type) {
	case *ast.Primary:
		av := a.(*ast.Primary)
		if p.Declaration() != nil && a.Declaration() != nil {
			return p.Declaration() == a.Declaration()
		}
		return pv.Token.Equal(av.Token)

	case *ast.Tuple:
		av := a.(*ast.Tuple)
		if pv.TKind != av.TKind || len(pv.Elements) != len(av.Elements) {
			return false
		}
		for i := range pv.Elements {
			if !matchOne(pv.Elements[i], av.Elements[i], vm) {
				return false
			}
		}
		return true

	case *ast.Apply:
		av := a.(*ast.Apply)
		if len(pv.Elements) != len(av.Elements) {
			return false
		}
		for i := range pv.Elements {
			if !matchOne(pv.Elements[i], av.Elements[i], vm) {
				return false
			}
		}
		return true

	case *ast.SymbolExpr:
		av := a.(*ast.SymbolExpr)
		if len(pv.Args) != len(av.Args) {
			return false
		}
		for i := range pv.Args {
			if !matchOne(pv.Args[i], av.Args[i], vm) {
				return false
			}
		}
		if p.Declaration() != nil && a.Declaration() != nil {
			return p.Declaration() == a.Declaration()
		}
		return pv.Identifier.Lexeme == av.Identifier.Lexeme
	}

	return false
}

// -----------------------------------------------------------------------------

// Hit describes the outcome of searching a SymbolSet for a value match.
type Hit struct {
	Template *ast.SymbolTemplate
	Match    *ValueMatch

	// NeedsInstantiate is true when the match produced no right-side
	// bindings and either the prototype is not already concrete or the
	// match produced left bindings: the caller must route through the
	// instantiator, and Declaration is left nil.
	NeedsInstantiate bool

	// Declaration is populated directly when no instantiation is required:
	// either the prototype is already concrete with no bindings to apply,
	// or the match produced only right-side bindings (open question,
	// spec.md §9 — the prototype itself is returned unmonomorphised).
	Declaration ast.Declaration
}

// FindValue scans a SymbolSet's prototypes in insertion order and returns
// the first one whose parameter list value-matches args (spec.md §4.E's tie
// -break: "first prototype in insertion order wins").
func FindValue(set *ast.SymbolSet, args []ast.Expression) (*Hit, bool) {
	for _, tmpl := range set.Templates {
		vm, ok := MatchValue(tmpl.ParamList(), args)
		if !ok {
			continue
		}

		hit := &Hit{Template: tmpl, Match: vm}

		if len(vm.Right) > 0 {
			hit.Declaration = tmpl.Declaration
			return hit, true
		}

		if tmpl.Declaration.Symbol().IsConcrete() && len(vm.Left) == 0 {
			hit.Declaration = tmpl.Declaration
			return hit, true
		}

		hit.NeedsInstantiate = true
		return hit, true
	}

	return nil, false
}

// FindOverload scans a SymbolSet's prototypes for one whose parameter list
// is pairwise overload-compatible with args (spec.md §4.B's `matchProcedure`
// fallback, tried once FindValue reports no hit). Unlike FindValue it
// extracts no bindings and never asks for instantiation: a hit is returned
// directly. A SymbolVariable-backed prototype parameter only matches an
// argument that is itself SymbolVariable-backed.
func FindOverload(set *ast.SymbolSet, args []ast.Expression) (*ast.SymbolTemplate, bool) {
	for _, tmpl := range set.Templates {
		params := tmpl.ParamList()
		if len(params) != len(args) {
			continue
		}

		match := true
		for i := range params {
			if !Overload(params[i], args[i]) {
				match = false
				break
			}
		}
		if match {
			return tmpl, true
		}
	}

	return nil, false
}

// FindEquivalent scans a SymbolSet for a prototype whose parameter list is
// pattern-equivalent to params, used to detect duplicate definitions and to
// look declarations up by structure (spec.md §4.E).
func FindEquivalent(set *ast.SymbolSet, params []ast.Expression) (ast.Declaration, bool) {
	for _, tmpl := range set.Templates {
		if PatternList(tmpl.ParamList(), params) {
			return tmpl.Declaration, true
		}
	}
	return nil, false
}
