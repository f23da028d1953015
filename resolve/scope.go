package resolve

import (
	"kyfoo/ast"
	"kyfoo/match"
	"kyfoo/report"
)

// declLocatable wraps a Declaration so diagnostics can point at its defining
// identifier (Declaration itself carries no Position method — only
// Expression does — since a declaration's "position" is really its Symbol's
// identifier token).
type declLocatable struct{ d ast.Declaration }

func (dl declLocatable) Position() *report.TextPosition {
	if dl.d == nil || dl.d.Symbol() == nil {
		return nil
	}
	return report.FromToken(dl.d.Symbol().Identifier)
}

func declAt(d ast.Declaration) report.Locatable { return declLocatable{d: d} }

// ResolveScope resolves every declaration directly owned by scope, in two
// passes (spec.md §4.F): first every declaration's prototype (for a
// ProcedureDecl, that excludes its body), inserting each into the scope's
// SymbolSet index and reporting a redefinition diagnostic on a
// pattern-equivalent clash; then, once every sibling prototype is visible,
// every procedure's body. The split lets mutually recursive procedures call
// each other regardless of declaration order.
func ResolveScope(ctx *Context, scope *ast.Scope) error {
	var procedures []*ast.ProcedureDecl

	for _, decl := range scope.Declarations {
		if err := ResolveDeclaration(ctx, decl); err != nil {
			return err
		}

		if decl.Symbol() == nil {
			continue
		}

		name := decl.Symbol().Name()
		isProcedure := decl.DeclKind() == ast.KindProcedure
		set := scope.SymbolSetFor(name, isProcedure)

		if existing, ok := match.FindEquivalent(set, decl.Symbol().Params); ok {
			ctx.Diagnostics.Error(declAt(decl), "redefinition of `%s`", name).
				See(declAt(existing), "first defined here")
			continue
		}

		set.Append(decl)

		if p, ok := decl.(*ast.ProcedureDecl); ok {
			procedures = append(procedures, p)
		}
	}

	for _, p := range procedures {
		if err := ResolveProcedureBody(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
