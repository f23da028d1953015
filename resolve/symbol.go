package resolve

import (
	"kyfoo/ast"
	"kyfoo/report"
)

// ResolveSymbol resolves every parameter expression of sym against a
// failover resolver scoped to sym itself (spec.md §4.D/G): a free identifier
// that no enclosing scope can explain becomes a new SymbolVariable on sym
// rather than a diagnostic, since a bare name in a parameter list is exactly
// how a pattern variable is introduced.
func ResolveSymbol(ctx *Context, sym *ast.Symbol) error {
	inner := ctx.WithResolver(WithFailover(ctx.Resolver, sym))
	for i, p := range sym.Params {
		r, err := ResolveExpression(inner, p)
		if err != nil {
			return err
		}
		sym.Params[i] = r
	}
	return nil
}

// BindVariables binds sym's SymbolVariables, in declaration order, to the
// expressions supplied by a successful value match (spec.md §4.D/I step 3).
// len(bindings) must equal len(sym.Variables); the instantiate package passes
// on the bindings resolveValue derived with
// Hit.Match.LeftBindingsOrdered over the prototype's Variables, which the
// clone's Variables mirror one for one.  Binding a variable that is already
// bound is a structural contract violation and raises an ICE.
func BindVariables(sym *ast.Symbol, bindings []ast.Expression) {
	for i, v := range sym.Variables {
		if v.Bound != nil {
			report.ICE("symbol variable `%s` bound twice", v.Name)
		}
		v.Bound = bindings[i]
	}
}
