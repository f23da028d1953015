// Package instantiate implements spec.md §4.I: turning a SymbolTemplate hit
// with a left-binding set into a concrete, memoised Declaration clone. It
// implements resolve.Instantiator rather than being called by name from
// resolve, which is what keeps the package graph acyclic: resolve defines
// the interface and only instantiate imports resolve back, never the other
// way around.
package instantiate

import (
	"kyfoo/ast"
	"kyfoo/match"
	"kyfoo/resolve"

	"github.com/google/uuid"
)

// Instantiator is the concrete resolve.Instantiator. It carries nothing of
// its own — every piece of state it needs (the template, the diagnostics
// sink, the axioms) arrives through the call itself — so the zero value is
// ready to use.
type Instantiator struct{}

// New returns an Instantiator ready to be wired into a resolve.Context.
func New() *Instantiator { return &Instantiator{} }

// Instantiate implements resolve.Instantiator.
func (inst *Instantiator) Instantiate(ctx *resolve.Context, tmpl *ast.SymbolTemplate, bindings []ast.Expression) (ast.Declaration, error) {
	if clone, ok := lookupMemo(tmpl, bindings); ok {
		return clone, nil
	}

	clone := ast.CloneDeclaration(tmpl.Declaration)
	resolve.BindVariables(clone.Symbol(), bindings)

	protoScope := tmpl.Declaration.Scope()
	instCtx := ctx.WithResolver(resolve.NewResolver(protoScope, ctx.Resolver.Axioms()))

	if err := resolve.ResolveDeclaration(instCtx, clone); err != nil {
		return nil, err
	}
	if p, ok := clone.(*ast.ProcedureDecl); ok {
		if err := resolve.ResolveProcedureBody(instCtx, p); err != nil {
			return nil, err
		}
	}

	clone.SetScope(protoScope)
	protoScope.Declarations = append(protoScope.Declarations, clone)

	tmpl.RecordInstantiation(bindings, clone, uuid.New())
	return clone, nil
}

// lookupMemo scans a template's prior instantiations for one whose binding
// set is pattern-equivalent to bindings, preserving the "at most one
// instantiation per equivalent binding set" invariant of spec.md §4.I.
func lookupMemo(tmpl *ast.SymbolTemplate, bindings []ast.Expression) (ast.Declaration, bool) {
	for i, existing := range tmpl.InstanceBindings {
		if match.PatternList(existing, bindings) {
			return tmpl.Instantiations[i], true
		}
	}
	return nil, false
}
