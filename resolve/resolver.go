// Package resolve implements spec.md §4.B/C/D/F/G: the Resolver lexical
// -lookup policy, the rewrite-fixpoint Context, and the type-switch walkers
// that resolve expressions, declarations, symbols, and scopes.  It depends
// on the pure ast package and on match (to find overload hits); it reaches
// instantiation only through the Instantiator interface in context.go,
// which the instantiate package implements.  instantiate imports resolve,
// never the other way around.
package resolve

import (
	"kyfoo/ast"
	"kyfoo/util"
)

// LookupResult is what a Resolver hands back for a name: either a SymbolSet
// (an overload bucket that must still be matched against arguments) or a
// Direct declaration (a SymbolVariable found via the enclosing declaration's
// Symbol, which never has an overload set — a variable reference is always
// a 1:1 hit).
type LookupResult struct {
	Set    *ast.SymbolSet
	Direct ast.Declaration
}

// Resolver is the lexical-lookup policy object of spec.md §4.G.
type Resolver interface {
	Module() ast.ModuleRef
	Axioms() ast.AxiomsProvider

	// InScope consults only the current scope: its own SymbolSet buckets,
	// its owning declaration's Symbol variables, and any pushed
	// supplementary symbols.
	InScope(name string) (LookupResult, bool)

	// Lookup extends outward through parent scopes and imports.
	Lookup(name string) (LookupResult, bool)
}

// scopeResolver is the standard Resolver implementation, scoped to one
// ast.Scope.
type scopeResolver struct {
	scope   *ast.Scope
	axioms  ast.AxiomsProvider
	pushedN []string
	pushed  []LookupResult
}

// NewResolver creates the standard lexical resolver for a scope.
func NewResolver(scope *ast.Scope, axioms ast.AxiomsProvider) Resolver {
	return &scopeResolver{scope: scope, axioms: axioms}
}

func (r *scopeResolver) Module() ast.ModuleRef      { return r.scope.Module }
func (r *scopeResolver) Axioms() ast.AxiomsProvider { return r.axioms }

// PushSupplementary makes an extra name resolvable in this scope's InScope;
// pushing a name that is already pushed is a no-op.  Nothing in the
// repository calls it: ResolveSymbol shares an earlier parameter's
// SymbolVariable with later ones through the failover resolver and the
// Symbol's own variable cache instead.
func (r *scopeResolver) PushSupplementary(name string, decl ast.Declaration) {
	if util.Contains(r.pushedN, name) {
		return
	}
	r.pushedN = append(r.pushedN, name)
	r.pushed = append(r.pushed, LookupResult{Direct: decl})
}

func variableInSymbol(sym *ast.Symbol, name string) (ast.Declaration, bool) {
	if sym == nil {
		return nil, false
	}
	for _, v := range sym.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

func inScopeOf(scope *ast.Scope, name string, pushedN []string, pushed []LookupResult) (LookupResult, bool) {
	if set, ok := scope.FindSymbolSet(name, false); ok && len(set.Templates) > 0 {
		return LookupResult{Set: set}, true
	}
	if set, ok := scope.FindSymbolSet(name, true); ok && len(set.Templates) > 0 {
		return LookupResult{Set: set}, true
	}
	if scope.OwningDecl != nil {
		if v, ok := variableInSymbol(scope.OwningDecl.Symbol(), name); ok {
			return LookupResult{Direct: v}, true
		}
	}
	for i, n := range pushedN {
		if n == name {
			return pushed[i], true
		}
	}
	return LookupResult{}, false
}

func (r *scopeResolver) InScope(name string) (LookupResult, bool) {
	return inScopeOf(r.scope, name, r.pushedN, r.pushed)
}

func (r *scopeResolver) Lookup(name string) (LookupResult, bool) {
	if res, ok := r.InScope(name); ok {
		return res, true
	}

	for p := r.scope.Parent; p != nil; p = p.Parent {
		if res, ok := inScopeOf(p, name, nil, nil); ok {
			return res, true
		}
	}

	for _, mod := range r.scope.Imports {
		root := mod.RootScope()
		if set, ok := root.FindSymbolSet(name, false); ok && len(set.Templates) > 0 {
			return LookupResult{Set: set}, true
		}
		if set, ok := root.FindSymbolSet(name, true); ok && len(set.Templates) > 0 {
			return LookupResult{Set: set}, true
		}
	}

	return LookupResult{}, false
}

// -----------------------------------------------------------------------------

// failoverResolver decorates a Resolver so that a Lookup miss synthesises a
// fresh SymbolVariable on owner instead of failing, per spec.md §4.G: "the
// failover variant ... additionally synthesises a new SymbolVariable on
// lookup miss, so that any dangling identifier in a parameter list becomes a
// universally-quantified parameter of that Symbol."
type failoverResolver struct {
	Resolver
	owner *ast.Symbol
}

// WithFailover wraps a Resolver so that unresolved identifiers become fresh
// pattern variables of owner instead of failing lookup.  Used exclusively
// while resolving a Symbol's own parameter expressions (spec.md §4.D).
func WithFailover(r Resolver, owner *ast.Symbol) Resolver {
	return &failoverResolver{Resolver: r, owner: owner}
}

func (r *failoverResolver) Lookup(name string) (LookupResult, bool) {
	if res, ok := r.Resolver.Lookup(name); ok {
		return res, true
	}
	v := r.owner.VariableFor(name)
	return LookupResult{Direct: v}, true
}

func (r *failoverResolver) InScope(name string) (LookupResult, bool) {
	if res, ok := r.Resolver.InScope(name); ok {
		return res, true
	}
	return r.Lookup(name)
}
