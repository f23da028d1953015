package resolve

import (
	"kyfoo/ast"
	"kyfoo/report"
)

// Instantiator is the narrow interface resolve needs from the instantiate
// package.  resolve defines it and instantiate implements it, so resolve
// never imports instantiate directly — instantiate is free to import resolve
// (to re-resolve a cloned body) without creating a cycle.
type Instantiator interface {
	Instantiate(ctx *Context, tmpl *ast.SymbolTemplate, bindings []ast.Expression) (ast.Declaration, error)
}

// Context is the per-resolution-pass state threaded through every resolve
// call: a Diagnostics sink, the active Resolver, the Instantiator to route
// hits through, and a single-slot rewrite outbox used by the fixpoint loop
// in ResolveExpression (spec.md §4.B).
type Context struct {
	Diagnostics  *report.Diagnostics
	Resolver     Resolver
	Instantiator Instantiator

	rewrite ast.Expression
}

// NewContext builds a resolution context for one scope.
func NewContext(diag *report.Diagnostics, r Resolver, inst Instantiator) *Context {
	return &Context{Diagnostics: diag, Resolver: r, Instantiator: inst}
}

// WithResolver returns a shallow copy of ctx scoped to a different Resolver,
// used when descending into a child scope or pushing a failover resolver.
func (ctx *Context) WithResolver(r Resolver) *Context {
	nc := *ctx
	nc.rewrite = nil
	nc.Resolver = r
	return &nc
}

// Rewrite records that the current expression under resolution should be
// replaced wholesale, per spec.md §4.B's rewrite rules (eg. collapsing a
// single-element open Tuple into its lone child).  At most one rewrite can
// be outstanding at a time; ResolveExpression drains it each iteration of
// its fixpoint loop.
func (ctx *Context) Rewrite(e ast.Expression) { ctx.rewrite = e }

func (ctx *Context) takeRewrite() (ast.Expression, bool) {
	if ctx.rewrite == nil {
		return nil, false
	}
	e := ctx.rewrite
	ctx.rewrite = nil
	return e, true
}

// maxRewriteIterations bounds the fixpoint loop. Every legal rewrite rule in
// spec.md §4.B strictly reduces the expression's shape (a Tuple collapses to
// a child, an Apply's head flattens into it), so the loop always terminates
// in practice; the bound exists purely to turn a rule-authoring bug into a
// diagnosable ICE instead of a silent hang.
const maxRewriteIterations = 64

// ResolveExpression resolves e to a fixpoint: repeatedly apply the shape
// -specific resolution rule, then splice in any pending rewrite and resolve
// again, until no rewrite is produced.
func ResolveExpression(ctx *Context, e ast.Expression) (ast.Expression, error) {
	cur := e
	for i := 0; ; i++ {
		if i >= maxRewriteIterations {
			report.ICE("rewrite fixpoint exceeded %d iterations", maxRewriteIterations)
		}

		if err := resolveExprOnce(ctx, cur); err != nil {
			return cur, err
		}

		next, rewrote := ctx.takeRewrite()
		if !rewrote {
			return cur, nil
		}
		cur = next
	}
}
