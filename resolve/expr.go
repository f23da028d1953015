package resolve

import (
	"kyfoo/ast"
	"kyfoo/match"
	"kyfoo/token"
)

// resolveExprOnce resolves e's children to a fixpoint and then applies e's
// own shape-specific rule exactly once (spec.md §4.B).  Any rewrite the rule
// produces is left in ctx for ResolveExpression's caller to drain.
func resolveExprOnce(ctx *Context, e ast.Expression) error {
	constraints := e.Constraints()
	for i, c := range constraints {
		r, err := ResolveExpression(ctx, c)
		if err != nil {
			return err
		}
		constraints[i] = r
	}

	switch v := e.(type) {
	case *ast.Primary:
		return resolvePrimary(ctx, v)
	case *ast.Tuple:
		return resolveTuple(ctx, v)
	case *ast.Apply:
		return resolveApply(ctx, v)
	case *ast.SymbolExpr:
		return resolveSymbolExpr(ctx, v)
	case *ast.Constraint:
		return resolveConstraint(ctx, v)
	}

	return nil
}

// resolveValue is the shared "look this name up and match it against args"
// step used by both a bare-identifier Primary (zero args) and a SymbolExpr
// (its own Args), per spec.md §4.B's "a Primary identifier resolves as a
// trivial zero-argument symbol reference."
func resolveValue(ctx *Context, at ast.Expression, name string, args []ast.Expression) (ast.Declaration, error) {
	res, ok := ctx.Resolver.Lookup(name)
	if !ok {
		ctx.Diagnostics.Error(at, "undeclared identifier `%s`", name)
		return nil, nil
	}

	if res.Direct != nil {
		if len(args) != 0 {
			ctx.Diagnostics.Error(at, "`%s` is not callable", name)
			return nil, nil
		}
		return res.Direct, nil
	}

	hit, ok := match.FindValue(res.Set, args)
	if !ok {
		// matchValue found nothing to bind; fall back to matchProcedure's
		// overload-compatibility relation before giving up (spec.md §4.B's
		// Apply rule: "Else call matchProcedure; on hit, record the
		// procedure declaration.").
		if tmpl, ok := match.FindOverload(res.Set, args); ok {
			return tmpl.Declaration, nil
		}
		ctx.Diagnostics.Error(at, "no overload of `%s` matches %d argument(s)", name, len(args))
		return nil, nil
	}

	if !hit.NeedsInstantiate {
		return hit.Declaration, nil
	}

	variables := hit.Template.Declaration.Symbol().Variables
	bindings, ok := hit.Match.LeftBindingsOrdered(variables)
	if !ok {
		// A variable on the prototype's Symbol was never bound by the match:
		// this is a structural contract violation of FindValue's own
		// invariant, not a user-facing condition.
		ctx.Diagnostics.ICE("instantiation hit for `%s` left a symbol variable unbound", name)
	}

	inst, err := ctx.Instantiator.Instantiate(ctx, hit.Template, bindings)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func resolvePrimary(ctx *Context, p *ast.Primary) error {
	switch p.Token.Kind {
	case token.Integer:
		p.SetDeclaration(ctx.Resolver.Axioms().IntegerType())
		return nil
	case token.Decimal:
		p.SetDeclaration(ctx.Resolver.Axioms().DecimalType())
		return nil
	case token.Text:
		p.SetDeclaration(ctx.Resolver.Axioms().TextType())
		return nil
	case token.Undefined:
		ctx.Diagnostics.ICE("unresolved symbol placeholder reached expression resolution")
		return nil
	case token.FreeVariable:
		// A failover resolver (active only while resolving a Symbol's own
		// parameter list, spec.md §4.G) turns a miss here into a fresh
		// SymbolVariable; outside that context a free-variable sigil has
		// nowhere to bind and is a diagnostic, not a lookup failure.
		res, ok := ctx.Resolver.Lookup(p.Token.Lexeme)
		if !ok {
			ctx.Diagnostics.Error(p, "invalid symbol variable `%s`: no symbol variable can be created here", p.Token.Lexeme)
			return nil
		}
		if res.Direct != nil {
			p.SetDeclaration(res.Direct)
			return nil
		}
		ctx.Diagnostics.Error(p, "invalid symbol variable `%s`: a free variable cannot name an overload set", p.Token.Lexeme)
		return nil
	}

	decl, err := resolveValue(ctx, p, p.Token.Lexeme, nil)
	if err != nil {
		return err
	}
	if decl != nil {
		p.SetDeclaration(decl)
	}
	return nil
}

func resolveTuple(ctx *Context, t *ast.Tuple) error {
	for i, elem := range t.Elements {
		r, err := ResolveExpression(ctx, elem)
		if err != nil {
			return err
		}
		t.Elements[i] = r
	}

	// A parenthesized singleton carries no tuple semantics of its own; it
	// collapses into its sole child (spec.md §4.B).
	if t.TKind == ast.TupleOpen && len(t.Elements) == 1 {
		ctx.Rewrite(t.Elements[0])
	}

	return nil
}

// resolveApply never resolves its own Elements directly: every branch below
// that does not report a diagnostic ends in a rewrite, and the callee element in particular must not be
// resolved as a standalone zero-argument reference before it is folded into
// the SymbolExpr that actually carries its arguments (spec.md §4.B). The
// fixpoint loop in ResolveExpression re-enters resolution on whatever this
// function rewrites to.
func resolveApply(ctx *Context, a *ast.Apply) error {
	if len(a.Elements) == 0 {
		ctx.Diagnostics.ICE("empty Apply reached expression resolution")
		return nil
	}

	if len(a.Elements) == 1 {
		ctx.Rewrite(a.Elements[0])
		return nil
	}

	// An explicit `f<T>` parse produces Apply[SymbolExpr(Undefined, T), f]:
	// rotate the trailing identifier into the placeholder's Identifier slot.
	if head, ok := a.Elements[0].(*ast.SymbolExpr); ok && head.Identifier.Kind == token.Undefined {
		idPrimary, ok := a.Elements[1].(*ast.Primary)
		if !ok {
			ctx.Diagnostics.Error(a, "expected an identifier before generic argument list")
			return nil
		}
		rewritten := ast.NewSymbolExpr(idPrimary.Token, head.Args...)
		rewritten.Args = append(rewritten.Args, a.Elements[2:]...)
		ctx.Rewrite(rewritten)
		return nil
	}

	// Plain juxtaposition `f x y` is call sugar for the symbol reference
	// `f(x, y)`, provided the head is a bare identifier.
	headPrimary, ok := a.Elements[0].(*ast.Primary)
	if !ok {
		ctx.Diagnostics.Error(a, "cannot apply a non-identifier expression to arguments")
		return nil
	}
	rewritten := ast.NewSymbolExpr(headPrimary.Token, a.Elements[1:]...)
	ctx.Rewrite(rewritten)
	return nil
}

// rotateSymbolIdentifier implements spec.md §4.B's Symbol rule for an
// Undefined identifier token: the first child rotates out to become the
// identifier, provided it is an identifier-primary; any other shape there
// — a literal, a free variable, an already-structured expression — is the
// "Symbol tuple lacks identifier" diagnostic kind (spec.md §7), since that
// is exactly the malformed-but-parseable shape the kind documents, not a
// structural impossibility.
func rotateSymbolIdentifier(ctx *Context, s *ast.SymbolExpr) bool {
	if len(s.Args) == 0 {
		ctx.Diagnostics.Error(s, "symbol tuple lacks identifier")
		return false
	}

	idPrimary, ok := s.Args[0].(*ast.Primary)
	if !ok || idPrimary.Token.Kind != token.Identifier {
		ctx.Diagnostics.Error(s, "symbol tuple lacks identifier")
		return false
	}

	s.Identifier = idPrimary.Token
	s.Args = s.Args[1:]
	return true
}

func resolveSymbolExpr(ctx *Context, s *ast.SymbolExpr) error {
	if s.Identifier.Kind == token.Undefined {
		if !rotateSymbolIdentifier(ctx, s) {
			return nil
		}
	}

	for i, arg := range s.Args {
		r, err := ResolveExpression(ctx, arg)
		if err != nil {
			return err
		}
		s.Args[i] = r
	}

	decl, err := resolveValue(ctx, s, s.Identifier.Lexeme, s.Args)
	if err != nil {
		return err
	}
	if decl != nil {
		s.SetDeclaration(decl)
	}
	return nil
}

func resolveConstraint(ctx *Context, c *ast.Constraint) error {
	subject, err := ResolveExpression(ctx, c.Subject)
	if err != nil {
		return err
	}
	c.Subject = subject

	clause, err := ResolveExpression(ctx, c.Clause)
	if err != nil {
		return err
	}
	c.Clause = clause

	return nil
}
