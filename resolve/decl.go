package resolve

import "kyfoo/ast"

// ResolveDeclaration resolves a declaration's own Symbol and expressions,
// recursing into any nested Definition scope (spec.md §4.C).  A
// ProcedureDecl is the one exception: only its prototype (Symbol, Params,
// ReturnType) resolves here — its body resolves in a second pass, once every
// sibling prototype in the enclosing scope is visible, via
// ResolveProcedureBody. This lets two mutually-recursive procedures overload
// -resolve calls to each other regardless of declaration order.
func ResolveDeclaration(ctx *Context, d ast.Declaration) error {
	switch v := d.(type) {
	case *ast.DataSumDecl:
		if err := ResolveSymbol(ctx, v.Symbol()); err != nil {
			return err
		}
		if v.Definition == nil {
			return nil
		}
		return ResolveScope(childContext(ctx, v.Definition), v.Definition)

	case *ast.DataSumCtorDecl:
		if err := ResolveSymbol(ctx, v.Symbol()); err != nil {
			return err
		}
		for _, f := range v.Fields {
			if err := resolveParameter(ctx, f); err != nil {
				return err
			}
		}
		return nil

	case *ast.DataProductDecl:
		if err := ResolveSymbol(ctx, v.Symbol()); err != nil {
			return err
		}
		if v.Definition == nil {
			return nil
		}
		return ResolveScope(childContext(ctx, v.Definition), v.Definition)

	case *ast.SymbolDecl:
		if err := ResolveSymbol(ctx, v.Symbol()); err != nil {
			return err
		}
		rhs, err := ResolveExpression(ctx, v.RHS)
		if err != nil {
			return err
		}
		v.RHS = rhs
		return nil

	case *ast.ProcedureDecl:
		return resolveProcedurePrototype(ctx, v)

	case *ast.VariableDecl:
		if err := ResolveSymbol(ctx, v.Symbol()); err != nil {
			return err
		}
		if v.Constraint != nil {
			r, err := ResolveExpression(ctx, v.Constraint)
			if err != nil {
				return err
			}
			v.Constraint = r
			checkTypePosition(ctx, r)
		}
		if v.Init != nil {
			r, err := ResolveExpression(ctx, v.Init)
			if err != nil {
				return err
			}
			v.Init = r
		}
		return nil

	case *ast.ProcedureParameterDecl:
		return resolveParameter(ctx, v)

	case *ast.ImportDecl:
		// Import-target resolution (locating the named module and registering
		// it on the enclosing scope) is a ModuleSet-level concern, driven from
		// the module package once every module's source is loaded; nothing
		// about an ImportDecl's own Symbol needs resolving here.
		return nil
	}

	return nil
}

func resolveParameter(ctx *Context, p *ast.ProcedureParameterDecl) error {
	if err := ResolveSymbol(ctx, p.Symbol()); err != nil {
		return err
	}
	if p.Constraint != nil {
		r, err := ResolveExpression(ctx, p.Constraint)
		if err != nil {
			return err
		}
		p.Constraint = r
		checkTypePosition(ctx, r)
	}
	if p.Init != nil {
		r, err := ResolveExpression(ctx, p.Init)
		if err != nil {
			return err
		}
		p.Init = r
	}
	return nil
}

func resolveProcedurePrototype(ctx *Context, p *ast.ProcedureDecl) error {
	if err := ResolveSymbol(ctx, p.Symbol()); err != nil {
		return err
	}
	for _, param := range p.Params {
		if err := resolveParameter(ctx, param); err != nil {
			return err
		}
	}
	if p.ReturnType != nil {
		r, err := ResolveExpression(ctx, p.ReturnType)
		if err != nil {
			return err
		}
		p.ReturnType = r
		checkTypePosition(ctx, r)
	}
	return nil
}

// checkTypePosition reports spec.md §7's "Not a type" diagnostic kind: a
// type-position expression (a variable's or parameter's constraint, a
// procedure's return type) that resolved to a declaration which isn't one
// of the kinds that can stand for a type. A SymbolVariable is accepted
// here too — it may still be an open pattern parameter standing in for
// whatever type its caller eventually binds.
func checkTypePosition(ctx *Context, e ast.Expression) {
	if e == nil {
		return
	}
	decl := e.Declaration()
	if decl == nil {
		return
	}

	switch decl.DeclKind() {
	case ast.KindDataSum, ast.KindDataProduct, ast.KindSymbolDecl, ast.KindSymbolVariable:
		return
	}
	ctx.Diagnostics.Error(e, "`%s` is not a type", decl.Symbol().Name())
}

// ResolveProcedureBody resolves a procedure's Definition scope (its local
// declarations and BodyExprs), the second phase of the §4.C split.
func ResolveProcedureBody(ctx *Context, p *ast.ProcedureDecl) error {
	if p.Definition == nil {
		return nil
	}

	bodyCtx := childContext(ctx, p.Definition)
	if err := ResolveScope(bodyCtx, p.Definition); err != nil {
		return err
	}

	for i, e := range p.Definition.BodyExprs {
		r, err := ResolveExpression(bodyCtx, e)
		if err != nil {
			return err
		}
		p.Definition.BodyExprs[i] = r
	}
	return nil
}

// childContext builds a Context scoped to a nested Scope's own Resolver,
// inheriting diagnostics and the instantiator.
func childContext(ctx *Context, scope *ast.Scope) *Context {
	return ctx.WithResolver(NewResolver(scope, ctx.Resolver.Axioms()))
}
