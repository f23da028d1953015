package ast

// cloneCtx is the identity map used by the two-phase deep-clone described in
// spec.md §9: phase one builds an isomorphic copy of the subtree while
// recording every allocation; phase two (runFixups) rewrites every
// non-owning back-reference discovered along the way to point at the clone
// instead of the original, once the identity map is complete. A reference
// that falls outside the cloned subgraph is left pointing at the original,
// which is the correct behaviour — it is outside this clone's lifetime.
type cloneCtx struct {
	decls  map[Declaration]Declaration
	exprs  map[Expression]Expression
	scopes map[*Scope]*Scope
	fixups []func()
}

func newCloneCtx() *cloneCtx {
	return &cloneCtx{
		decls:  make(map[Declaration]Declaration),
		exprs:  make(map[Expression]Expression),
		scopes: make(map[*Scope]*Scope),
	}
}

func (cc *cloneCtx) runFixups() {
	for _, fn := range cc.fixups {
		fn()
	}
}

// CloneDeclaration deep-clones a prototype declaration, producing a fresh,
// fully disjoint Scope/Declaration graph. No pointer inside the result
// refers into the prototype's subgraph (spec.md §8 property 5).
func CloneDeclaration(proto Declaration) Declaration {
	cc := newCloneCtx()
	nd := cloneDecl(proto, cc)
	cc.runFixups()
	return nd
}

// -----------------------------------------------------------------------------

func cloneSymbol(sym *Symbol, cc *cloneCtx) *Symbol {
	if sym == nil {
		return nil
	}

	ns := &Symbol{Identifier: sym.Identifier}
	ns.Params = make([]Expression, len(sym.Params))
	for i, p := range sym.Params {
		ns.Params[i] = cloneExpr(p, cc)
	}

	ns.Variables = make([]*SymbolVariableDecl, len(sym.Variables))
	ns.freeVarCache = make(map[string]*SymbolVariableDecl, len(sym.Variables))
	for i, v := range sym.Variables {
		nv := cloneDecl(v, cc).(*SymbolVariableDecl)
		ns.Variables[i] = nv
		ns.freeVarCache[nv.Name] = nv
	}

	return ns
}

func cloneExprSlice(in []Expression, cc *cloneCtx) []Expression {
	if in == nil {
		return nil
	}
	out := make([]Expression, len(in))
	for i, e := range in {
		out[i] = cloneExpr(e, cc)
	}
	return out
}

func cloneConstraints(dst, src Expression, cc *cloneCtx) {
	for _, c := range src.Constraints() {
		dst.AddConstraint(cloneExpr(c, cc))
	}
}

// cloneExpr clones a single expression node, registering an identity-map
// entry and a fixup for its declaration back-reference.
func cloneExpr(e Expression, cc *cloneCtx) Expression {
	if e == nil {
		return nil
	}
	if already, ok := cc.exprs[e]; ok {
		return already
	}

	var out Expression

	switch v := e.(type) {
	case *Primary:
		out = &Primary{Token: v.Token}
	case *Tuple:
		out = &Tuple{TKind: v.TKind, Open: v.Open, Close: v.Close, Elements: cloneExprSlice(v.Elements, cc)}
	case *Apply:
		out = &Apply{Elements: cloneExprSlice(v.Elements, cc)}
	case *SymbolExpr:
		ns := &SymbolExpr{Identifier: v.Identifier, Args: cloneExprSlice(v.Args, cc)}
		if v.OpenAngle != nil {
			oa := *v.OpenAngle
			ns.OpenAngle = &oa
		}
		if v.CloseAngle != nil {
			ca := *v.CloseAngle
			ns.CloseAngle = &ca
		}
		out = ns
	case *Constraint:
		out = &Constraint{Subject: cloneExpr(v.Subject, cc), Clause: cloneExpr(v.Clause, cc)}
	default:
		panic("ast: clone of unknown expression kind")
	}

	cc.exprs[e] = out
	cloneConstraints(out, e, cc)

	if orig := e.Declaration(); orig != nil {
		cc.fixups = append(cc.fixups, func() {
			if nd, ok := cc.decls[orig]; ok {
				out.SetDeclaration(nd)
			} else {
				out.SetDeclaration(orig)
			}
		})
	}

	return out
}

// cloneDecl clones a single declaration node, registering an identity-map
// entry before recursing into anything that might refer back to it (breaks
// cycles such as DataSumCtorDecl.Parent).
func cloneDecl(d Declaration, cc *cloneCtx) Declaration {
	if d == nil {
		return nil
	}
	if already, ok := cc.decls[d]; ok {
		return already
	}

	switch v := d.(type) {
	case *DataSumDecl:
		nd := &DataSumDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Definition = cloneScope(v.Definition, cc, nd)
		return nd

	case *DataSumCtorDecl:
		nd := &DataSumCtorDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Fields = make([]*ProcedureParameterDecl, len(v.Fields))
		for i, f := range v.Fields {
			nd.Fields[i] = cloneDecl(f, cc).(*ProcedureParameterDecl)
		}
		if v.Parent != nil {
			orig := v.Parent
			cc.fixups = append(cc.fixups, func() {
				if np, ok := cc.decls[orig]; ok {
					nd.Parent = np.(*DataSumDecl)
				} else {
					nd.Parent = orig
				}
			})
		}
		return nd

	case *DataProductDecl:
		nd := &DataProductDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Definition = cloneScope(v.Definition, cc, nd)
		return nd

	case *SymbolDecl:
		nd := &SymbolDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.RHS = cloneExpr(v.RHS, cc)
		return nd

	case *ProcedureDecl:
		nd := &ProcedureDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Params = make([]*ProcedureParameterDecl, len(v.Params))
		for i, p := range v.Params {
			nd.Params[i] = cloneDecl(p, cc).(*ProcedureParameterDecl)
		}
		nd.ReturnType = cloneExpr(v.ReturnType, cc)
		nd.Definition = cloneScope(v.Definition, cc, nd)
		return nd

	case *VariableDecl:
		nd := &VariableDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Constraint = cloneExpr(v.Constraint, cc)
		nd.Init = cloneExpr(v.Init, cc)
		return nd

	case *ProcedureParameterDecl:
		nd := &ProcedureParameterDecl{}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		nd.Constraint = cloneExpr(v.Constraint, cc)
		nd.Init = cloneExpr(v.Init, cc)
		return nd

	case *ImportDecl:
		nd := &ImportDecl{ModuleName: v.ModuleName, Resolved: v.Resolved}
		cc.decls[d] = nd
		nd.sym = cloneSymbol(v.sym, cc)
		return nd

	case *SymbolVariableDecl:
		nd := &SymbolVariableDecl{Name: v.Name}
		cc.decls[d] = nd
		nd.Bound = cloneExpr(v.Bound, cc)
		return nd

	default:
		panic("ast: clone of unknown declaration kind")
	}
}

// cloneScope clones a Definition scope, re-appending cloned child
// declarations to it so the clone shares a fresh, disjoint Declarations
// list (spec.md §4.I step 5's "append to the prototype's scope" applies to
// the *instance*, not to this intermediate clone of a Definition scope,
// which always belongs to newOwner).
func cloneScope(s *Scope, cc *cloneCtx, newOwner Declaration) *Scope {
	if s == nil {
		return nil
	}
	if already, ok := cc.scopes[s]; ok {
		return already
	}

	ns := NewScope(s.Parent, s.Module, newOwner)
	cc.scopes[s] = ns

	for _, child := range s.Declarations {
		ns.Append(cloneDecl(child, cc))
	}

	ns.BodyExprs = cloneExprSlice(s.BodyExprs, cc)

	return ns
}
