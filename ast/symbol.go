package ast

import "kyfoo/token"

// Symbol is the identifier-plus-parameters unit attached to every
// declaration except SymbolVariableDecl (spec.md §4.D).  Variables is the
// ordered list of SymbolVariableDecl children created lazily as free names
// are discovered in Params; freeVarCache lets two parameters that mention the
// same free name (eg. two uses of `\T`) share exactly one SymbolVariableDecl,
// a behaviour spec.md leaves implicit but original_source's Symbol.cpp makes
// explicit.
type Symbol struct {
	Identifier token.Token
	Params     []Expression
	Variables  []*SymbolVariableDecl

	freeVarCache map[string]*SymbolVariableDecl
}

func NewSymbol(id token.Token, params ...Expression) *Symbol {
	return &Symbol{Identifier: id, Params: params}
}

// Name is the symbol's lexeme, used as the SymbolSet bucket key.
func (s *Symbol) Name() string { return s.Identifier.Lexeme }

// VariableFor returns the SymbolVariableDecl for a free name, creating and
// caching one if this is the first time the name has been seen on this
// Symbol.  Exported for the resolve package's failover resolver, which
// synthesises a fresh pattern variable on lookup miss (spec.md §4.G).
func (s *Symbol) VariableFor(name string) *SymbolVariableDecl {
	return s.variableFor(name)
}

// variableFor is the unexported implementation shared by VariableFor.
func (s *Symbol) variableFor(name string) *SymbolVariableDecl {
	if s.freeVarCache == nil {
		s.freeVarCache = make(map[string]*SymbolVariableDecl)
	}

	if v, ok := s.freeVarCache[name]; ok {
		return v
	}

	v := NewSymbolVariableDecl(name)
	s.freeVarCache[name] = v
	s.Variables = append(s.Variables, v)
	return v
}

// HasFreeVariables is true iff any SymbolVariable on this Symbol has no
// bound expression yet.
func (s *Symbol) HasFreeVariables() bool {
	for _, v := range s.Variables {
		if v.Bound == nil {
			return true
		}
	}
	return false
}

// IsConcrete is true iff every SymbolVariable's bound expression resolves,
// through any chain of indirections, to a declaration that is not itself a
// still-free SymbolVariable.
func (s *Symbol) IsConcrete() bool {
	for _, v := range s.Variables {
		if !boundIsConcrete(v) {
			return false
		}
	}
	return true
}

func boundIsConcrete(v *SymbolVariableDecl) bool {
	if v.Bound == nil {
		return false
	}

	d := v.Bound.Declaration()
	if d == nil {
		// Not yet resolved: treat as not concrete rather than panicking; the
		// resolver will have already reported a diagnostic for the
		// underlying failure.
		return false
	}

	if sv, ok := d.(*SymbolVariableDecl); ok {
		return boundIsConcrete(sv)
	}

	return true
}
