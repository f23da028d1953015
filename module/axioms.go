package module

import (
	"kyfoo/ast"
	"kyfoo/token"
)

// Axioms is the builtin set every ModuleSet carries regardless of source:
// the literal-backing types and the `ptr<T>` constructor (SUPPLEMENTED
// FEATURES in SPEC_FULL.md, grounded on original_source's Axioms.cpp). It
// implements ast.AxiomsProvider so the resolve package's Primary-literal
// rule can reach it without importing this package.
type Axioms struct {
	integerType ast.Declaration
	decimalType ast.Declaration
	textType    ast.Declaration
	emptyType   ast.Declaration

	pointers map[ast.Declaration]ast.Declaration
}

// NewAxioms builds the builtin declarations. They are bare DataProductDecls
// with no Definition scope — the core never needs to look inside them, only
// to compare identities.
func NewAxioms() *Axioms {
	return &Axioms{
		integerType: builtinType("integer"),
		decimalType: builtinType("decimal"),
		textType:    builtinType("text"),
		emptyType:   builtinType("empty"),
		pointers:    make(map[ast.Declaration]ast.Declaration),
	}
}

func builtinType(name string) ast.Declaration {
	sym := ast.NewSymbol(token.New(token.Identifier, name, 0, 0))
	return ast.NewDataProductDecl(sym)
}

func (a *Axioms) IntegerType() ast.Declaration { return a.integerType }
func (a *Axioms) DecimalType() ast.Declaration { return a.decimalType }
func (a *Axioms) TextType() ast.Declaration    { return a.textType }
func (a *Axioms) EmptyType() ast.Declaration   { return a.emptyType }

// PointerType returns the canonical `ptr<elem>` declaration, memoising by
// elem's identity so two requests for `ptr<i32>` produce the same
// declaration rather than two structurally-equivalent-but-distinct ones.
func (a *Axioms) PointerType(elem ast.Declaration) ast.Declaration {
	if elem == nil {
		return nil
	}
	if p, ok := a.pointers[elem]; ok {
		return p
	}

	arg := ast.NewPrimary(token.New(token.Identifier, elem.Symbol().Name(), 0, 0))
	arg.SetDeclaration(elem)

	sym := ast.NewSymbol(token.New(token.Identifier, "ptr", 0, 0), arg)
	p := ast.NewDataProductDecl(sym)
	a.pointers[elem] = p
	return p
}
