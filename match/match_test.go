package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kyfoo/ast"
	"kyfoo/token"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 0, 0)
}

func freeVar(name string) token.Token {
	return token.New(token.FreeVariable, name, 0, 0)
}

func TestPatternIdenticalLexemesEquivalent(t *testing.T) {
	a := ast.NewPrimary(ident("integer"))
	b := ast.NewPrimary(ident("integer"))
	assert.True(t, Pattern(a, b))
}

func TestPatternDifferentLexemesNotEquivalent(t *testing.T) {
	a := ast.NewPrimary(ident("integer"))
	b := ast.NewPrimary(ident("decimal"))
	assert.False(t, Pattern(a, b))
}

func TestPatternTwoSymbolVariablesAlwaysEquivalent(t *testing.T) {
	sym := ast.NewSymbol(ident("f"))
	v1 := sym.VariableFor("T")
	v2 := sym.VariableFor("U")

	a := ast.NewPrimary(freeVar("T"))
	a.SetDeclaration(v1)
	b := ast.NewPrimary(freeVar("U"))
	b.SetDeclaration(v2)

	assert.True(t, Pattern(a, b), "two distinct SymbolVariables are still pattern-equivalent")
}

func TestOverloadRequiresSameDeclarationWhenConcrete(t *testing.T) {
	declA := ast.NewDataProductDecl(ast.NewSymbol(ident("integer")))
	declB := ast.NewDataProductDecl(ast.NewSymbol(ident("decimal")))

	a := ast.NewPrimary(ident("integer"))
	a.SetDeclaration(declA)
	b := ast.NewPrimary(ident("integer"))
	b.SetDeclaration(declB)

	assert.False(t, Overload(a, b), "same lexeme but different declarations must not overload-match")
}

func TestOverloadPeelsConstraintToSubject(t *testing.T) {
	decl := ast.NewDataProductDecl(ast.NewSymbol(ident("integer")))
	subject := ast.NewPrimary(freeVar("x"))
	subject.SetDeclaration(decl)
	clause := ast.NewPrimary(ident("integer"))
	clause.SetDeclaration(decl)
	constraint := ast.NewConstraint(subject, clause)

	plain := ast.NewPrimary(freeVar("y"))
	plain.SetDeclaration(decl)

	assert.True(t, Overload(constraint, plain))
}

func TestSymbolEquivalentRequiresSameNameAndParams(t *testing.T) {
	pa := ast.NewPrimary(freeVar("T"))
	a := ast.NewSymbol(ident("f"), pa)
	pa.SetDeclaration(a.VariableFor("T"))
	pb := ast.NewPrimary(freeVar("U"))
	b := ast.NewSymbol(ident("f"), pb)
	pb.SetDeclaration(b.VariableFor("U"))
	pc := ast.NewPrimary(freeVar("T"))
	c := ast.NewSymbol(ident("g"), pc)
	pc.SetDeclaration(c.VariableFor("T"))

	assert.True(t, SymbolEquivalent(a, b))
	assert.False(t, SymbolEquivalent(a, c))
}
