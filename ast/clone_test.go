package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyfoo/token"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 0, 0)
}

func freeVar(name string) token.Token {
	return token.New(token.FreeVariable, name, 0, 0)
}

func TestCloneDeclarationProducesDisjointGraph(t *testing.T) {
	sumSym := NewSymbol(ident("Tree"), NewPrimary(freeVar("T")))
	sum := NewDataSumDecl(sumSym)
	sum.Definition = NewScope(nil, nil, sum)

	ctorSym := NewSymbol(ident("Empty"))
	ctor := NewDataSumCtorDecl(ctorSym, sum)
	sum.Definition.Append(ctor)

	clone := CloneDeclaration(sum).(*DataSumDecl)

	require.NotSame(t, sum, clone)
	require.NotSame(t, sum.Definition, clone.Definition)
	assert.Equal(t, len(sum.Definition.Declarations), len(clone.Definition.Declarations))

	clonedCtor := clone.Definition.Declarations[0].(*DataSumCtorDecl)
	assert.NotSame(t, ctor, clonedCtor)
	assert.Same(t, clone, clonedCtor.Parent, "clone's ctor must point back at the clone, not the prototype")
}

func TestCloneDeclarationLeavesExternalReferencesAlone(t *testing.T) {
	builtin := NewDataProductDecl(NewSymbol(ident("integer")))

	sym := NewSymbol(ident("Box"))
	variable := NewVariableDecl(sym, nil, nil)
	primary := NewPrimary(ident("integer"))
	primary.SetDeclaration(builtin)
	variable.Constraint = primary

	clone := CloneDeclaration(variable).(*VariableDecl)
	assert.Same(t, builtin, clone.Constraint.Declaration(), "a reference outside the cloned subgraph must survive untouched")
}

func TestCloneSymbolVariableBindingSurvives(t *testing.T) {
	sym := NewSymbol(ident("Pair"), NewPrimary(freeVar("T")))
	decl := NewSymbolDecl(sym, NewPrimary(ident("unit")))

	v := sym.VariableFor("T")
	v.Bound = NewPrimary(ident("integer"))

	clone := CloneDeclaration(decl).(*SymbolDecl)
	clonedVar := clone.Symbol().Variables[0]
	assert.NotSame(t, v, clonedVar)
	require.NotNil(t, clonedVar.Bound)
	assert.Equal(t, "integer", clonedVar.Bound.(*Primary).Token.Lexeme)

	assert.Same(t, clonedVar, clone.Symbol().VariableFor("T"),
		"a cloned Symbol's freeVarCache must be rebuilt so re-resolving its parameters reuses the already-bound clone instead of minting a fresh, unbound variable")
}
