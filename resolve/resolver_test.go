package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyfoo/ast"
	"kyfoo/token"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 0, 0)
}

type fakeAxioms struct {
	integer, decimal, text, empty ast.Declaration
}

func newFakeAxioms() *fakeAxioms {
	return &fakeAxioms{
		integer: ast.NewDataProductDecl(ast.NewSymbol(ident("integer"))),
		decimal: ast.NewDataProductDecl(ast.NewSymbol(ident("decimal"))),
		text:    ast.NewDataProductDecl(ast.NewSymbol(ident("text"))),
		empty:   ast.NewDataProductDecl(ast.NewSymbol(ident("empty"))),
	}
}

func (a *fakeAxioms) IntegerType() ast.Declaration { return a.integer }
func (a *fakeAxioms) DecimalType() ast.Declaration { return a.decimal }
func (a *fakeAxioms) TextType() ast.Declaration    { return a.text }
func (a *fakeAxioms) EmptyType() ast.Declaration   { return a.empty }
func (a *fakeAxioms) PointerType(elem ast.Declaration) ast.Declaration {
	return ast.NewDataProductDecl(ast.NewSymbol(ident("ptr"), ast.NewPrimary(ident(elem.Symbol().Name()))))
}

type fakeModule struct{ root *ast.Scope }

func (m *fakeModule) RootScope() *ast.Scope { return m.root }
func (m *fakeModule) Name() string          { return "test" }

func TestInScopeFindsOwnDeclaration(t *testing.T) {
	mod := &fakeModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	decl := ast.NewVariableDecl(ast.NewSymbol(ident("x")), nil, nil)
	scope.Append(decl)
	scope.SymbolSetFor("x", false).Append(decl)

	r := NewResolver(scope, newFakeAxioms())
	res, ok := r.InScope("x")
	require.True(t, ok)
	require.NotNil(t, res.Set)
	assert.Same(t, decl, res.Set.Templates[0].Declaration)
}

func TestLookupCrossesIntoParentScope(t *testing.T) {
	mod := &fakeModule{}
	outer := ast.NewScope(nil, mod, nil)
	mod.root = outer

	decl := ast.NewDataProductDecl(ast.NewSymbol(ident("integer")))
	outer.Append(decl)
	outer.SymbolSetFor("integer", false).Append(decl)

	inner := ast.NewScope(outer, mod, nil)

	r := NewResolver(inner, newFakeAxioms())
	_, ok := r.InScope("integer")
	assert.False(t, ok, "InScope must not see the parent")

	res, ok := r.Lookup("integer")
	require.True(t, ok)
	assert.Same(t, decl, res.Set.Templates[0].Declaration)
}

func TestFailoverResolverSynthesizesVariableOnMiss(t *testing.T) {
	mod := &fakeModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	sym := ast.NewSymbol(ident("id"))
	base := NewResolver(scope, newFakeAxioms())
	r := WithFailover(base, sym)

	res, ok := r.Lookup("T")
	require.True(t, ok)
	require.NotNil(t, res.Direct)

	v, ok := res.Direct.(*ast.SymbolVariableDecl)
	require.True(t, ok)
	assert.Equal(t, "T", v.Name)
	assert.Same(t, v, sym.VariableFor("T"), "the same free name must map to the same variable")
}

func TestInScopeFindsEnclosingSymbolVariable(t *testing.T) {
	mod := &fakeModule{}
	outer := ast.NewScope(nil, mod, nil)
	mod.root = outer

	sym := ast.NewSymbol(ident("Box"), ast.NewPrimary(token.New(token.FreeVariable, "T", 0, 0)))
	v := sym.VariableFor("T")
	owner := ast.NewDataProductDecl(sym)
	owner.Definition = ast.NewScope(outer, mod, owner)

	r := NewResolver(owner.Definition, newFakeAxioms())
	res, ok := r.InScope("T")
	require.True(t, ok)
	assert.Same(t, v, res.Direct)
}
