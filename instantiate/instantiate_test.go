package instantiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyfoo/ast"
	"kyfoo/report"
	"kyfoo/resolve"
	"kyfoo/token"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 0, 0)
}

func freeVar(name string) token.Token {
	return token.New(token.FreeVariable, name, 0, 0)
}

type stubAxioms struct{ integer, decimal, text, empty ast.Declaration }

func newStubAxioms() *stubAxioms {
	return &stubAxioms{
		integer: ast.NewDataProductDecl(ast.NewSymbol(ident("integer"))),
		decimal: ast.NewDataProductDecl(ast.NewSymbol(ident("decimal"))),
		text:    ast.NewDataProductDecl(ast.NewSymbol(ident("text"))),
		empty:   ast.NewDataProductDecl(ast.NewSymbol(ident("empty"))),
	}
}

func (a *stubAxioms) IntegerType() ast.Declaration { return a.integer }
func (a *stubAxioms) DecimalType() ast.Declaration { return a.decimal }
func (a *stubAxioms) TextType() ast.Declaration    { return a.text }
func (a *stubAxioms) EmptyType() ast.Declaration   { return a.empty }
func (a *stubAxioms) PointerType(elem ast.Declaration) ast.Declaration {
	return ast.NewDataProductDecl(ast.NewSymbol(ident("ptr"), ast.NewPrimary(ident(elem.Symbol().Name()))))
}

type stubModule struct{ root *ast.Scope }

func (m *stubModule) RootScope() *ast.Scope { return m.root }
func (m *stubModule) Name() string          { return "test" }

// TestInstantiateMonomorphizesGenericBoxOnce exercises the full path spec.md
// §4.I describes: a value match against a generic prototype's free-variable
// parameter routes through match.FindValue's NeedsInstantiate branch into
// Instantiator.Instantiate, and a second, structurally-equivalent call site
// memo-hits the same clone instead of producing a fresh one.
func TestInstantiateMonomorphizesGenericBoxOnce(t *testing.T) {
	mod := &stubModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	axioms := newStubAxioms()
	intDecl := axioms.IntegerType().(*ast.DataProductDecl)
	scope.Append(intDecl)
	scope.SymbolSetFor("integer", false).Append(intDecl)

	decDecl := axioms.DecimalType().(*ast.DataProductDecl)
	scope.Append(decDecl)
	scope.SymbolSetFor("decimal", false).Append(decDecl)

	// Box(\T) is a generic type: one free-variable parameter.
	boxSym := ast.NewSymbol(ident("Box"), ast.NewPrimary(freeVar("T")))
	boxDecl := ast.NewDataProductDecl(boxSym)
	boxDecl.Definition = ast.NewScope(scope, mod, boxDecl)
	scope.Append(boxDecl)

	r := report.NewReporter(report.LogLevelSilent)
	diag := report.NewDiagnostics(r, "test")
	inst := New()
	ctx := resolve.NewContext(diag, resolve.NewResolver(scope, axioms), inst)

	require.NoError(t, resolve.ResolveSymbol(ctx, boxSym))
	require.Len(t, boxSym.Variables, 1, "the free variable T must be discovered on the prototype's Symbol")

	set := scope.SymbolSetFor("Box", false)
	set.Append(boxDecl)

	require.Equal(t, 0, r.ErrorCount())

	call := ast.NewSymbolExpr(ident("Box"), ast.NewPrimary(ident("integer")))
	result, err := resolve.ResolveExpression(ctx, call)
	require.NoError(t, err)
	assert.Equal(t, 0, r.ErrorCount())

	se, ok := result.(*ast.SymbolExpr)
	require.True(t, ok)
	firstInstance := se.Declaration()
	require.NotNil(t, firstInstance)
	assert.NotSame(t, boxDecl, firstInstance, "the call site must bind to a fresh instantiation, not the generic prototype")
	assert.Len(t, set.Templates[0].Instantiations, 1)

	// A second, structurally-equivalent call site must memo-hit the same
	// instantiation rather than cloning again.
	call2 := ast.NewSymbolExpr(ident("Box"), ast.NewPrimary(ident("integer")))
	result2, err := resolve.ResolveExpression(ctx, call2)
	require.NoError(t, err)

	se2, ok := result2.(*ast.SymbolExpr)
	require.True(t, ok)
	assert.Same(t, firstInstance, se2.Declaration(), "structurally-equivalent bindings must memo-hit the same instantiation")
	assert.Len(t, set.Templates[0].Instantiations, 1, "memoisation must prevent a second clone")

	// A structurally-different binding produces a distinct instantiation.
	call3 := ast.NewSymbolExpr(ident("Box"), ast.NewPrimary(ident("decimal")))
	result3, err := resolve.ResolveExpression(ctx, call3)
	require.NoError(t, err)

	se3, ok := result3.(*ast.SymbolExpr)
	require.True(t, ok)
	assert.NotSame(t, firstInstance, se3.Declaration())
	assert.Len(t, set.Templates[0].Instantiations, 2)
}
