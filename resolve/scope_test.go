package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyfoo/ast"
	"kyfoo/report"
)

func TestResolveScopeDetectsRedefinition(t *testing.T) {
	mod := &fakeModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	first := ast.NewVariableDecl(ast.NewSymbol(ident("x")), nil, nil)
	second := ast.NewVariableDecl(ast.NewSymbol(ident("x")), nil, nil)
	scope.Append(first)
	scope.Append(second)

	r := report.NewReporter(report.LogLevelSilent)
	diag := report.NewDiagnostics(r, "test")
	ctx := NewContext(diag, NewResolver(scope, newFakeAxioms()), noInstantiator{})

	err := ResolveScope(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ErrorCount())

	set, ok := scope.FindSymbolSet("x", false)
	require.True(t, ok)
	require.Len(t, set.Templates, 1, "the redefinition must not be appended to the bucket")
	assert.Same(t, first, set.Templates[0].Declaration)
}

func TestResolveScopeAllowsDistinctOverloads(t *testing.T) {
	mod := &fakeModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	intType := ast.NewDataProductDecl(ast.NewSymbol(ident("integer")))
	scope.Append(intType)

	decType := ast.NewDataProductDecl(ast.NewSymbol(ident("decimal")))
	scope.Append(decType)

	intParam := ast.NewProcedureParameterDecl(ast.NewSymbol(ident("a"), ast.NewPrimary(ident("integer"))), nil, nil)
	first := ast.NewProcedureDecl(ast.NewSymbol(ident("f"), ast.NewPrimary(ident("integer"))), []*ast.ProcedureParameterDecl{intParam}, nil)

	decParam := ast.NewProcedureParameterDecl(ast.NewSymbol(ident("a"), ast.NewPrimary(ident("decimal"))), nil, nil)
	second := ast.NewProcedureDecl(ast.NewSymbol(ident("f"), ast.NewPrimary(ident("decimal"))), []*ast.ProcedureParameterDecl{decParam}, nil)

	scope.Append(first)
	scope.Append(second)

	r := report.NewReporter(report.LogLevelSilent)
	diag := report.NewDiagnostics(r, "test")
	ctx := NewContext(diag, NewResolver(scope, newFakeAxioms()), noInstantiator{})

	err := ResolveScope(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 0, r.ErrorCount())

	set, ok := scope.FindSymbolSet("f", true)
	require.True(t, ok)
	assert.Len(t, set.Templates, 2, "distinct parameter shapes must coexist as overloads")
}

func TestResolveScopeResolvesProcedureBodiesAfterAllPrototypes(t *testing.T) {
	mod := &fakeModule{}
	scope := ast.NewScope(nil, mod, nil)
	mod.root = scope

	intType := ast.NewDataProductDecl(ast.NewSymbol(ident("integer")))
	scope.Append(intType)

	// b calls a, declared textually after it: only legal if every prototype
	// in the scope is visible before any body resolves.
	bProc := ast.NewProcedureDecl(ast.NewSymbol(ident("b"), ast.NewPrimary(ident("integer"))), nil, nil)
	bProc.Definition = ast.NewScope(scope, mod, bProc)
	bProc.Definition.BodyExprs = []ast.Expression{
		ast.NewApply(ast.NewPrimary(ident("a")), ast.NewPrimary(ident("integer"))),
	}

	aParam := ast.NewProcedureParameterDecl(ast.NewSymbol(ident("n"), ast.NewPrimary(ident("integer"))), nil, nil)
	aProc := ast.NewProcedureDecl(ast.NewSymbol(ident("a"), ast.NewPrimary(ident("integer"))), []*ast.ProcedureParameterDecl{aParam}, nil)

	scope.Append(bProc)
	scope.Append(aProc)

	r := report.NewReporter(report.LogLevelSilent)
	diag := report.NewDiagnostics(r, "test")
	ctx := NewContext(diag, NewResolver(scope, newFakeAxioms()), noInstantiator{})

	err := ResolveScope(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 0, r.ErrorCount(), "b's forward reference to a must resolve once both prototypes are visible")

	se, ok := bProc.Definition.BodyExprs[0].(*ast.SymbolExpr)
	require.True(t, ok)
	assert.Same(t, aProc, se.Declaration())
}
