package ast

// DeclKind tags the declaration kinds enumerated in spec.md §3.
type DeclKind int

const (
	KindDataSum DeclKind = iota
	KindDataSumCtor
	KindDataProduct
	KindSymbolDecl
	KindProcedure
	KindVariable
	KindProcedureParameter
	KindImport
	KindSymbolVariable
)

// ModuleRef is the narrow interface ast needs from a Module so that Scope
// can carry a back-reference without importing the module package (which
// itself owns a Scope and would otherwise form an import cycle).
type ModuleRef interface {
	RootScope() *Scope
	Name() string
}

// Declaration is the common interface of every declaration kind.  Each
// declaration except SymbolVariableDecl (whose Symbol is nil) owns a Symbol, carries a non-owning back-reference to its
// containing Scope, and exposes an opaque custom-data slot a code-generation
// back end may use (spec.md §1, §6) — kyfoo's core never populates it.
type Declaration interface {
	DeclKind() DeclKind
	Symbol() *Symbol
	Scope() *Scope
	SetScope(*Scope)
	CustomData() interface{}
	SetCustomData(interface{})
}

// declBase is embedded by every concrete declaration type.
type declBase struct {
	sym    *Symbol
	scope  *Scope
	custom interface{}
}

func (b *declBase) Symbol() *Symbol             { return b.sym }
func (b *declBase) Scope() *Scope               { return b.scope }
func (b *declBase) SetScope(s *Scope)           { b.scope = s }
func (b *declBase) CustomData() interface{}     { return b.custom }
func (b *declBase) SetCustomData(v interface{}) { b.custom = v }

func newDeclBase(sym *Symbol) declBase {
	return declBase{sym: sym}
}

// -----------------------------------------------------------------------------

// DataSumDecl is a sum-of-constructors type declaration (`Tree<\T>`).  Its
// Definition scope owns the DataSumCtorDecl children.
type DataSumDecl struct {
	declBase
	Definition *Scope
}

func NewDataSumDecl(sym *Symbol) *DataSumDecl {
	return &DataSumDecl{declBase: newDeclBase(sym)}
}

func (d *DataSumDecl) DeclKind() DeclKind { return KindDataSum }

// -----------------------------------------------------------------------------

// DataSumCtorDecl is one constructor of a DataSumDecl (`Empty`, `Node(...)`).
type DataSumCtorDecl struct {
	declBase
	Parent *DataSumDecl
	Fields []*ProcedureParameterDecl
}

func NewDataSumCtorDecl(sym *Symbol, parent *DataSumDecl) *DataSumCtorDecl {
	return &DataSumCtorDecl{declBase: newDeclBase(sym), Parent: parent}
}

func (d *DataSumCtorDecl) DeclKind() DeclKind { return KindDataSumCtor }

// -----------------------------------------------------------------------------

// DataProductDecl is a product ("struct"-shaped) type declaration.
type DataProductDecl struct {
	declBase
	Definition *Scope
}

func NewDataProductDecl(sym *Symbol) *DataProductDecl {
	return &DataProductDecl{declBase: newDeclBase(sym)}
}

func (d *DataProductDecl) DeclKind() DeclKind { return KindDataProduct }

// -----------------------------------------------------------------------------

// SymbolDecl is a plain symbol alias (`i32 = integer 32`).
type SymbolDecl struct {
	declBase
	RHS Expression
}

func NewSymbolDecl(sym *Symbol, rhs Expression) *SymbolDecl {
	return &SymbolDecl{declBase: newDeclBase(sym), RHS: rhs}
}

func (d *SymbolDecl) DeclKind() DeclKind { return KindSymbolDecl }

// -----------------------------------------------------------------------------

// ProcedureDecl is a procedure definition.  Its prototype (parameter
// constraints and return-type expression) resolves independently of its
// body, per spec.md §4.C's two-phase contract, so that overload lookup can
// compare prototype shapes without needing a fully resolved body.
type ProcedureDecl struct {
	declBase
	Params     []*ProcedureParameterDecl
	ReturnType Expression
	Definition *Scope
}

func NewProcedureDecl(sym *Symbol, params []*ProcedureParameterDecl, returnType Expression) *ProcedureDecl {
	return &ProcedureDecl{declBase: newDeclBase(sym), Params: params, ReturnType: returnType}
}

func (d *ProcedureDecl) DeclKind() DeclKind { return KindProcedure }

// -----------------------------------------------------------------------------

// VariableDecl is a plain value binding with an optional constraint and
// initializer.
type VariableDecl struct {
	declBase
	Constraint Expression
	Init       Expression
}

func NewVariableDecl(sym *Symbol, constraint, init Expression) *VariableDecl {
	return &VariableDecl{declBase: newDeclBase(sym), Constraint: constraint, Init: init}
}

func (d *VariableDecl) DeclKind() DeclKind { return KindVariable }

// -----------------------------------------------------------------------------

// ProcedureParameterDecl is one formal parameter of a ProcedureDecl, or one
// field of a DataSumCtorDecl.
type ProcedureParameterDecl struct {
	declBase
	Constraint Expression
	Init       Expression
}

func NewProcedureParameterDecl(sym *Symbol, constraint, init Expression) *ProcedureParameterDecl {
	return &ProcedureParameterDecl{declBase: newDeclBase(sym), Constraint: constraint, Init: init}
}

func (d *ProcedureParameterDecl) DeclKind() DeclKind { return KindProcedureParameter }

// -----------------------------------------------------------------------------

// ImportDecl requests that the owning ModuleSet load/locate a named module.
type ImportDecl struct {
	declBase
	ModuleName string
	Resolved   ModuleRef
}

func NewImportDecl(sym *Symbol, moduleName string) *ImportDecl {
	return &ImportDecl{declBase: newDeclBase(sym), ModuleName: moduleName}
}

func (d *ImportDecl) DeclKind() DeclKind { return KindImport }

// -----------------------------------------------------------------------------

// SymbolVariableDecl is a terminal pattern variable introduced by a free
// identifier inside a Symbol's parameter list.  Bound is the expression
// currently bound to the variable, or nil while it remains free.
type SymbolVariableDecl struct {
	declBase
	Name  string
	Bound Expression
}

func NewSymbolVariableDecl(name string) *SymbolVariableDecl {
	return &SymbolVariableDecl{Name: name}
}

func (d *SymbolVariableDecl) DeclKind() DeclKind { return KindSymbolVariable }

// BoundExpression returns the expression currently bound to this variable,
// or nil if it is still free.
func (d *SymbolVariableDecl) BoundExpression() Expression { return d.Bound }
