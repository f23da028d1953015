package ast

import (
	"github.com/google/btree"
	"github.com/google/uuid"
)

// SymbolTemplate is a per-overload entry in a SymbolSet: the prototype
// declaration plus the parallel lists of binding sets and instances that
// have been monomorphised from it so far (spec.md §3's SymbolSet).
// InstanceIDs carries a per-instantiation correlation id purely for a back
// end to address a specific monomorphisation without relying on pointer
// identity (SPEC_FULL.md's domain wiring for github.com/google/uuid).
type SymbolTemplate struct {
	Declaration      Declaration
	InstanceBindings [][]Expression
	Instantiations   []Declaration
	InstanceIDs      []uuid.UUID
}

// ParamList is the prototype's parameter expressions, read straight off its
// Symbol so it can never drift from the declaration it describes.
func (t *SymbolTemplate) ParamList() []Expression {
	return t.Declaration.Symbol().Params
}

// RecordInstantiation appends a fresh (bindings, instance) pair, maintaining
// the memoisation invariant that the two lists stay parallel.
func (t *SymbolTemplate) RecordInstantiation(bindings []Expression, instance Declaration, id uuid.UUID) {
	t.InstanceBindings = append(t.InstanceBindings, bindings)
	t.Instantiations = append(t.Instantiations, instance)
	t.InstanceIDs = append(t.InstanceIDs, id)
}

// -----------------------------------------------------------------------------

// SymbolSet is the per-name overload bucket owned by a Scope.
type SymbolSet struct {
	Name      string
	Templates []*SymbolTemplate
}

// Append records a new prototype declaration under this name.
func (s *SymbolSet) Append(decl Declaration) *SymbolTemplate {
	tmpl := &SymbolTemplate{Declaration: decl}
	s.Templates = append(s.Templates, tmpl)
	return tmpl
}

func lessSymbolSet(a, b *SymbolSet) bool { return a.Name < b.Name }

// -----------------------------------------------------------------------------

// Scope is the hierarchical declaration container of spec.md §3/§4.F.  It
// owns its Declarations and keeps two name-ordered SymbolSet indexes (one for
// non-procedure declarations, one for procedure overloads) backed by a
// google/btree ordered tree rather than a hand-rolled binary-search slice.
type Scope struct {
	Parent     *Scope
	Module     ModuleRef
	OwningDecl Declaration

	Declarations []Declaration

	values     *btree.BTreeG[*SymbolSet]
	procedures *btree.BTreeG[*SymbolSet]

	Imports map[string]ModuleRef

	// BodyExprs holds the ordered top-level body expressions of a procedure
	// scope. It is unused (nil) for every other scope kind.
	BodyExprs []Expression
}

// NewScope creates a scope.  owner is the declaration this scope is the
// Definition of, or nil for a module's root scope.
func NewScope(parent *Scope, module ModuleRef, owner Declaration) *Scope {
	return &Scope{
		Parent:     parent,
		Module:     module,
		OwningDecl: owner,
		values:     btree.NewG[*SymbolSet](8, lessSymbolSet),
		procedures: btree.NewG[*SymbolSet](8, lessSymbolSet),
		Imports:    make(map[string]ModuleRef),
	}
}

// Append stamps decl's back-scope and appends it to the declaration list.
// It does not touch the SymbolSet indexes — callers add the declaration to
// the appropriate bucket themselves once its Symbol has been resolved (see
// the resolve package), since the bucket key is derived from the resolved
// Symbol's name.
func (s *Scope) Append(decl Declaration) {
	decl.SetScope(s)
	s.Declarations = append(s.Declarations, decl)
}

// SymbolSetFor returns the named bucket, creating an empty one if absent.
// procedure selects which of the two indexes to search.
func (s *Scope) SymbolSetFor(name string, procedure bool) *SymbolSet {
	tree := s.values
	if procedure {
		tree = s.procedures
	}

	probe := &SymbolSet{Name: name}
	if found, ok := tree.Get(probe); ok {
		return found
	}

	tree.ReplaceOrInsert(probe)
	return probe
}

// FindSymbolSet looks up a bucket without creating one.
func (s *Scope) FindSymbolSet(name string, procedure bool) (*SymbolSet, bool) {
	tree := s.values
	if procedure {
		tree = s.procedures
	}

	return tree.Get(&SymbolSet{Name: name})
}

// AddImport registers a resolved module under the name it was imported as.
func (s *Scope) AddImport(name string, mod ModuleRef) {
	s.Imports[name] = mod
}

// Import looks up a previously registered import by name.
func (s *Scope) Import(name string) (ModuleRef, bool) {
	mod, ok := s.Imports[name]
	return mod, ok
}

// AllValueSets visits every non-procedure SymbolSet in name order.
func (s *Scope) AllValueSets(fn func(*SymbolSet) bool) {
	s.values.Ascend(func(item *SymbolSet) bool { return fn(item) })
}

// AllProcedureSets visits every procedure SymbolSet in name order.
func (s *Scope) AllProcedureSets(fn func(*SymbolSet) bool) {
	s.procedures.Ascend(func(item *SymbolSet) bool { return fn(item) })
}
