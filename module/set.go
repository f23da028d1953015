// Package module wires together everything resolve/match/instantiate need
// to process more than one compilation unit: the builtin Axioms, manifest
// loading (spec.md's "External Interfaces"), cross-module import linking,
// and the orchestration that drives resolve.ResolveScope over every loaded
// module in registration order.
package module

import (
	"fmt"

	"kyfoo/ast"
	"kyfoo/instantiate"
	"kyfoo/report"
	"kyfoo/resolve"
)

// Set owns every loaded Module plus the shared Axioms and Reporter they
// resolve against. It is the top-level object a driver (cmd/kyfoofront)
// constructs.
type Set struct {
	reporter *report.Reporter
	axioms   *Axioms
	inst     *instantiate.Instantiator

	modules []*Module
	byName  map[string]*Module
}

// NewSet creates an empty module set bound to r for diagnostics.
func NewSet(r *report.Reporter) *Set {
	return &Set{
		reporter: r,
		axioms:   NewAxioms(),
		inst:     instantiate.New(),
		byName:   make(map[string]*Module),
	}
}

// Axioms exposes the set's builtin declarations.
func (s *Set) Axioms() *Axioms { return s.axioms }

// NewModule registers an empty module under name, backed by the manifest
// found at absPath, without resolving anything yet — callers append
// declarations to its RootScope (typically driven by a parser) before
// calling ResolveAll.
func (s *Set) NewModule(absPath string) (*Module, error) {
	manifest, err := LoadManifest(absPath)
	if err != nil {
		return nil, err
	}

	if _, exists := s.byName[manifest.Name]; exists {
		return nil, fmt.Errorf("module %q already loaded", manifest.Name)
	}

	m := newModule(manifest.Name, absPath)
	m.manifest = manifest

	s.modules = append(s.modules, m)
	s.byName[m.name] = m
	return m, nil
}

// Lookup finds a previously registered module by name.
func (s *Set) Lookup(name string) (*Module, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// LinkImports resolves every ImportDecl at the root of every loaded module
// against the set's own module table and registers the hit on the owning
// Scope, so that resolve.Resolver.Lookup can cross into it. It must run
// before ResolveAll.
func (s *Set) LinkImports() error {
	for _, m := range s.modules {
		diag := report.NewDiagnostics(s.reporter, m.Name())
		for _, decl := range m.root.Declarations {
			imp, ok := decl.(*ast.ImportDecl)
			if !ok {
				continue
			}

			target, ok := s.byName[imp.ModuleName]
			if !ok {
				diag.Error(nil, "module %q imports unknown module %q", m.Name(), imp.ModuleName)
				continue
			}

			imp.Resolved = target
			alias := imp.Symbol().Name()
			m.root.AddImport(alias, target)
		}
	}
	return nil
}

// ResolveAll runs resolve.ResolveScope over every loaded module's root
// scope, in registration order. LinkImports must have already run so that
// cross-module lookups succeed.
func (s *Set) ResolveAll() error {
	for _, m := range s.modules {
		if err := s.resolveOne(m); err != nil {
			return err
		}
	}
	return nil
}

// resolveOne resolves a single module, deferring report.CatchICE at the
// resolution boundary spec.md's error-handling model describes: an ICE
// raised anywhere under resolve/instantiate for this module is converted
// into a returned error here rather than panicking through the driver's
// main, so one malformed module can't take the whole run down.
func (s *Set) resolveOne(m *Module) (err error) {
	defer report.CatchICE(&err)

	diag := report.NewDiagnostics(s.reporter, m.Name())
	ctx := resolve.NewContext(diag, resolve.NewResolver(m.root, s.axioms), s.inst)
	if err := resolve.ResolveScope(ctx, m.root); err != nil {
		return fmt.Errorf("resolving module %q: %w", m.Name(), err)
	}
	resolve.CheckInfiniteTypes(ctx, m.root.Declarations)
	return nil
}
