package module

import "kyfoo/ast"

// Module is one compilation unit: a name, its source root, and the Scope
// every top-level declaration in it lives in. It implements ast.ModuleRef,
// the narrow interface the ast package needs for a Scope's cross-module
// Import back-reference.
type Module struct {
	name     string
	absPath  string
	manifest *Manifest
	root     *ast.Scope
}

// newModule allocates a Module and its (initially empty) root scope. The
// two-step construction — allocate, then build the scope pointing back at
// it — exists because ast.NewScope takes a ModuleRef and a Module must exist
// before it can hand out a reference to itself.
func newModule(name, absPath string) *Module {
	m := &Module{name: name, absPath: absPath}
	m.root = ast.NewScope(nil, m, nil)
	return m
}

func (m *Module) Name() string        { return m.name }
func (m *Module) AbsPath() string     { return m.absPath }
func (m *Module) RootScope() *ast.Scope { return m.root }
func (m *Module) Manifest() *Manifest { return m.manifest }
