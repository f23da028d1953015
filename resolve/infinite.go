package resolve

import "kyfoo/ast"

// color is the three-color DFS state used by CheckInfiniteTypes, adapted
// from the teacher's named-type infinite-size check (depm/infinite.go) to
// kyfoo's DataSum/DataProduct declarations. A type is infinite if it
// contains itself, directly or transitively, without an intervening
// pointer indirection: `ptr<T>`'s builtin declaration has no Definition
// scope to search into, so recursion through it simply terminates without
// any special-casing.
type color int

const (
	white color = iota
	grey
	black
)

// CheckInfiniteTypes walks every DataSum/DataProduct declaration reachable
// from decls and reports one whose fields recurse into themselves without
// indirection. It must run after resolution, once every field's Constraint
// carries a resolved Declaration.
func CheckInfiniteTypes(ctx *Context, decls []ast.Declaration) bool {
	colors := make(map[ast.Declaration]color)
	ok := true

	for _, d := range decls {
		switch d.(type) {
		case *ast.DataSumDecl, *ast.DataProductDecl:
			if colors[d] != black && !searchFrom(d, colors) {
				ctx.Diagnostics.Error(declAt(d), "type `%s` has infinite size", d.Symbol().Name())
				ok = false
			}
		}
	}

	return ok
}

func searchFrom(d ast.Declaration, colors map[ast.Declaration]color) bool {
	switch colors[d] {
	case black:
		return true
	case grey:
		colors[d] = black
		return false
	default:
		colors[d] = grey
		result := searchChildren(d, colors)
		colors[d] = black
		return result
	}
}

func searchChildren(d ast.Declaration, colors map[ast.Declaration]color) bool {
	switch v := d.(type) {
	case *ast.DataSumDecl:
		if v.Definition == nil {
			return true
		}
		for _, child := range v.Definition.Declarations {
			ctor, ok := child.(*ast.DataSumCtorDecl)
			if !ok {
				continue
			}
			for _, f := range ctor.Fields {
				if !searchFieldType(f.Constraint, colors) {
					return false
				}
			}
		}

	case *ast.DataProductDecl:
		if v.Definition == nil {
			return true
		}
		for _, child := range v.Definition.Declarations {
			vd, ok := child.(*ast.VariableDecl)
			if !ok {
				continue
			}
			if !searchFieldType(vd.Constraint, colors) {
				return false
			}
		}
	}

	return true
}

func searchFieldType(constraint ast.Expression, colors map[ast.Declaration]color) bool {
	if constraint == nil {
		return true
	}

	decl := constraint.Declaration()
	if decl == nil {
		return true
	}

	switch decl.(type) {
	case *ast.DataSumDecl, *ast.DataProductDecl:
		return searchFrom(decl, colors)
	}
	return true
}
