package ast

// AxiomsProvider is the narrow interface ast needs from a ModuleSet's builtin
// axioms (SPEC_FULL.md's SUPPLEMENTED FEATURES: integer/decimal/text/empty types
// and the `ptr<T>` constructor) so that Primary-literal resolution can bind a
// literal token to its builtin type declaration without the ast package
// importing the module package that owns Axioms itself.
type AxiomsProvider interface {
	IntegerType() Declaration
	DecimalType() Declaration
	TextType() Declaration
	EmptyType() Declaration
	PointerType(elem Declaration) Declaration
}
