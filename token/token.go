// Package token defines the opaque syntactic atom consumed by the core
// symbol-resolution subsystem.  Lexing and parsing are external collaborators
// (see SPEC_FULL.md); this package only carries the result.
package token

// Kind is the closed set of token tags the core inspects.  Most punctuation
// kinds are only ever compared against, never branched on, by the resolver.
type Kind int

const (
	// Identifier is a plain, in-scope-lookup name.
	Identifier Kind = iota

	// FreeVariable is a name prefixed with the pattern-variable sigil (eg.
	// `\T`).  It introduces a SymbolVariable the first time it is seen inside
	// a Symbol's parameter list.
	FreeVariable

	// Undefined marks a Symbol expression whose identifier has not yet been
	// rotated in from its first sub-expression.
	Undefined

	Integer
	Decimal
	Text

	// Punctuation kinds.  The resolver never inspects these; they are carried
	// for the parser and as the bracket tokens a Tuple or SymbolExpr keeps.
	OpenParen
	CloseParen
	OpenAngle
	CloseAngle
	OpenBracket
	CloseBracket
	Comma
	Colon
	Dot
	Arrow
	Equal
)

// Token is an immutable, opaque syntactic atom: a kind tag, the literal
// lexeme text, and a source position.  Tokens are never mutated after the
// parser constructs them.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// New constructs a Token.  Line and Column are 0-indexed, matching the
// convention used throughout report.TextPosition.
func New(kind Kind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// Equal compares two tokens by kind and lexeme only, per spec.md §4.A.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Lexeme == other.Lexeme
}

func (t Token) String() string {
	return t.Lexeme
}
