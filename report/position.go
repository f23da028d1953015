package report

import "kyfoo/token"

// TextPosition represents a positional range in the source text.  It is
// always derived from one or two tokens; the core never constructs positions
// out of thin air.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol     int
}

// FromToken builds a single-point position spanning exactly one token.
func FromToken(t token.Token) *TextPosition {
	return &TextPosition{
		StartLn:  t.Line,
		StartCol: t.Column,
		EndLn:    t.Line,
		EndCol:   t.Column + len(t.Lexeme),
	}
}

// FromRange computes the position spanning the two given positions.
func FromRange(start, end *TextPosition) *TextPosition {
	if start == nil {
		return end
	}
	if end == nil {
		return start
	}

	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}
