package report

import "fmt"

// Locatable is implemented by anything the diagnostics sink can point a
// message at: a resolved token position or an ast.Expression/Declaration.
type Locatable interface {
	Position() *TextPosition
}

// tokenPos adapts a bare TextPosition so that report.At(tok) call sites read
// naturally without every caller importing the token package here.
type tokenPos struct{ pos *TextPosition }

func (tp tokenPos) Position() *TextPosition { return tp.pos }

// At wraps a position so it satisfies Locatable.
func At(pos *TextPosition) Locatable {
	return tokenPos{pos: pos}
}

// Message is a single diagnostic: a module name, a position, severity, text,
// and zero or more cross-references attached via See.
type Message struct {
	Module   string
	Position *TextPosition
	Text     string
	IsError  bool
	SeeAlso  []*Message
}

// See attaches a cross-reference to another location, mirroring the spec's
// `.see(otherDecl)` chaining.  It returns the same message for further
// chaining and is a no-op if ref is nil (an unresolved declaration has no
// sensible cross-reference).
func (m *Message) See(ref Locatable, text string, args ...interface{}) *Message {
	if ref == nil {
		return m
	}

	m.SeeAlso = append(m.SeeAlso, &Message{
		Module:   m.Module,
		Position: ref.Position(),
		Text:     fmt.Sprintf(text, args...),
		IsError:  false,
	})
	return m
}

// Diagnostics is the per-compilation structured sink threaded through every
// resolveSymbols call.  It is the Context object's `diagnostics` field from
// spec.md §4.B.
type Diagnostics struct {
	reporter *Reporter
	module   string
}

// NewDiagnostics scopes a Diagnostics handle to one module name, so call
// sites don't have to pass the module along with every message.
func NewDiagnostics(r *Reporter, moduleName string) *Diagnostics {
	return &Diagnostics{reporter: r, module: moduleName}
}

// Error reports a compile error at the given location.
func (d *Diagnostics) Error(at Locatable, format string, args ...interface{}) *Message {
	var pos *TextPosition
	if at != nil {
		pos = at.Position()
	}
	msg := &Message{
		Module:   d.module,
		Position: pos,
		Text:     fmt.Sprintf(format, args...),
		IsError:  true,
	}
	d.reporter.record(msg)
	return msg
}

// Warn reports a non-fatal diagnostic: it is recorded and rendered but never
// counted against ErrorCount, so it can never by itself make ShouldProceed
// false.
func (d *Diagnostics) Warn(at Locatable, format string, args ...interface{}) *Message {
	var pos *TextPosition
	if at != nil {
		pos = at.Position()
	}
	msg := &Message{
		Module:   d.module,
		Position: pos,
		Text:     fmt.Sprintf(format, args...),
		IsError:  false,
	}
	d.reporter.record(msg)
	return msg
}

// ICE reports an internal compiler error: a structural contract violation
// that valid parser output can never trigger.  It always aborts by
// panicking; callers at a resolution boundary recover and convert the panic
// into a fatal exit, matching the teacher's report.ReportICE.
func ICE(format string, args ...interface{}) {
	panic(iceError(fmt.Sprintf(format, args...)))
}

// ICE is the module-scoped spelling of the package-level ICE, so call sites
// already holding a *Diagnostics (every resolve.Context does) don't need a
// separate "kyfoo/report" import just to raise one.
func (d *Diagnostics) ICE(format string, args ...interface{}) {
	ICE(format, args...)
}

// iceError is the payload of an ICE panic.  Recover sites type-switch on it
// to distinguish it from unrelated panics.
type iceError string

func (e iceError) Error() string { return "internal compiler error: " + string(e) }

// CatchICE recovers a panic raised by ICE and converts it into a returned
// error; any other panic is re-raised.  Callers defer this at a resolution
// boundary (module.Set.resolveOne, once per module) the way the teacher defers
// report.CatchErrors.
func CatchICE(err *error) {
	if x := recover(); x != nil {
		if ie, ok := x.(iceError); ok {
			e := error(ie)
			*err = e
			return
		}
		panic(x)
	}
}
