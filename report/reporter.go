package report

import "sync"

// Enumeration of log levels, mirroring the granularity a driver needs to
// gate console output at.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// Reporter is the process-wide, synchronized sink that every resolution call
// funnels diagnostics through.  Resolver methods never print directly; they
// hand messages to a Reporter so that ordering and formatting stay
// consistent regardless of which scope produced the message.
type Reporter struct {
	m        sync.Mutex
	logLevel int
	messages []*Message
	errCount int
}

// NewReporter creates a Reporter at the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{logLevel: logLevel}
}

func (r *Reporter) record(msg *Message) {
	r.m.Lock()
	defer r.m.Unlock()

	r.messages = append(r.messages, msg)
	if msg.IsError {
		r.errCount++
	}
}

// Messages returns every message recorded so far, in emission order.
func (r *Reporter) Messages() []*Message {
	r.m.Lock()
	defer r.m.Unlock()

	out := make([]*Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// ErrorCount returns the number of error-severity messages recorded.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errCount
}

// ShouldProceed reports whether resolution has accumulated any errors.  A
// Module continues resolving its own declarations even after an error (per
// §7's "report and continue"), but callers orchestrating several modules use
// this to decide whether later phases (import resolution, instantiation)
// should still run.
func (r *Reporter) ShouldProceed() bool {
	return r.ErrorCount() == 0
}
