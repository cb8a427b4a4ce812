// Package effect declares the side-effect channel between the core and its
// shell: typed effect values the shell executes, the request identifier that
// correlates HTTP effects with their results, and the command type handlers
// use to sequence follow-up events and effects.
package effect

// Effect is a declarative side-effect request. Effects are plain
// serializable values; the core never performs I/O itself.
type Effect interface {
	isEffect()
}

// Render asks the shell to re-derive the ViewModel and repaint. Renders are
// idempotent and may repeat back to back.
type Render struct{}

// RequestID correlates an HTTP effect with the resolution the shell reports
// later. IDs are allocated by the issuing handler and never reused.
type RequestID uint64

// HTTP asks the shell to perform a request and resolve ID with the outcome.
type HTTP struct {
	ID     RequestID
	Method string
	URL    string
}

func (Render) isEffect() {}
func (HTTP) isEffect()   {}

// HTTPResult is the shell's report for a completed HTTP effect. Err covers
// transport failures; Status and Body are meaningful only when Err is nil.
type HTTPResult struct {
	Status int
	Body   []byte
	Err    error
}
