// Package app composes the form and address handlers behind the root
// reducer. Update routes each event to its owning handler, dispatches
// chained events depth-first so their effects enter the stream before the
// chaining command's own, and returns the composed effect list for the
// shell to execute. View projects the model into a serializable ViewModel;
// it is pure and recomputed from scratch on every call.
//
// The App is deliberately single-threaded: one event runs to completion
// before the next is dispatched. Shells serialize access, typically on an
// event-loop goroutine (see pkg/shell).
package app
