package effect

import "github.com/goliatone/go-formcore/pkg/event"

// Command is a handler's ordered response to an event: a sequence of chained
// events and effects. The reducer walks the steps in order, dispatching
// chained events synchronously (their effects enter the stream first) and
// appending effects as they appear.
type Command struct {
	steps []step
}

type step struct {
	event  event.Event
	effect Effect
}

// Done is the empty command: no state to announce, nothing to run.
func Done() Command { return Command{} }

// Of builds a command carrying the given effects in order.
func Of(effects ...Effect) Command {
	var c Command
	for _, e := range effects {
		c.steps = append(c.steps, step{effect: e})
	}
	return c
}

// Emit builds a command that dispatches the given events in order.
func Emit(events ...event.Event) Command {
	var c Command
	for _, ev := range events {
		c.steps = append(c.steps, step{event: ev})
	}
	return c
}

// Then appends next's steps after c's.
func (c Command) Then(next Command) Command {
	steps := make([]step, 0, len(c.steps)+len(next.steps))
	steps = append(steps, c.steps...)
	steps = append(steps, next.steps...)
	return Command{steps: steps}
}

// IsDone reports whether the command has no steps.
func (c Command) IsDone() bool { return len(c.steps) == 0 }

// Walk visits the steps in order. onEvent receives chained events for the
// caller to dispatch; onEffect receives effects for the outgoing stream.
func (c Command) Walk(onEvent func(event.Event), onEffect func(Effect)) {
	for _, s := range c.steps {
		if s.event != nil {
			onEvent(s.event)
			continue
		}
		onEffect(s.effect)
	}
}
