// Package pipes builds synchronous, in-process message graphs out of
// fittings.
//
// A [Fitting] accepts a downstream connection and receives writes. Chains are
// assembled by connecting fittings output to input:
//
//	head := pipes.NewPipe()
//	scale := pipes.NewFilter("scale", pipes.FilterConfig{Predicate: scaleFn})
//	queue := pipes.NewQueue(pipes.QueueConfig{Mode: pipes.ModeSort})
//	head.Connect(scale)
//	scale.Connect(queue)
//	queue.Connect(pipes.NewListener(handler))
//
// Writes run depth-first on the caller's goroutine: Write returns only after
// every downstream fitting, fan-out branch and listener has been visited.
// Results are reported as booleans. A false result means a message was not
// delivered all the way through, either because a filter rejected it, a
// fitting had no output, or a branch failed.
//
// Fittings are reconfigured in-band with control messages from the message
// package: filters act on [message.FilterControl] addressed to their name,
// queues act on [message.QueueControl].
//
// Single-output fittings reject a second Connect. To splice a fitting into a
// running chain, Disconnect the upstream, connect the new fitting to the old
// downstream and connect the upstream to the new fitting.
//
// Named endpoints for cross-module wiring are provided by the junction
// package. Write middleware for logging, panic recovery and metrics lives in
// the middleware package.
package pipes
