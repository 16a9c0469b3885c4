// Package junction exposes fittings under names so modules can exchange
// messages without holding references to each other's graphs.
//
// A [Junction] maps each name to one fitting and a [Direction]. Input pipes
// deliver messages into the owning module through a listener attached with
// [Junction.AddPipeListener]; output pipes carry messages out of it through
// [Junction.SendMessage]. A name is registered at most once regardless of
// direction.
//
// A [Mediator] plays the hosting-module side of the exchange: it accepts
// pipes handed over by another module, registers them and attaches its own
// handler to inputs.
//
// Boolean methods mirror the fitting protocol. Their error-returning
// counterparts (Register, Listen, Send) report why an operation failed.
package junction
