// Package message defines the envelope written through a pipes graph and the
// reserved control messages that reconfigure fittings in-band.
//
// Every value written to a fitting implements [Envelope]. Application data
// travels as a [Message] of type [TypeNormal]; control traffic uses
// [FilterControl] (targeted at a named filter) or [QueueControl] (consumed by
// the first queue that sees it).
//
// Fittings dispatch on [Kind], derived from the message type through a fixed
// table. Types outside the reserved vocabulary map to [KindUnknown] and are
// passed through by fittings that do not recognize them.
//
//	msg := message.New(message.Header{"width": 10}, body, message.PriorityHigh)
//	ok := head.Write(msg)
//
//	head.Write(message.NewSetParams("scale", message.Params{"factor": 10}))
//	head.Write(message.NewFlush())
//
// Messages are compared by identity. A filter may mutate a message in place,
// so callers must not assume a written message is unchanged afterwards.
package message
