package message

// Predicate decides whether a filter lets a normal message through.
// It may transform the message in place before accepting it. The params
// belong to the filter and must not be modified.
type Predicate interface {
	Apply(msg *Message, params Params) bool
}

// PredicateFunc adapts a function to the Predicate interface.
type PredicateFunc func(msg *Message, params Params) bool

// Apply calls f(msg, params).
func (f PredicateFunc) Apply(msg *Message, params Params) bool {
	return f(msg, params)
}

// Accept is the identity predicate: it accepts every message unchanged.
var Accept Predicate = PredicateFunc(func(*Message, Params) bool { return true })
