// Package match builds filter predicates from reusable conditions.
//
// Pattern arguments use SQL LIKE syntax: % matches any sequence of
// characters and _ matches a single character.
//
//	filter := pipes.NewFilter("orders", pipes.FilterConfig{
//		Predicate: match.All(
//			match.Subjects("order.%"),
//			match.HeaderParam("region", "region"),
//		),
//	})
package match

import "github.com/fxsml/pipes/message"

// All creates a predicate that requires all predicates to accept (AND).
// Predicates run in order and stop at the first rejection.
func All(predicates ...message.Predicate) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, params message.Params) bool {
		for _, p := range predicates {
			if !p.Apply(msg, params) {
				return false
			}
		}
		return true
	})
}

// Any creates a predicate that requires any predicate to accept (OR).
// Predicates run in order and stop at the first acceptance.
func Any(predicates ...message.Predicate) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, params message.Params) bool {
		for _, p := range predicates {
			if p.Apply(msg, params) {
				return true
			}
		}
		return false
	})
}

// Not inverts p.
func Not(p message.Predicate) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, params message.Params) bool {
		return !p.Apply(msg, params)
	})
}

// Subjects accepts messages whose subject header matches any pattern.
func Subjects(patterns ...string) message.Predicate {
	return Header(message.HeaderSubject, patterns...)
}

// Header accepts messages whose string header key matches any pattern.
// Messages without the header are rejected.
func Header(key string, patterns ...string) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, _ message.Params) bool {
		v, ok := msg.Header.String(key)
		return ok && LikeAny(patterns, v)
	})
}

// HeaderParam accepts messages whose string header key matches the pattern
// held in the filter param named param. A missing param accepts everything,
// so the filter stays open until it is parameterized.
func HeaderParam(key, param string) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, params message.Params) bool {
		pattern, ok := params.String(param)
		if !ok {
			return true
		}
		v, ok := msg.Header.String(key)
		return ok && Like(pattern, v)
	})
}

// Priority accepts messages at least as urgent as p. Lower values are more
// urgent, so message.PriorityHigh passes every Priority predicate.
func Priority(p int) message.Predicate {
	return message.PredicateFunc(func(msg *message.Message, _ message.Params) bool {
		return msg.Priority <= p
	})
}
