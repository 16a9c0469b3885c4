package middleware

import (
	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// Correlation returns middleware that stamps a correlation ID on normal
// messages that lack one. The message's own ID is used, so every fitting
// downstream of the entry point sees the same correlation ID.
func Correlation() pipes.Middleware {
	return func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) bool {
			m := msg.Envelope()
			if m.IsNormal() {
				if _, ok := m.Header.CorrelationID(); !ok {
					header(m)[message.HeaderCorrelationID] = m.ID
				}
			}
			return next(msg)
		}
	}
}

// Subject returns middleware that sets the subject header on all normal
// messages, overwriting any existing subject.
func Subject(subject string) pipes.Middleware {
	return func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) bool {
			if m := msg.Envelope(); m.IsNormal() {
				header(m)[message.HeaderSubject] = subject
			}
			return next(msg)
		}
	}
}

func header(m *message.Message) message.Header {
	if m.Header == nil {
		m.Header = make(message.Header)
	}
	return m.Header
}
