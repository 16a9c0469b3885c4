package test

import "sync"

// Entry is a single recorded log call.
type Entry struct {
	Level string
	Msg   string
	Args  []any
}

// Arg returns the value logged for key.
func (e Entry) Arg(key string) (any, bool) {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if e.Args[i] == key {
			return e.Args[i+1], true
		}
	}
	return nil, false
}

// Logger is a pipes.Logger that records every call.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

func (l *Logger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.record("error", msg, args) }

// Entries returns the recorded calls in order.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Count returns the number of calls recorded at level.
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
