package message

// Reserved message types. Fittings treat these as well-known identifiers.
const (
	// TypeNormal marks application data.
	TypeNormal = "pipes.message.normal"

	// TypeSetParams replaces the params of the targeted filter.
	TypeSetParams = "pipes.filter.set_params"
	// TypeSetFilter replaces the predicate of the targeted filter.
	TypeSetFilter = "pipes.filter.set_filter"
	// TypeBypass switches the targeted filter to bypass mode.
	TypeBypass = "pipes.filter.bypass"
	// TypeFilter switches the targeted filter to filter mode.
	TypeFilter = "pipes.filter.filter"

	// TypeFlush drains a queue to its output.
	TypeFlush = "pipes.queue.flush"
	// TypeSort puts a queue into priority sort mode.
	TypeSort = "pipes.queue.sort"
	// TypeFIFO puts a queue into first-in first-out mode.
	TypeFIFO = "pipes.queue.fifo"
)

// Kind is the closed set of message kinds fittings dispatch on.
type Kind uint8

const (
	// KindUnknown is any type outside the reserved vocabulary.
	KindUnknown Kind = iota
	// KindNormal is application data.
	KindNormal
	// KindSetParams replaces the params of the targeted filter.
	KindSetParams
	// KindSetFilter replaces the predicate of the targeted filter.
	KindSetFilter
	// KindBypass switches the targeted filter to bypass mode.
	KindBypass
	// KindFilter switches the targeted filter to filter mode.
	KindFilter
	// KindFlush drains a queue to its output.
	KindFlush
	// KindSort puts a queue into priority sort mode.
	KindSort
	// KindFIFO puts a queue into first-in first-out mode.
	KindFIFO
)

var kinds = map[string]Kind{
	TypeNormal:    KindNormal,
	TypeSetParams: KindSetParams,
	TypeSetFilter: KindSetFilter,
	TypeBypass:    KindBypass,
	TypeFilter:    KindFilter,
	TypeFlush:     KindFlush,
	TypeSort:      KindSort,
	TypeFIFO:      KindFIFO,
}

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindNormal:    "normal",
	KindSetParams: "set_params",
	KindSetFilter: "set_filter",
	KindBypass:    "bypass",
	KindFilter:    "filter",
	KindFlush:     "flush",
	KindSort:      "sort",
	KindFIFO:      "fifo",
}

// KindOf maps a message type to its Kind. Unreserved types yield KindUnknown.
func KindOf(typ string) Kind {
	return kinds[typ]
}

// String returns a short label, suitable for logs and metric labels.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// IsControl reports whether k is any reserved control kind.
func (k Kind) IsControl() bool {
	return k.IsFilterControl() || k.IsQueueControl()
}

// IsFilterControl reports whether k is acted on by filters.
func (k Kind) IsFilterControl() bool {
	switch k {
	case KindSetParams, KindSetFilter, KindBypass, KindFilter:
		return true
	}
	return false
}

// IsQueueControl reports whether k is acted on by queues.
func (k Kind) IsQueueControl() bool {
	switch k {
	case KindFlush, KindSort, KindFIFO:
		return true
	}
	return false
}
