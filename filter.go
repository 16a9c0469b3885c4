package pipes

import (
	"maps"
	"strings"
	"sync"

	"github.com/fxsml/pipes/message"
)

// FilterMode selects whether a Filter applies its predicate.
type FilterMode string

const (
	// ModeFilter applies the predicate to normal messages. Default.
	ModeFilter FilterMode = "filter"
	// ModeBypass forwards normal messages unmodified.
	ModeBypass FilterMode = "bypass"
)

// FilterConfig configures a Filter.
type FilterConfig struct {
	// Predicate decides whether a normal message is forwarded and may
	// transform it in place. Default: message.Accept.
	Predicate message.Predicate
	// Params are passed to every Predicate call. Default: empty.
	Params message.Params
	// Mode is the initial operation mode. Default: ModeFilter.
	Mode FilterMode
}

func (c FilterConfig) parse() FilterConfig {
	if c.Predicate == nil {
		c.Predicate = message.Accept
	}
	if c.Params == nil {
		c.Params = message.Params{}
	}
	c.Mode = parseFilterMode(c.Mode)
	return c
}

func parseFilterMode(m FilterMode) FilterMode {
	if FilterMode(strings.ToLower(string(m))) == ModeBypass {
		return ModeBypass
	}
	return ModeFilter
}

// Filter is a named single-output fitting that drops or transforms normal
// messages. Its predicate, params and mode can be replaced at runtime by
// filter control messages addressed to its name.
type Filter struct {
	Pipe

	name string

	stateMu   sync.RWMutex
	mode      FilterMode
	predicate message.Predicate
	params    message.Params
}

// NewFilter creates an unconnected filter named name.
func NewFilter(name string, cfg FilterConfig) *Filter {
	cfg = cfg.parse()
	return &Filter{
		name:      name,
		mode:      cfg.Mode,
		predicate: cfg.Predicate,
		params:    maps.Clone(cfg.Params),
	}
}

// Name returns the name control messages are matched against.
func (f *Filter) Name() string {
	return f.name
}

// Mode returns the current operation mode.
func (f *Filter) Mode() FilterMode {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return f.mode
}

// Params returns a copy of the current predicate params.
func (f *Filter) Params() message.Params {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return maps.Clone(f.params)
}

// SetMode switches the operation mode.
func (f *Filter) SetMode(mode FilterMode) {
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	f.mode = parseFilterMode(mode)
}

// SetParams replaces the predicate params with a copy of params.
func (f *Filter) SetParams(params message.Params) {
	params = maps.Clone(params)
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	f.params = params
}

// SetPredicate replaces the predicate. A nil predicate resets it to
// message.Accept.
func (f *Filter) SetPredicate(p message.Predicate) {
	if p == nil {
		p = message.Accept
	}
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	f.predicate = p
}

// Write filters normal messages, applies filter control messages addressed
// to this filter and forwards everything else unmodified.
//
// A normal message rejected by the predicate is not forwarded and Write
// returns false. A consumed control message returns true.
func (f *Filter) Write(msg message.Envelope) bool {
	m := msg.Envelope()
	switch kind := m.Kind(); kind {
	case message.KindNormal:
		return f.filter(msg, m)
	case message.KindSetParams, message.KindSetFilter, message.KindBypass, message.KindFilter:
		ctl, ok := msg.(*message.FilterControl)
		if !ok || !ctl.IsTarget(f.name) {
			return f.forward(msg)
		}
		f.control(kind, ctl)
		return true
	default:
		return f.forward(msg)
	}
}

func (f *Filter) filter(msg message.Envelope, m *message.Message) bool {
	f.stateMu.RLock()
	mode, predicate, params := f.mode, f.predicate, f.params
	f.stateMu.RUnlock()

	if mode == ModeFilter && !predicate.Apply(m, params) {
		logger.Debug("[PIPES] Message filtered", append([]any{"filter", f.name}, messageArgs(m)...)...)
		return false
	}
	return f.forward(msg)
}

func (f *Filter) control(kind message.Kind, ctl *message.FilterControl) {
	switch kind {
	case message.KindSetParams:
		f.SetParams(ctl.Params)
	case message.KindSetFilter:
		f.SetPredicate(ctl.Predicate)
	case message.KindBypass:
		f.SetMode(ModeBypass)
	case message.KindFilter:
		f.SetMode(ModeFilter)
	}
	logger.Debug("[PIPES] Filter reconfigured", "filter", f.name, "control", kind.String())
}
