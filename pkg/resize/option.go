package resize

// WatchMode selects how a Handler reacts to observed changes.
type WatchMode int

const (
	// WatchDisabled observes nothing.
	WatchDisabled WatchMode = iota
	// WatchDefault compares sizes against the baseline and re-inits on change.
	WatchDefault
	// WatchCustom forwards raw batches to a user callback.
	WatchCustom
)

func (m WatchMode) String() string {
	switch m {
	case WatchDefault:
		return "default"
	case WatchCustom:
		return "custom"
	default:
		return "disabled"
	}
}

// Callback replaces the default comparison policy. It receives every
// delivered batch and the carousel handle, and decides on its own whether
// to re-initialize.
type Callback func(entries []Entry, api API)

// WatchOption is the resolved resize watch configuration. The zero value
// is disabled.
type WatchOption struct {
	mode     WatchMode
	callback Callback
}

// Disabled returns an option that turns resize watching off.
func Disabled() WatchOption {
	return WatchOption{mode: WatchDisabled}
}

// Watch maps the boolean form of the option: true enables the default
// policy, false disables watching.
func Watch(enabled bool) WatchOption {
	if enabled {
		return WatchOption{mode: WatchDefault}
	}
	return Disabled()
}

// WatchFunc returns an option that hands every batch to cb. A nil callback
// disables watching.
func WatchFunc(cb Callback) WatchOption {
	if cb == nil {
		return Disabled()
	}
	return WatchOption{mode: WatchCustom, callback: cb}
}

// Mode returns the selected mode.
func (o WatchOption) Mode() WatchMode {
	return o.mode
}

// Enabled reports whether the option observes anything.
func (o WatchOption) Enabled() bool {
	return o.mode != WatchDisabled
}
