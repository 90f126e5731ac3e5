package keys

type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyFlip
	KeyThreat
	KeyEscape
)

// Event is a key press normalized by the host
type Event struct {
	Key Key
	// focus is in a text-input-like element
	TextTarget bool
}

// Handlers are all optional
type Handlers struct {
	OnPrev     func()
	OnNext     func()
	OnFirst    func()
	OnLast     func()
	OnFlip     func()
	OnThreat   func()
	OnDeselect func()
}

// Route reports whether a handler ran
func Route(ev Event, h Handlers) bool {
	if ev.TextTarget {
		return false
	}
	var fn func()
	switch ev.Key {
	case KeyLeft, KeyDown:
		fn = h.OnPrev
	case KeyRight, KeyUp:
		fn = h.OnNext
	case KeyHome:
		fn = h.OnFirst
	case KeyEnd:
		fn = h.OnLast
	case KeyFlip:
		fn = h.OnFlip
	case KeyThreat:
		fn = h.OnThreat
	case KeyEscape:
		fn = h.OnDeselect
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}

// FromRune maps printable shortcut keys
func FromRune(r rune) Key {
	switch r {
	case 'f', 'F':
		return KeyFlip
	case 'x', 'X':
		return KeyThreat
	default:
		return KeyUnknown
	}
}
