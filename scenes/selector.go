package scenes

import "log"

// Key identifies the keys the selector reacts to. The windowing layer
// maps its own key codes onto these; anything else is KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// Action is the edge of a keyboard event.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// Event is one keyboard event delivered by the windowing layer.
type Event struct {
	Key    Key
	Action Action
}

// NotifyFunc observes the cursor after every advance or retreat,
// including saturated no-ops. Diagnostics only; it never feeds back
// into selection.
type NotifyFunc func(scene int)

// Selector is the cursor over a registry. It starts at scene 0 and
// saturates at both ends instead of wrapping. A single goroutine owns
// it: the render loop applies events and reads the cursor in strict
// sequence, so no locking is needed.
type Selector struct {
	cursor int
	last   int
	done   bool
	notify NotifyFunc
}

func NewSelector(reg *Registry) *Selector {
	return &Selector{
		last: reg.Len() - 1,
		notify: func(scene int) {
			log.Printf("scene %d selected", scene)
		},
	}
}

// SetNotify replaces the notification hook. A nil fn disables it.
func (s *Selector) SetNotify(fn NotifyFunc) {
	s.notify = fn
}

// Current returns the index of the active scene.
func (s *Selector) Current() int {
	return s.cursor
}

// Done reports whether Quit has been requested.
func (s *Selector) Done() bool {
	return s.done
}

// Advance moves to the next scene, staying put on the last one.
func (s *Selector) Advance() {
	if s.cursor < s.last {
		s.cursor++
	}
	s.emit()
}

// Retreat moves to the previous scene, staying put on the first one.
func (s *Selector) Retreat() {
	if s.cursor > 0 {
		s.cursor--
	}
	s.emit()
}

// Quit marks the selector done. The cursor keeps its value.
func (s *Selector) Quit() {
	s.done = true
}

// Apply maps ev onto a transition. Only the press edge acts; release
// and repeat events are dropped, as are keys the selector doesn't know.
func (s *Selector) Apply(ev Event) {
	if ev.Action != Press {
		return
	}
	switch ev.Key {
	case KeyRight:
		s.Advance()
	case KeyLeft:
		s.Retreat()
	case KeyEscape:
		s.Quit()
	}
}

func (s *Selector) emit() {
	if s.notify != nil {
		s.notify(s.cursor)
	}
}
