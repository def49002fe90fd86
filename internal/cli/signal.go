package cli

import "github.com/charmbracelet/lipgloss"

// termSignal adapts the terminal background to the engine's system
// dark-mode signal. A terminal's background doesn't change while the
// program runs, so the value is detected once; the listener registration
// exists for hosts (and tests) that can emit changes.
type termSignal struct {
	dark      bool
	listeners []func(bool)
}

func newTermSignal() *termSignal {
	return &termSignal{dark: lipgloss.HasDarkBackground()}
}

func (s *termSignal) Dark() bool { return s.dark }

func (s *termSignal) Notify(fn func(dark bool)) {
	s.listeners = append(s.listeners, fn)
}

// fire simulates a system preference change.
func (s *termSignal) fire(dark bool) {
	s.dark = dark
	for _, fn := range s.listeners {
		fn(dark)
	}
}
