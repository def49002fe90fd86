package page

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/dom"
)

// testPage carries the full selector contract: nav drawer, theme controls,
// hero layer, counters, fade-in sections, and deferred images.
const testPage = `<!DOCTYPE html>
<html>
<head><title>Fixture</title></head>
<body>
  <header>
    <button id="nav-toggle">menu</button>
    <div id="nav-overlay"></div>
    <div id="nav-menu">
      <button id="nav-close">close</button>
      <a class="nav-link" href="#about">About</a>
      <a class="nav-link" href="#contact">Contact</a>
      <input type="checkbox" class="theme-toggle">
    </div>
    <span id="theme-label"></span>
    <span id="system-theme-label"></span>
  </header>
  <section id="hero"><div class="hero-background"></div></section>
  <section id="about" class="fade-in"><p>About me.</p>
    <img data-src="assets/portrait.jpg" alt="portrait">
  </section>
  <section id="stats">
    <span class="counter" id="count-projects" data-target="10">0</span>
    <span class="counter" id="count-clients" data-target="9">0</span>
    <span class="counter" id="count-years" data-target="1">0</span>
    <span class="counter" id="count-tech" data-target="15">0</span>
  </section>
  <section id="contact" class="fade-in"><p>Say hi.</p></section>
</body>
</html>`

// memStore is an in-memory preference store.
type memStore struct {
	m      map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore { return &memStore{m: make(map[string]string)} }

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.m[key] = value
	return nil
}

// fakeSignal is a controllable system dark-mode signal.
type fakeSignal struct {
	dark      bool
	listeners []func(bool)
}

func (s *fakeSignal) Dark() bool               { return s.dark }
func (s *fakeSignal) Notify(fn func(dark bool)) { s.listeners = append(s.listeners, fn) }

func (s *fakeSignal) fire(dark bool) {
	s.dark = dark
	for _, fn := range s.listeners {
		fn(dark)
	}
}

// stubLayout serves fixed geometry keyed by element.
type stubLayout struct {
	tops     map[dom.Ref]int
	heights  map[dom.Ref]int
	viewport int
	doc      int
}

func newStubLayout() *stubLayout {
	return &stubLayout{
		tops:     make(map[dom.Ref]int),
		heights:  make(map[dom.Ref]int),
		viewport: 600,
		doc:      3000,
	}
}

func (l *stubLayout) place(el dom.Ref, top, height int) {
	l.tops[el] = top
	l.heights[el] = height
}

func (l *stubLayout) Top(el dom.Ref) int      { return l.tops[el] }
func (l *stubLayout) Height(el dom.Ref) int   { return l.heights[el] }
func (l *stubLayout) ViewportHeight() int     { return l.viewport }
func (l *stubLayout) DocumentHeight() int     { return l.doc }

// fixture bundles everything an engine test needs.
type fixture struct {
	doc    *dom.Document
	ctx    *Context
	eng    *Engine
	store  *memStore
	signal *fakeSignal
	layout *stubLayout
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureHTML(t, testPage)
}

func newFixtureHTML(t *testing.T, pageHTML string) *fixture {
	t.Helper()

	doc, err := dom.ParseString(pageHTML)
	require.NoError(t, err)

	f := &fixture{
		doc:    doc,
		store:  newMemStore(),
		signal: &fakeSignal{},
		layout: newStubLayout(),
		now:    time.Unix(1700000000, 0),
	}

	refs := ResolveRefs(doc)
	f.ctx = &Context{
		Doc:    doc,
		Refs:   refs,
		Store:  f.store,
		Signal: f.signal,
		Layout: f.layout,
		Clock:  NewClock(f.now),
		Log:    slog.New(slog.DiscardHandler),
	}

	// Default geometry: fixed header, hero at the top, about below the
	// first viewport, stats further down, contact near the end.
	f.layout.place(refs.Header, 0, 80)
	f.layout.place(refs.Hero, 0, 400)
	if sec := doc.ElementByID("hero"); sec.Present() {
		f.layout.place(sec, 0, 600)
	}
	if sec := doc.ElementByID("about"); sec.Present() {
		f.layout.place(sec, 800, 400)
	}
	f.layout.place(refs.Stats, 1500, 400)
	if sec := doc.ElementByID("contact"); sec.Present() {
		f.layout.place(sec, 2400, 300)
	}

	f.eng = NewEngine(f.ctx)
	return f
}

// frame advances time by d and runs one rendered frame.
func (f *fixture) frame(d time.Duration) {
	f.now = f.now.Add(d)
	f.eng.Frame(f.now)
}

// frames runs n frames at the nominal 16ms interval.
func (f *fixture) frames(n int) {
	for range n {
		f.frame(16 * time.Millisecond)
	}
}

func (f *fixture) init(t *testing.T) {
	t.Helper()
	f.eng.Init(context.Background())
}
