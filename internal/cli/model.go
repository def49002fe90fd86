package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/page"
)

const (
	headerRows = 2 // bar + separator
	statusRows = 2 // separator + hints
	logRows    = 6
)

// frameMsg drives the engine's rendered-frame work at ~60fps while any
// animation or deferred task is outstanding.
type frameMsg time.Time

// reloadMsg reports that the watched page file changed on disk.
type reloadMsg struct{ path string }

func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// keyMap holds the preview's key bindings.
type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Menu     key.Binding
	Theme    key.Binding
	Focus    key.Binding
	FocusRev key.Binding
	Activate key.Binding
	Escape   key.Binding
	Logs     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " ")),
		Top:      key.NewBinding(key.WithKeys("g", "home")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusRev: key.NewBinding(key.WithKeys("shift+tab")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Logs:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
	}
}

// hostModel is the root bubbletea Model: it owns the page document, the
// behavior engine, and the mapping between terminal cells and page pixels.
type hostModel struct {
	app  *App
	pg   *content.Page
	keys keyMap

	eng    *page.Engine
	engCtx *page.Context
	layout *pageLayout
	signal *termSignal

	vp       viewport.Model
	width    int
	height   int
	ready    bool
	ticking  bool
	showLog  bool
	quitting bool

	watcher *content.Watcher
}

func newHostModel(app *App, pg *content.Page) *hostModel {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false // scroll input goes through the engine
	return &hostModel{
		app:  app,
		pg:   pg,
		keys: newKeyMap(),
		vp:   vp,
	}
}

// buildEngine constructs a fresh engine around the current document.
func (m *hostModel) buildEngine() {
	m.layout = newPageLayout(m.app.Cfg.RowPx)
	m.signal = newTermSignal()
	m.engCtx = &page.Context{
		Doc:    m.pg.Doc,
		Refs:   page.ResolveRefs(m.pg.Doc),
		Store:  m.app.Prefs,
		Signal: m.signal,
		Layout: m.layout,
		Clock:  page.NewClock(time.Now()),
		Log:    m.app.Log,
	}
	m.eng = page.NewEngine(m.engCtx)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m *hostModel) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentRows()

		if !m.ready {
			m.buildEngine()
			m.eng.Resize(m.pagePxWidth())
			m.refresh() // layout must exist before the initial visibility pass
			m.eng.Init(context.Background())
			m.ready = true
		} else {
			m.eng.Resize(m.pagePxWidth())
		}
		m.refresh()
		return m, m.ensureTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.eng.ScrollBy(-3 * m.app.Cfg.RowPx)
		case tea.MouseButtonWheelDown:
			m.eng.ScrollBy(3 * m.app.Cfg.RowPx)
		}
		m.refresh()
		return m, m.ensureTick()

	case frameMsg:
		m.ticking = false
		if !m.ready {
			return m, nil
		}
		m.eng.Frame(time.Time(msg))
		m.refresh()
		return m, m.ensureTick()

	case reloadMsg:
		return m, m.reload()

	case tea.FocusMsg:
		if m.ready {
			m.eng.SetHidden(false)
			m.refresh()
		}
		return m, nil

	case tea.BlurMsg:
		if m.ready {
			m.eng.SetHidden(true)
		}
		return m, nil
	}

	return m, nil
}

func (m *hostModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	rowPx := m.app.Cfg.RowPx
	switch {
	case key.Matches(msg, m.keys.Up):
		m.eng.ScrollBy(-3 * rowPx)
	case key.Matches(msg, m.keys.Down):
		m.eng.ScrollBy(3 * rowPx)
	case key.Matches(msg, m.keys.PageUp):
		m.eng.ScrollBy(-m.layout.ViewportHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.eng.ScrollBy(m.layout.ViewportHeight())
	case key.Matches(msg, m.keys.Top):
		m.eng.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.eng.ScrollTo(m.layout.DocumentHeight())
	case key.Matches(msg, m.keys.Menu):
		m.eng.Click(context.Background(), m.engCtx.Refs.NavToggle)
	case key.Matches(msg, m.keys.Theme):
		if toggles := m.engCtx.Refs.ThemeToggles; len(toggles) > 0 {
			m.eng.Click(context.Background(), toggles[0])
		}
	case key.Matches(msg, m.keys.Focus):
		if !m.eng.HandleKey(page.KeyTab) {
			m.cycleFocus(1)
		}
	case key.Matches(msg, m.keys.FocusRev):
		if !m.eng.HandleKey(page.KeyShiftTab) {
			m.cycleFocus(-1)
		}
	case key.Matches(msg, m.keys.Activate):
		m.eng.Click(context.Background(), m.eng.Focused())
	case key.Matches(msg, m.keys.Escape):
		m.eng.HandleKey(page.KeyEscape)
	case key.Matches(msg, m.keys.Logs):
		m.showLog = !m.showLog
	}

	m.refresh()
	return m, m.ensureTick()
}

// cycleFocus is the default focus movement when the drawer's trap doesn't
// consume Tab: cycle through the page's focusable elements.
func (m *hostModel) cycleFocus(dir int) {
	focusables := m.pg.Doc.Body().Focusables()
	if len(focusables) == 0 {
		return
	}
	idx := 0
	for i, el := range focusables {
		if el == m.eng.Focused() {
			idx = (i + dir + len(focusables)) % len(focusables)
			break
		}
	}
	m.engCtx.SetFocus(focusables[idx])
}

// ensureTick keeps exactly one frame timer in flight while the engine has
// pending work.
func (m *hostModel) ensureTick() tea.Cmd {
	if m.ticking || !m.ready || !m.eng.Active() {
		return nil
	}
	m.ticking = true
	return frameTick()
}

// refresh re-renders the body into the viewport and syncs the scroll offset.
func (m *hostModel) refresh() {
	pal := activePalette(m.eng.Theme.Dark())
	body := renderBody(m.pg.Doc, m.engCtx.Refs, pal, m.eng.Focused(),
		m.width, m.contentRows(), m.layout)
	m.vp.SetContent(body)
	m.vp.SetYOffset(m.eng.ScrollTop() / m.app.Cfg.RowPx)
}

func (m *hostModel) reload() tea.Cmd {
	pg, err := content.Load(m.pg.Path)
	if err != nil {
		m.app.Log.Warn("reload failed", "err", err)
		return m.waitForReload()
	}
	m.app.Log.Info("page reloaded", "path", pg.Path)
	pg.CheckAssets(func(src string) {
		m.app.Log.Warn("resource failed to load", "src", src)
	})

	m.pg = pg
	m.buildEngine()
	m.eng.Resize(m.pagePxWidth())
	m.refresh()
	m.eng.Init(context.Background())
	m.refresh()
	return tea.Batch(m.waitForReload(), m.ensureTick())
}

func (m *hostModel) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-m.watcher.C
		if !ok {
			return nil
		}
		return reloadMsg{path: path}
	}
}

func (m *hostModel) contentRows() int {
	rows := m.height - headerRows - statusRows
	if m.showLog {
		rows -= logRows
	}
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *hostModel) pagePxWidth() int {
	return m.width * m.app.Cfg.ColPx
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m *hostModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}

	pal := activePalette(m.eng.Theme.Dark())
	refs := m.engCtx.Refs
	desktop := m.pagePxWidth() > page.DesktopBreakpoint

	var sections []string
	sections = append(sections,
		renderHeader(m.pg.Doc, refs, pal, m.eng.Focused(), m.width, desktop))

	if refs.NavPanel.HasClass("active") {
		sections = append(sections,
			renderDrawer(refs, pal, m.eng.Focused(), m.width, m.contentRows()))
	} else {
		sections = append(sections, m.vp.View())
	}

	if m.showLog {
		sections = append(sections, m.renderLog(pal))
	}

	sections = append(sections, m.renderStatusBar(pal))

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m *hostModel) renderLog(pal palette) string {
	lines := m.app.Ring.Tail(logRows - 1)
	for i, l := range lines {
		lines[i] = pal.muted().Render(l)
	}
	head := pal.heading().Render("log")
	return head + "\n" + strings.Join(lines, "\n")
}

func (m *hostModel) renderStatusBar(pal palette) string {
	hints := []string{
		pal.muted().Render("↑↓: scroll"),
		pal.muted().Render("tab: focus"),
		pal.muted().Render("enter: activate"),
		pal.muted().Render("m: menu"),
		pal.muted().Render("t: theme"),
		pal.muted().Render("l: logs"),
		pal.muted().Render("q: quit"),
	}
	if m.eng.Nav.State() == page.NavOpen {
		hints = append(hints, pal.muted().Render("esc: close"))
	}

	pos := fmt.Sprintf("[%d%%]", int(m.vp.ScrollPercent()*100))
	hints = append(hints, pal.muted().Render(pos))

	sep := pal.muted().Render(strings.Repeat("─", max(m.width, 1)))
	return sep + "\n" + strings.Join(hints, "  ")
}
