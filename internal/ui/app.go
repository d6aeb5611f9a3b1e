package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/five82/gratail/internal/exchange"
	"github.com/five82/gratail/internal/logtail"
	"github.com/five82/gratail/internal/prefs"
	"github.com/five82/gratail/internal/raster"
	"github.com/five82/gratail/internal/snapshot"
	"github.com/five82/gratail/internal/state"
)

const (
	recentLines      = 200
	recentPaneHeight = 6 // border, title and four lines
	headerHeight     = 1
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    *exchange.Engine
	Store     *state.Store
	LogPath   string // source of the recent-commands pane
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	eng       *exchange.Engine
	store     *state.Store
	logPath   string
	pollTick  time.Duration
	prefs     prefs.Prefs
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Canvas state
	canvas *canvas
	panX   int // first visible pixel column
	panY   int // first visible cell row

	// Data state
	snapshot state.Snapshot
	notice   string

	// Recent commands pane
	showRecent bool
	recent     viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.Prefs.Theme)
	h := help.New()
	h.Styles = theme.HelpStyles()

	m := Model{
		ctx:        ctx,
		eng:        opts.Engine,
		store:      opts.Store,
		logPath:    opts.LogPath,
		pollTick:   pollTick,
		prefs:      opts.Prefs,
		prefsPath:  prefsPath,
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       h,
		showRecent: opts.Prefs.ShowRecent,
		recent:     viewport.New(0, recentPaneHeight-2),
	}
	if m.eng != nil {
		hdr := m.eng.Header()
		m.canvas = newCanvas(hdr.Width, hdr.Height)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.eng != nil {
		cmds = append(cmds, waitForFrameCmd(m.ctx, m.eng))
	}
	if m.showRecent {
		cmds = append(cmds, fetchRecentCmd(m.logPath))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.recent.Width = msg.Width
		m.ready = true
		m.clampPan()
		m.syncCanvas()
		return m, nil

	case frameMsg:
		m.syncCanvas()
		return m, waitForFrameCmd(m.ctx, m.eng)

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case recentMsg:
		m.handleRecent(msg)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.notice = "snapshot failed: " + msg.err.Error()
			log.Printf("snapshot failed: %v", msg.err)
		} else {
			m.notice = "saved " + msg.path
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	_, rows := m.canvasSize()
	var lines []string
	if m.canvas != nil {
		lines = m.canvas.lines(m.panY, rows)
	}
	for i := 0; i < rows; i++ {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}

	if m.showRecent {
		b.WriteString(m.renderRecent())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampPan()
		m.syncCanvas()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help.Styles = m.theme.HelpStyles()
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.pan(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.pan(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.pan(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.pan(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.ResetPan):
		m.panX, m.panY = 0, 0
		m.syncCanvas()
		return m, nil

	case key.Matches(msg, m.keys.Snapshot):
		if m.eng == nil {
			return m, nil
		}
		return m, saveSnapshotCmd(m.eng, m.prefs.SnapshotDirPath())

	case key.Matches(msg, m.keys.ToggleRecent):
		m.showRecent = !m.showRecent
		m.prefs.ShowRecent = m.showRecent
		m.savePrefs()
		m.clampPan()
		m.syncCanvas()
		if m.showRecent {
			return m, fetchRecentCmd(m.logPath)
		}
		return m, nil
	}

	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showRecent {
		cmds = append(cmds, fetchRecentCmd(m.logPath))
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) handleRecent(msg recentMsg) {
	if msg.err != nil {
		m.recent.SetContent(m.theme.Styles().DangerText.Render(msg.err.Error()))
		return
	}
	m.recent.SetContent(strings.Join(msg.lines, "\n"))
	m.recent.GotoBottom()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// canvasSize returns the terminal area left for pixels: columns and cell
// rows.
func (m Model) canvasSize() (int, int) {
	rows := m.height - headerHeight - m.footerHeight()
	if m.showRecent {
		rows -= recentPaneHeight
	}
	return max(m.width, 0), max(rows, 0)
}

func (m *Model) pan(dx, dy int) {
	m.panX += dx
	m.panY += dy
	m.clampPan()
	m.syncCanvas()
}

func (m *Model) clampPan() {
	if m.eng == nil {
		m.panX, m.panY = 0, 0
		return
	}
	hdr := m.eng.Header()
	cols, rows := m.canvasSize()
	m.panX = clamp(m.panX, 0, max(hdr.Width-cols, 0))
	m.panY = clamp(m.panY, 0, max(cellRows(hdr.Height)-rows, 0))
}

// syncCanvas pulls pending damage from the front buffer into the row cache.
func (m *Model) syncCanvas() {
	if m.canvas == nil || !m.ready {
		return
	}
	cols, _ := m.canvasSize()
	m.canvas.setWindow(m.panX, cols)
	m.eng.View(func(front *raster.Surface, damage raster.Rect) {
		m.canvas.refresh(front, damage)
	})
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type frameMsg struct{}

type recentMsg struct {
	lines []string
	err   error
}

type savedMsg struct {
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForFrameCmd blocks until the engine presents again.
func waitForFrameCmd(ctx context.Context, eng *exchange.Engine) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-eng.Updated():
			return frameMsg{}
		}
	}
}

func fetchRecentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, recentLines)
		return recentMsg{lines: lines, err: err}
	}
}

func saveSnapshotCmd(eng *exchange.Engine, dir string) tea.Cmd {
	return func() tea.Msg {
		path := snapshot.Name(dir, time.Now())
		return savedMsg{path: path, err: snapshot.WriteBMP(path, eng.Front())}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("terminal display needs a tty on stdout (try -display window or -once)")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
