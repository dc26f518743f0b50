package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/expsearch/internal/search"
)

const (
	defaultDelay     = 500 * time.Millisecond
	defaultBarHeight = 12
)

type TickMsg time.Time

type Options struct {
	Delay     time.Duration
	Theme     string
	BarHeight int
}

// Model replays a finished search one snapshot per tick.
type Model struct {
	result    search.Result[int]
	theme     Theme
	delay     time.Duration
	barHeight int
	step      int
	running   bool
	showHelp  bool
	keys      keyMap
	help      help.Model
	progress  progress.Model
}

// NewModel prepares a replay of res starting at the first snapshot.
func NewModel(res search.Result[int], opts Options) Model {
	if opts.Delay <= 0 {
		opts.Delay = defaultDelay
	}
	if opts.BarHeight <= 0 {
		opts.BarHeight = defaultBarHeight
	}
	return Model{
		result:    res,
		theme:     GetTheme(opts.Theme),
		delay:     opts.Delay,
		barHeight: opts.BarHeight,
		running:   true,
		keys:      defaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.finished() {
				m.step = 0
			}
			m.running = !m.running
		case key.Matches(msg, m.keys.Prev):
			m.scrub(-1)
		case key.Matches(msg, m.keys.Next):
			m.scrub(1)
		case key.Matches(msg, m.keys.Restart):
			m.step = 0
			m.running = true
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-4, 10)
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	if m.finished() {
		m.running = false
		return
	}
	m.step++
	if m.finished() {
		m.running = false
	}
}

// scrub moves the play head and pauses playback.
func (m *Model) scrub(dir int) {
	m.running = false
	m.step = min(max(m.step+dir, 0), m.result.Trace.Len()-1)
}

func (m Model) finished() bool { return m.step >= m.result.Trace.Len()-1 }

// Step returns the index of the snapshot on screen.
func (m Model) Step() int { return m.step }

// Running reports whether playback advances on each tick.
func (m Model) Running() bool { return m.running }

// ThemeName returns the active theme.
func (m Model) ThemeName() string { return m.theme.Name }

// View renders the current snapshot.
func (m Model) View() string {
	tr := m.result.Trace

	var s strings.Builder
	s.WriteString(RenderFrame(m.theme, tr, m.step, m.barHeight))
	s.WriteString(Legend(m.theme) + "\n\n")

	pct := 1.0
	if tr.Len() > 1 {
		pct = float64(m.step) / float64(tr.Len()-1)
	}
	state := "PLAYING"
	if !m.running {
		state = "PAUSED"
	}
	if m.finished() {
		state = "FINISHED"
	}
	s.WriteString(fmt.Sprintf("%s  %s  %d/%d\n", m.progress.ViewAs(pct), state, m.step+1, tr.Len()))

	if m.finished() {
		s.WriteString("\n" + Summary(m.result) + "\n")
	}

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}
