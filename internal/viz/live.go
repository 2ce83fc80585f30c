package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statsWidth    = 36
	chartHeight   = 5
	// headerRows is everything above the bars: title, slider, speed, rule.
	headerRows = 4
)

type stepMsg struct{ gen int }

type holdDoneMsg struct{ gen int }

// BackMsg is emitted when the live view wants to return to the menu.
type BackMsg struct{}

// Model plays one sort at the pace set by the speed slider. Steps are
// scheduled with tea.Tick; a generation counter drops ticks that belong to
// a paused or abandoned run.
type Model struct {
	kind       sorting.Kind
	engine     sorting.Engine
	snap       sorting.Snapshot
	speed      *playback.Controller
	theme      Theme
	metrics    []metrics.Metric
	inversions []float64
	steps      int
	gen        int
	paused     bool
	finished   bool
	hold       time.Duration
	quitOnDone bool

	width, height int
	help          help.Model
	log           logrus.FieldLogger
}

// NewModel prepares a run of kind over data. The controller is shared with
// the caller so the chosen speed survives between runs.
func NewModel(kind sorting.Kind, data []int, speed *playback.Controller, theme Theme, hold time.Duration, log logrus.FieldLogger) (Model, error) {
	engine, err := sorting.New(kind, data)
	if err != nil {
		return Model{}, err
	}
	ms := metrics.Default()
	inv := float64(metrics.Count(data))
	m := Model{
		kind:       kind,
		engine:     engine,
		speed:      speed,
		theme:      theme,
		metrics:    ms,
		inversions: []float64{inv},
		hold:       hold,
		width:      defaultWidth,
		height:     defaultHeight,
		help:       help.New(),
		log:        log.WithField("algorithm", kind.Slug()),
	}
	m.log.WithField("n", engine.Len()).Info("run started")
	m.advance()
	return m, nil
}

// Init waits out the delay after the first frame, or starts the hold when
// that frame was already the last.
func (m Model) Init() tea.Cmd {
	if m.finished {
		return m.holdTimer()
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.speed.DelayDuration(), func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (m Model) holdTimer() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.hold, func(time.Time) tea.Msg { return holdDoneMsg{gen: gen} })
}

func (m Model) back() tea.Cmd {
	if m.quitOnDone {
		return tea.Quit
	}
	return func() tea.Msg { return BackMsg{} }
}

// Update handles input events and advances the sort.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		if msg.gen != m.gen || m.paused || m.finished {
			return m, nil
		}
		if m.advance() {
			return m, m.holdTimer()
		}
		return m, m.tick()

	case holdDoneMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.back()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.speed.SetTrack(sliderTrack(msg.Width))

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok && m.speed.HandlePointer(ev) && ev.Kind == playback.Release {
			m.log.WithField("speed", m.speed.Speed()).Debug("speed changed")
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, liveKeys.Quit):
		m.gen++
		return m, tea.Quit
	case key.Matches(msg, liveKeys.Back):
		m.gen++
		m.log.WithField("steps", m.steps).Info("run abandoned")
		return m, m.back()
	case key.Matches(msg, liveKeys.Pause):
		if m.finished {
			return m, nil
		}
		m.paused = !m.paused
		m.gen++
		if !m.paused {
			return m, m.tick()
		}
	case key.Matches(msg, liveKeys.Step):
		if m.paused && !m.finished && m.advance() {
			return m, m.holdTimer()
		}
	case key.Matches(msg, liveKeys.Slower):
		m.speed.Nudge(-m.speed.Track().W / 20)
	case key.Matches(msg, liveKeys.Faster):
		m.speed.Nudge(m.speed.Track().W / 20)
	case key.Matches(msg, liveKeys.Theme):
		m.theme = NextTheme(m.theme)
	case key.Matches(msg, liveKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// advance pulls one snapshot and reports whether the run just finished.
func (m *Model) advance() bool {
	if !m.engine.HasNext() {
		return m.finish()
	}
	snap, ok := m.engine.Next()
	if !ok {
		return m.finish()
	}
	m.snap = snap
	m.steps++
	for _, mt := range m.metrics {
		mt.Observe(snap)
	}
	m.inversions = append(m.inversions, float64(metrics.Count(snap.Values)))
	if !m.engine.HasNext() {
		return m.finish()
	}
	return false
}

func (m *Model) finish() bool {
	m.finished = true
	m.log.WithField("steps", m.steps).Info("run finished")
	return true
}

// pointerEvent maps terminal mouse input onto the slider's event model.
// Only the left button starts a drag; any release ends it.
func pointerEvent(msg tea.MouseMsg) (playback.Event, bool) {
	x, y := float64(msg.X), float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return playback.Event{}, false
		}
		return playback.Event{Kind: playback.Press, X: x, Y: y}, true
	case tea.MouseActionRelease:
		return playback.Event{Kind: playback.Release, X: x, Y: y}, true
	case tea.MouseActionMotion:
		return playback.Event{Kind: playback.Move, X: x, Y: y}, true
	}
	return playback.Event{}, false
}

func (m Model) status() string {
	switch {
	case m.finished:
		return m.theme.accent().Render("SORTED")
	case m.paused:
		return m.theme.accent().Render("PAUSED")
	}
	return m.theme.subtle().Render("RUNNING")
}

// View renders the live screen. The slider must stay on sliderRow so mouse
// coordinates line up with the controller's track.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(" " + m.theme.title().Render(strings.ToUpper(m.kind.String())) + "  " + m.status() + "\n")
	b.WriteString(renderSlider(m.speed, m.theme) + "\n")
	b.WriteString(strings.Repeat(" ", sliderMargin) + m.theme.value().Render(speedLabel(m.speed)) + "\n")
	b.WriteString(m.theme.Separator(m.width) + "\n")

	barsW := max(m.width-statsWidth-4, 10)
	barsH := max(m.height-headerRows-4, 4)
	bars := BarRenderer{Width: barsW, Height: barsH, Theme: m.theme}
	view := lipgloss.NewStyle().Padding(0, 1).Render(bars.Render(m.snap.Values, m.snap.Boundary, m.snap.Active))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, view, m.viewStats()) + "\n")

	b.WriteString(" " + m.help.View(liveKeys))
	return b.String()
}

func (m Model) viewStats() string {
	var s strings.Builder
	row := func(name, val string) {
		s.WriteString(m.theme.label().Render(name) + m.theme.value().Render(val) + "\n")
	}
	row("n", fmt.Sprintf("%d", len(m.snap.Values)))
	for _, mt := range m.metrics {
		row(mt.Name(), fmt.Sprintf("%.0f", mt.Value()))
	}
	row("boundary", fmt.Sprintf("%d", m.snap.Boundary))
	if chart := export.Chart(m.inversions, "inversions", statsWidth-10, chartHeight); chart != "" {
		s.WriteString("\n" + m.theme.dim().Render(chart))
	}
	return m.theme.panel().Width(statsWidth).Render(s.String())
}
