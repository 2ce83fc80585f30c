package viz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	stateMenu = iota
	stateSim
)

const customPrompt = "Please enter the numbers separated by ','"

var modeLabels = map[string]string{
	config.ModeRandom: "Sort Random Numbers",
	config.ModeCustom: "Sort Custom Numbers",
}

// App is the menu shell: pick random or custom input, pick an algorithm,
// watch it run, return to the menu.
type App struct {
	state, cursor int
	kinds         []sorting.Kind
	mode          string
	custom        string
	errMsg        string

	cfg   *config.Config
	rng   *rand.Rand
	speed *playback.Controller
	theme Theme
	live  Model

	width, height int
	help          help.Model
	log           logrus.FieldLogger
}

func NewApp(cfg *config.Config, log logrus.FieldLogger) *App {
	return &App{
		state:  stateMenu,
		kinds:  sorting.Kinds(),
		mode:   cfg.Input.Mode,
		custom: input.Format(input.Parse(cfg.Input.Values)),
		cfg:    cfg,
		rng:    cfg.Rand(),
		speed:  newSpeed(cfg.Speed),
		theme:  GetTheme(cfg.Theme),
		width:  defaultWidth,
		height: defaultHeight,
		help:   help.New(),
		log:    log,
	}
}

func newSpeed(speed float64) *playback.Controller {
	c := playback.New(sliderTrack(defaultWidth), playback.Size{})
	c.SetSpeed(speed)
	return c
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.speed.SetTrack(sliderTrack(msg.Width))
	case BackMsg:
		a.theme = a.live.theme
		a.state = stateMenu
		return a, nil
	case tea.KeyMsg:
		if a.state == stateMenu {
			return a, a.menuKey(msg)
		}
	}
	if a.state == stateSim {
		live, cmd := a.live.Update(msg)
		a.live = live.(Model)
		return a, cmd
	}
	return a, nil
}

// exitRow is the cursor position of the trailing Exit item.
func (a *App) exitRow() int { return len(a.kinds) }

func (a *App) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Quit):
		return tea.Quit
	case key.Matches(msg, menuKeys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if a.cursor < a.exitRow() {
			a.cursor++
		}
	case key.Matches(msg, menuKeys.Mode):
		if a.mode == config.ModeCustom {
			a.mode = config.ModeRandom
		} else {
			a.mode = config.ModeCustom
		}
	case key.Matches(msg, menuKeys.Theme):
		a.theme = NextTheme(a.theme)
	case key.Matches(msg, menuKeys.Erase):
		if a.mode == config.ModeCustom && len(a.custom) > 0 {
			a.custom = a.custom[:len(a.custom)-1]
		}
	case key.Matches(msg, menuKeys.Select):
		if a.cursor == a.exitRow() {
			return tea.Quit
		}
		return a.start(a.kinds[a.cursor])
	default:
		if a.mode == config.ModeCustom && msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if input.Accepts(r) {
					a.custom += string(r)
				}
			}
		}
	}
	return nil
}

// data resolves the sequence for the next run from the current mode.
func (a *App) data() ([]int, error) {
	if a.mode == config.ModeCustom {
		return input.Parse(a.custom), nil
	}
	return a.cfg.Data(a.rng)
}

func (a *App) start(kind sorting.Kind) tea.Cmd {
	data, err := a.data()
	if err != nil {
		a.errMsg = err.Error()
		return nil
	}
	live, err := NewModel(kind, data, a.speed, a.theme, a.cfg.Hold(), a.log)
	if err != nil {
		a.errMsg = err.Error()
		return nil
	}
	// Counters continue from the previous run so its pending timers never
	// match the new one.
	live.gen = a.live.gen + 1
	live.width, live.height = a.width, a.height
	live.help.Width = a.width
	a.speed.SetTrack(sliderTrack(a.width))
	a.live, a.state, a.errMsg = live, stateSim, ""
	return a.live.Init()
}

func (a *App) View() string {
	if a.state == stateSim {
		return a.live.View()
	}
	return a.viewMenu()
}

func (a *App) viewMenu() string {
	t := a.theme
	var b strings.Builder
	b.WriteString("\n\n    " + t.title().Render("SORTVIZ") + "\n    " + t.subtle().Render("sorting algorithm visualizer") + "\n    " + t.Separator(28) + "\n\n")

	for _, mode := range []string{config.ModeRandom, config.ModeCustom} {
		mark := "( )"
		style := t.dim()
		if mode == a.mode {
			mark, style = "(•)", t.selected()
		}
		b.WriteString("    " + style.Render(mark+" "+modeLabels[mode]) + "\n")
	}
	if a.mode == config.ModeCustom {
		b.WriteString("\n    " + t.subtle().Render(customPrompt) + "\n    " + t.accent().Render("> ") + t.value().Render(a.custom+"_") + "\n")
	}
	b.WriteString("\n")

	for i := 0; i <= a.exitRow(); i++ {
		name, desc := "Exit", ""
		if i < a.exitRow() {
			name, desc = a.kinds[i].String(), a.kinds[i].Info()
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", t.accent().Render("▸"), t.selected().Render(fmt.Sprintf("%-16s", name)), t.subtle().Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", t.dim().Render(fmt.Sprintf("%-16s", name)), t.dim().Render(desc)))
		}
	}

	if a.errMsg != "" {
		b.WriteString("\n    " + t.errorStyle().Render(a.errMsg) + "\n")
	}
	b.WriteString("\n    " + a.help.View(menuKeys) + "\n")
	return b.String()
}

// RunInteractive starts the menu shell.
func RunInteractive(cfg *config.Config, log logrus.FieldLogger) error {
	_, err := tea.NewProgram(NewApp(cfg, log), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Run plays a single sort and exits once the final frame has been held.
func Run(cfg *config.Config, kind sorting.Kind, data []int, log logrus.FieldLogger) error {
	m, err := NewModel(kind, data, newSpeed(cfg.Speed), GetTheme(cfg.Theme), cfg.Hold(), log)
	if err != nil {
		return err
	}
	m.quitOnDone = true
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
