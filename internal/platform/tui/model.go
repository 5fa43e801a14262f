package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Rows reserved around the playfield.
const (
	hudRows  = 1
	helpRows = 1
)

// ModelConfig wires optional collaborators into a Model.
type ModelConfig struct {
	Runtime core.RuntimeConfig

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Renderer styles output. Nil uses the local terminal.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes PNG frames. Empty disables it.
	ScreenshotDir string

	// OnTick is called with the time spent on each tick.
	OnTick func(time.Duration)

	// OnEnd is called once when a run ends, with its cause and score.
	OnEnd func(cause string, score int)
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     Game
	config   core.RuntimeConfig
	screen   *core.Screen
	surface  *render.ScreenSurface
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	screenshotDir string
	onTick        func(time.Duration)
	onEnd         func(cause string, score int)

	input    core.InputFrame
	state    core.GameState
	delay    time.Duration
	title    string
	status   string
	tooSmall bool
	quitting bool
}

// NewModel resets the game and creates a model around it.
func NewModel(game Game, cfg ModelConfig) (Model, error) {
	rt := cfg.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(rt); err != nil {
		return Model{}, fmt.Errorf("reset %s: %w", game.ID(), err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fieldW, fieldH, cellW, cellH := game.Field()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)

	m := Model{
		game:          game,
		config:        rt,
		screen:        screen,
		surface:       render.NewScreenSurface(screen, fieldW, fieldH, cellW, cellH),
		renderer:      NewScreenRenderer(cfg.Renderer),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		screenshotDir: cfg.ScreenshotDir,
		onTick:        cfg.OnTick,
		onEnd:         cfg.OnEnd,
		input:         core.NewInputFrame(),
		state:         game.State(),
		delay:         game.Delay(),
	}
	m.layout(rt.ScreenW, rt.ScreenH)
	m.draw()
	return m, nil
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), tickCmd(m.delay))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.draw()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// layout fits the playfield into a w x h terminal.
func (m *Model) layout(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.help.Width = w

	rows := max(h-helpRows, 0)
	m.screen.Resize(w, rows)

	fieldCols, fieldRows := m.surface.Size()
	m.tooSmall = w < fieldCols || rows < fieldRows+hudRows
	m.surface.SetOrigin(max((w-fieldCols)/2, 0), hudRows)
}

// handleTick runs one simulation step. The simulation is frozen while the
// terminal is too small to show the whole field.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		m.input.Clear()
		return m, tickCmd(m.delay)
	}

	start := time.Now()
	wasEnded := m.state.Ended()

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State
	m.delay = result.Delay

	if result.Ended {
		m.logger.Info("game ended", "game", m.game.ID(), "cause", result.Cause, "score", m.state.Score)
		if m.onEnd != nil {
			m.onEnd(result.Cause, m.state.Score)
		}
	}
	if result.Err != nil {
		m.logger.Error("step failed", "game", m.game.ID(), "err", result.Err)
		m.status = "restart failed"
	}
	if wasEnded && !m.state.Ended() {
		m.logger.Debug("game restarted", "game", m.game.ID())
		m.status = ""
	}

	prevTitle := m.title
	m.draw()

	if m.onTick != nil {
		m.onTick(time.Since(start))
	}

	cmds := []tea.Cmd{tickCmd(m.delay)}
	if m.title != prevTitle {
		cmds = append(cmds, tea.SetWindowTitle(m.title))
	}
	return m, tea.Batch(cmds...)
}

// draw renders the game, HUD and overlays into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()

	if err := m.game.Render(m.surface); err != nil {
		m.logger.Error("render failed", "game", m.game.ID(), "err", err)
	}
	m.title = m.surface.Title()

	if m.tooSmall {
		m.screen.Clear()
		cols, rows := m.surface.Size()
		m.drawCentered(core.NewRect(0, 0, m.screen.Width(), m.screen.Height()), []string{
			"Terminal too small",
			fmt.Sprintf("need %dx%d, have %dx%d", cols, rows+hudRows+helpRows, m.config.ScreenW, m.config.ScreenH),
		})
		return
	}

	field := m.surface.Bounds()
	hud := fmt.Sprintf("%s  Speed: %dms", m.title, m.delay.Milliseconds())
	if m.status != "" {
		hud += "  " + m.status
	}
	m.screen.DrawTextColor(field.X, 0, hud, core.ColorWhite, core.ColorNone)
	if m.status != "" {
		m.screen.DrawTextColor(field.X+utf8.RuneCountInString(hud)-utf8.RuneCountInString(m.status), 0, m.status, core.ColorGray, core.ColorNone)
	}

	switch {
	case m.state.GameOver:
		m.drawCentered(field, []string{"GAME OVER", m.title, "r restart  q quit"})
	case m.state.Won:
		m.drawCentered(field, []string{"YOU WIN", m.title, "r restart  q quit"})
	case m.state.Paused:
		m.drawCentered(field, []string{"PAUSED", "p resume"})
	}
}

// drawCentered draws padded lines in the middle of area. The first line is
// the headline.
func (m *Model) drawCentered(area core.Rect, lines []string) {
	y := area.Y + area.H/2 - len(lines)/2
	for i, line := range lines {
		line = " " + line + " "
		x := area.X + (area.W-utf8.RuneCountInString(line))/2
		fg := core.ColorWhite
		if i == 0 {
			fg = core.ColorYellow
		}
		m.screen.DrawTextColor(x, y+i, line, fg, core.ColorBlack)
	}
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.status = "screenshots disabled"
		m.draw()
		return
	}

	fieldW, fieldH, _, _ := m.game.Field()
	img := render.NewImageSurface(fieldW, fieldH)
	if err := m.game.Render(img); err != nil {
		m.logger.Warn("screenshot render failed", "err", err)
		return
	}

	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.png", m.game.ID(), time.Now().Format("20060102_150405.000")))
	err := os.MkdirAll(m.screenshotDir, 0o755)
	if err == nil {
		err = img.SavePNG(path)
	}
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
	} else {
		m.logger.Info("screenshot saved", "path", path)
		m.status = "saved " + filepath.Base(path)
	}
	m.draw()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game in the local terminal.
func Run(game Game, cfg ModelConfig) error {
	model, err := NewModel(game, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
