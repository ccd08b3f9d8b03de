package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/session"
)

// helpHeight is the row kept under the game screen for the help line.
const helpHeight = 1

// Options carry the collaborators of a Model. All fields are optional.
type Options struct {
	Keeper   session.ScoreKeeper
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// resizer is implemented by games that can relayout without restarting.
type resizer interface {
	Resize(w, h int)
}

// loggerSetter is implemented by games that forward a logger to their sessions.
type loggerSetter interface {
	SetLogger(*log.Logger)
}

// Model is the Bubble Tea model for one game. It is event driven: the game
// only steps when a key arrives.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	keeper    session.ScoreKeeper
	logger    *log.Logger
	renderer  *Renderer
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	helpStyle lipgloss.Style
	gameState core.GameState
	quitting  bool
	saved     bool // the current session's result has been handed to the keeper
}

// NewModel loads the stored high score and starts the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if setter, ok := game.(loggerSetter); ok && opts.Logger != nil {
		setter.SetLogger(opts.Logger)
	}

	hs, err := session.LoadHighScore(opts.Keeper, game.ID())
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("could not load high score", "game", game.ID(), "error", err)
	}
	cfg.HighScore = hs

	screenH := max(cfg.ScreenH-helpHeight, 1)
	gameCfg := cfg
	gameCfg.ScreenH = screenH
	if err := game.Reset(gameCfg); err != nil {
		return Model{}, err
	}

	lr := opts.Renderer
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, screenH),
		keeper:    opts.Keeper,
		logger:    opts.Logger,
		renderer:  NewRenderer(lr),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		helpStyle: lr.NewStyle().Foreground(lipgloss.Color("241")),
		gameState: game.State(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey steps the game with the mapped action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	in := core.NewInputFrame()
	in.Set(action)
	m.gameState = m.game.Step(in).State

	if m.gameState.GameOver {
		m.saveResult()
	}
	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// restart begins a new session with a fresh seed and the updated high score.
func (m *Model) restart() {
	hs, err := session.LoadHighScore(m.keeper, m.game.ID())
	if err != nil {
		m.logWarn("could not load high score", err)
		hs = max(m.gameState.HighScore, m.gameState.Score)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	cfg.HighScore = hs
	cfg.ScreenH = m.screen.Height()
	if err := m.game.Reset(cfg); err != nil {
		m.logWarn("could not restart game", err)
		return
	}
	m.gameState = m.game.State()
	m.saved = false
}

// saveResult hands the finished session to the keeper once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true
	if err := session.Record(m.keeper, m.game.ID(), m.game.Result()); err != nil {
		m.logWarn("could not save result", err)
	}
}

func (m *Model) logWarn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "game", m.game.ID(), "error", err)
	}
}

// handleResize relayouts the game without restarting it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	screenH := max(msg.Height-helpHeight, 1)
	m.screen.Resize(msg.Width, screenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, screenH)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Result returns the session accounting of the current game.
func (m Model) Result() session.Result {
	return m.game.Result()
}

// Quitting reports whether the player quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run plays game in the local terminal and returns the final result.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (session.Result, error) {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return session.Result{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return session.Result{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return game.Result(), nil
}
