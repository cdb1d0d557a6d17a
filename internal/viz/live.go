package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/input"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/telemetry"
)

const (
	hudWidth      = 34
	defaultWidth  = 80
	defaultHeight = 24

	// pickRadius is the click tolerance around a body centre, in sub-pixels.
	pickRadius = 6
)

var spawnPalette = []string{"#ff6b6b", "#feca57", "#48dbfb", "#1dd1a1", "#ff9ff3", "#c8d6e5"}

// TickMsg fires a simulation step; FrameMsg fires a redraw. They run on
// separate cadences and meet only through Clock.Snapshot.
type (
	TickMsg  time.Time
	FrameMsg time.Time
)

// Options configure the live viewer. Zero values fall back to defaults.
type Options struct {
	Title              string
	Scale              float64
	FPS                int
	SpawnMass          float64
	SpawnVelocityScale float64
	History            int
	Theme              string
	Keymap             input.Keymap
	Logger             *slog.Logger

	// Rebuild returns fresh starting bodies for the reset key. Without it
	// reset clears the scene.
	Rebuild func() ([]*physics.Body, error)
}

// Model is the bubbletea program for the live viewer. The simulation clock
// is stepped from TickMsg on the bubbletea goroutine, so input, stepping
// and drawing never run concurrently.
type Model struct {
	clock    *sim.Clock
	opts     Options
	logger   *slog.Logger
	viewport *Viewport
	canvas   *Canvas
	tracker  *input.Tracker
	history  *telemetry.Recorder
	theme    Theme
	styles   hudStyles

	width, height int
	frame         sim.Frame
	baseScale     float64
	spawned       int
	showHelp      bool
	status        string
	view          string

	frames    int
	fpsWindow time.Time
	fps       float64
}

func NewModel(clock *sim.Clock, opts Options) Model {
	if opts.Scale <= 0 {
		opts.Scale = 0.2
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.SpawnMass <= 0 {
		opts.SpawnMass = 5
	}
	if opts.SpawnVelocityScale <= 0 {
		opts.SpawnVelocityScale = 0.05
	}
	if opts.History < 2 {
		opts.History = 240
	}
	if opts.Keymap == nil {
		opts.Keymap = input.DefaultKeymap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	baseScale := clock.TimeScale()
	if baseScale == 0 {
		baseScale = 1
	}

	history := telemetry.NewRecorder(1, opts.History)
	clock.AddObserver(history)

	theme := GetTheme(opts.Theme)
	m := Model{
		clock:     clock,
		opts:      opts,
		logger:    logger,
		viewport:  NewViewport(defaultWidth*2, defaultHeight*4, opts.Scale, opts.FPS),
		canvas:    NewCanvas(defaultWidth, defaultHeight),
		tracker:   input.NewTracker(),
		history:   history,
		theme:     theme,
		styles:    newHUDStyles(theme),
		width:     defaultWidth + hudWidth,
		height:    defaultHeight,
		baseScale: baseScale,
		frame:     clock.Snapshot(),
	}
	m.redraw()
	return m
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.clock.Interval()), frameCmd(m.opts.FPS))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.clock.Step()
		return m, tickCmd(m.clock.Interval())

	case FrameMsg:
		m.viewport.Update()
		m.frame = m.clock.Snapshot()
		m.countFrame(time.Time(msg))
		m.redraw()
		return m, frameCmd(m.opts.FPS)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.redraw()

	case tea.KeyMsg:
		if cmd := m.opts.Keymap.Lookup(msg.String()); cmd != nil {
			return m.apply(cmd)
		}

	case tea.MouseMsg:
		var quit tea.Cmd
		for _, cmd := range m.tracker.Handle(pointer(msg)) {
			var c tea.Cmd
			m, c = m.apply(cmd)
			if c != nil {
				quit = c
			}
		}
		return m, quit
	}
	return m, nil
}

func (m Model) View() string { return m.view }

// Frame returns the most recent snapshot drawn by the viewer.
func (m Model) Frame() sim.Frame { return m.frame }

func (m Model) Viewport() *Viewport { return m.viewport }

func (m Model) apply(cmd input.Command) (Model, tea.Cmd) {
	switch cmd := cmd.(type) {
	case input.Quit:
		return m, tea.Quit
	case input.Pan:
		m.viewport.Pan(cmd.DX, cmd.DY)
	case input.Zoom:
		m.viewport.Zoom(cmd.Steps, cmd.Coarse)
	case input.TogglePause:
		paused := m.clock.TogglePause()
		m.logger.Debug("pause toggled", "paused", paused)
	case input.ScaleTime:
		m.clock.SetTimeScale(m.clock.TimeScale() * cmd.Factor)
	case input.ResetTime:
		m.clock.SetTimeScale(m.baseScale)
	case input.CycleSelection:
		m.clock.Submit(sim.CycleSelection{})
	case input.ClearScene:
		m.clock.Submit(sim.Clear{})
		m.history.Reset()
		m.status = "scene cleared"
	case input.ResetScene:
		m.reset()
	case input.CycleTheme:
		m.theme = NextTheme(m.theme)
		m.styles = newHUDStyles(m.theme)
	case input.ToggleHelp:
		m.showHelp = !m.showHelp
	case input.Pick:
		world := m.viewport.ScreenToWorld(cmd.At)
		m.clock.Submit(sim.SelectNearest{At: world, Within: pickRadius / m.viewport.Scale()})
	case input.Spawn:
		m.spawn(cmd)
	}
	m.redraw()
	return m, nil
}

func (m *Model) spawn(cmd input.Spawn) {
	pos := m.viewport.ScreenToWorld(cmd.From)
	drag := cmd.To.Sub(cmd.From).Div(m.viewport.Scale())
	vel := drag.Mul(m.opts.SpawnVelocityScale)

	m.spawned++
	body, err := physics.NewBody(m.opts.SpawnMass, pos, vel,
		physics.Named(fmt.Sprintf("spawn-%d", m.spawned)),
		physics.Colored(spawnPalette[(m.spawned-1)%len(spawnPalette)]))
	if err != nil {
		m.logger.Warn("spawn rejected", "err", err)
		m.status = err.Error()
		return
	}
	m.clock.Submit(sim.Spawn{Body: body})
	m.logger.Debug("spawn queued", "pos", pos, "vel", vel)
}

func (m *Model) reset() {
	var bodies []*physics.Body
	if m.opts.Rebuild != nil {
		var err error
		bodies, err = m.opts.Rebuild()
		if err != nil {
			m.logger.Error("reset failed", "err", err)
			m.status = err.Error()
			return
		}
	}
	m.clock.Submit(sim.Reset{Bodies: bodies})
	m.clock.SetTimeScale(m.baseScale)
	m.viewport.Reset(m.opts.Scale)
	m.history.Reset()
	m.spawned = 0
	m.status = "scene reset"
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols := max(w-hudWidth-1, 10)
	rows := max(h, 4)
	m.canvas.Resize(cols, rows)
	m.viewport.Resize(m.canvas.PixelWidth(), m.canvas.PixelHeight())
}

func (m *Model) countFrame(now time.Time) {
	if m.fpsWindow.IsZero() {
		m.fpsWindow = now
	}
	m.frames++
	if elapsed := now.Sub(m.fpsWindow); elapsed >= time.Second {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.fpsWindow = now
	}
}

// pointer maps a terminal cell event to the centre of that cell in
// sub-pixels.
func pointer(msg tea.MouseMsg) input.Pointer {
	p := input.Pointer{X: msg.X*2 + 1, Y: msg.Y*4 + 2, Shift: msg.Shift}

	switch msg.Button {
	case tea.MouseButtonLeft:
		p.Button = input.ButtonLeft
	case tea.MouseButtonMiddle:
		p.Button = input.ButtonMiddle
	case tea.MouseButtonRight:
		p.Button = input.ButtonRight
	case tea.MouseButtonWheelUp:
		p.Button = input.ButtonWheelUp
	case tea.MouseButtonWheelDown:
		p.Button = input.ButtonWheelDown
	}

	switch msg.Action {
	case tea.MouseActionPress:
		p.Action = input.Press
	case tea.MouseActionRelease:
		p.Action = input.Release
	case tea.MouseActionMotion:
		p.Action = input.Motion
	}
	return p
}

func (m *Model) redraw() {
	m.draw()
	m.view = lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(), m.styles.panel.Render(m.hud()))
}

func (m *Model) draw() {
	m.canvas.Clear()
	vp := m.viewport
	w, h := float64(vp.Width), float64(vp.Height)

	for _, b := range m.frame.Bodies {
		p := vp.WorldToScreen(b.Position)
		halo := HaloRadius(b.Mass, vp.Scale())
		if p.X+halo < 0 || p.Y+halo < 0 || p.X-halo > w || p.Y-halo > h {
			continue
		}
		m.canvas.SetPen(b.Color)
		m.canvas.StrokeCircle(p.X, p.Y, halo)
		m.canvas.FillCircle(p.X, p.Y, CoreRadius(b.Mass, vp.Scale()))
		if b.Selected {
			m.canvas.SetPen(string(m.theme.Selection))
			m.canvas.StrokeCircle(p.X, p.Y, halo+2)
		}
	}

	if from, to, ok := m.tracker.Dragging(); ok {
		m.canvas.SetPen(string(m.theme.Preview))
		m.canvas.StrokeCircle(from.X, from.Y, CoreRadius(m.opts.SpawnMass, vp.Scale()))
		m.canvas.DrawLine(int(from.X), int(from.Y), int(to.X), int(to.Y))
	}
	m.canvas.SetPen("")
}

func (m *Model) hud() string {
	st := m.styles
	f := m.frame
	var s strings.Builder

	title := "GRAVSIM"
	if m.opts.Title != "" {
		title += " · " + strings.ToUpper(m.opts.Title)
	}
	s.WriteString(st.title.Render(GradientText(title, m.theme.Title, m.theme.TitleEnd)) + "\n")

	if m.clock.Paused() {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", f.Tick))
	row("Time", fmt.Sprintf("×%.2f", m.clock.TimeScale()))
	row("Bodies", fmt.Sprintf("%d", f.Stats.Bodies))
	row("Mass", fmt.Sprintf("%.1f", f.Stats.TotalMass))
	row("Energy", formatQuantity(f.Stats.KineticEnergy))
	row("Zoom", fmt.Sprintf("%.3g", m.viewport.Scale()))
	row("Camera", fmt.Sprintf("%.0f, %.0f", -m.viewport.Offset.X, -m.viewport.Offset.Y))
	row("FPS", fmt.Sprintf("%.0f", m.fps))

	if b, ok := selectedBody(f.Bodies); ok {
		name := b.Name
		if name == "" {
			name = "(unnamed)"
		}
		s.WriteString("\n")
		row("Selected", name)
		row("  mass", fmt.Sprintf("%.1f", b.Mass))
		row("  speed", fmt.Sprintf("%.2f", b.Velocity.Len()))
		row("  at", fmt.Sprintf("%.0f, %.0f", b.Position.X, b.Position.Y))
	}

	if energy := m.history.Series("energy"); len(energy) >= 2 {
		chart := asciigraph.Plot(energy,
			asciigraph.Height(5),
			asciigraph.Width(hudWidth-16),
			asciigraph.Caption("kinetic energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
		s.WriteString(st.label.Render("Bodies") + Sparkline(m.history.Series("bodies"), hudWidth-16) + "\n")
	}

	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}

	if m.showHelp {
		s.WriteString(st.help.Render(helpText(st)))
	} else {
		s.WriteString(st.help.Render(st.key.Render("?") + " help  " + st.key.Render("q") + " quit"))
	}
	return s.String()
}

func helpText(st hudStyles) string {
	keys := [][2]string{
		{"space", "pause"},
		{"+ -", "time scale"},
		{"0", "reset time"},
		{"[ ]", "zoom ({ } coarse)"},
		{"arrows", "pan"},
		{"tab", "cycle selection"},
		{"r", "reset scene"},
		{"c", "clear scene"},
		{"t", "theme"},
		{"drag", "pan, click selects"},
		{"rdrag", "spawn body"},
		{"wheel", "zoom (shift coarse)"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(st.key.Render(fmt.Sprintf("%-7s", k[0])) + k[1] + "\n")
	}
	return b.String()
}

func selectedBody(bodies []physics.BodyView) (physics.BodyView, bool) {
	for _, b := range bodies {
		if b.Selected {
			return b, true
		}
	}
	return physics.BodyView{}, false
}

func formatQuantity(v float64) string {
	switch a := math.Abs(v); {
	case a >= 1e6:
		return fmt.Sprintf("%.3e", v)
	case a >= 100:
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
