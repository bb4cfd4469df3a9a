package ui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olivier-w/radial/internal/canvas"
	"github.com/olivier-w/radial/internal/config"
	"github.com/olivier-w/radial/internal/radial"
	"github.com/olivier-w/radial/internal/util"
	"github.com/sirupsen/logrus"
)

// Step the arrow keys move the progress by, as a fraction of the maximum.
const nudge = 0.05

// readout mirrors what the progress listener last reported. It lives behind
// a pointer because the listener outlives any single copy of Model.
type readout struct {
	progress float64
	fraction float64
	calls    int
}

// Model is the Bubbletea model hosting one radial view.
type Model struct {
	view    *radial.View
	canvas  *canvas.Braille
	anim    config.Animation
	log     logrus.FieldLogger
	profile termenv.Profile
	rng     *rand.Rand

	readout *readout
	bar     progress.Model
	keys    keyMap
	help    help.Model

	width    int
	height   int
	ticking  bool
	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithProfile sets the color profile used for the ring. Defaults to the
// profile detected from the environment.
func WithProfile(p termenv.Profile) Option {
	return func(m *Model) { m.profile = p }
}

// WithLogger routes debug logs. Logging is discarded by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Model) { m.log = l }
}

// WithRand fixes the source of random animation targets.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rng = r }
}

// New creates a Model around view and subscribes to its progress.
func New(view *radial.View, anim config.Animation, opts ...Option) Model {
	bar := progress.New(
		progress.WithScaledGradient("#00FF00", "#FF0000"),
		progress.WithoutPercentage(),
	)
	m := Model{
		view:    view,
		canvas:  canvas.NewBraille(0, 0),
		anim:    anim,
		profile: termenv.EnvColorProfile(),
		readout: &readout{},
		bar:     bar,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		m.log = l
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r := m.readout
	view.OnProgressChanged(func(p, fraction float64) {
		r.progress = p
		r.fraction = fraction
		r.calls++
		view.SetProgressColor(progressColorAt(clampFraction(fraction)))
	})
	return m
}

// RadialView returns the hosted radial view.
func (m Model) RadialView() *radial.View { return m.view }

// Restore applies a snapshot loaded by the host. Snapshots of another kind
// are ignored.
func (m Model) Restore(s radial.State) {
	if _, ok := s.(*radial.SavedState); !ok {
		m.log.WithField("type", fmt.Sprintf("%T", s)).Warn("ignoring unexpected state snapshot")
		return
	}
	m.view.RestoreState(s)
	m.log.WithField("progress", m.view.Progress()).Debug("restored progress")
}

// Snapshot captures the view state for the next run.
func (m Model) Snapshot() *radial.SavedState {
	return m.view.SaveState(nil)
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("radial")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if m.view.Tick(time.Time(msg)) {
			return m, frameCmd()
		}
		m.ticking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(min(msg.Width-8, 40), 10)
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.view.CancelAnimations()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Animate):
		target := float64(m.rng.IntN(101)) / 100 * m.view.MaxProgress()
		m.log.WithField("target", target).Debug("animate progress")
		m.view.AnimateProgress(target, m.anim.ProgressHooks()...)
		return m.startFrames()

	case key.Matches(msg, m.keys.Rotate):
		m.log.Debug("animate angle")
		m.view.AnimateAngle(m.anim.AngleHooks()...)
		return m.startFrames()

	case key.Matches(msg, m.keys.Less):
		m.slide(-nudge)
	case key.Matches(msg, m.keys.More):
		m.slide(nudge)
	case key.Matches(msg, m.keys.Gravity):
		m.view.SetIndicatorGravity(m.view.IndicatorGravity().Toggle())
	case key.Matches(msg, m.keys.Hide):
		m.view.SetHideIndicator(!m.view.HideIndicator())
	case key.Matches(msg, m.keys.RoundCap):
		m.view.SetProgressRoundedCap(!m.view.ProgressRoundedCap())
	}
	return m, nil
}

// slide moves progress like a slider would: the value changes without
// notifying the listener, so the readout is updated here.
func (m *Model) slide(delta float64) {
	fraction := clampFraction(clampFraction(m.view.Fraction()) + delta)
	m.view.SetProgressColor(progressColorAt(fraction))
	m.view.SetProgress(fraction*m.view.MaxProgress(), false)
	m.readout.progress = m.view.Progress()
	m.readout.fraction = fraction
}

func (m Model) startFrames() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, frameCmd()
}

// layout sizes the ring to the largest square the window can hold. Braille
// dots are roughly square on a 1:2 terminal cell, so a square in dots is
// square on screen.
func (m *Model) layout() {
	availCols := max(m.width-4, 0)
	availRows := max(m.height-8, 0)
	avail := min(availCols*2, availRows*4)

	spec := radial.MeasureSpec{Mode: radial.AtMost, Size: avail}
	if m.view.MinimumWidth() <= 0 {
		spec.Mode = radial.Exactly
	}
	size, _ := m.view.Measure(spec, radial.MeasureSpec{Mode: radial.AtMost, Size: availRows * 4})
	m.canvas.Resize(size/2, size/4)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.view.Draw(m.canvas)

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("radial") + "\n\n")
	ring := m.canvas.Render(m.profile)
	if ring != "" {
		b.WriteString(indent(ring, "  ") + "\n\n")
	}
	b.WriteString("  " + percentStyle.Render(util.FormatPercent(m.readout.progress)))
	b.WriteString("  " + m.bar.ViewAs(clampFraction(m.readout.fraction)) + "\n")
	b.WriteString("  " + statusStyle.Render(m.status()) + "\n\n")
	b.WriteString("  " + helpStyle.Render(m.help.View(m.keys)) + "\n")

	view := b.String()
	if m.height > 0 && lipgloss.Height(view) < m.height {
		view += strings.Repeat("\n", m.height-lipgloss.Height(view))
	}
	return view
}

func (m Model) status() string {
	parts := []string{
		"start " + util.FormatDegrees(m.view.StartAngle()),
		"gravity " + m.view.IndicatorGravity().String(),
	}
	if m.view.HideIndicator() {
		parts = append(parts, "indicator off")
	}
	if m.view.ProgressRoundedCap() {
		parts = append(parts, "round cap")
	} else {
		parts = append(parts, "square cap")
	}
	if m.view.Animating() {
		parts = append(parts, "animating")
	}
	return strings.Join(parts, "  ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
