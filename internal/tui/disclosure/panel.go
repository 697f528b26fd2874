// Package disclosure animates a collapsible region between zero height and
// its natural content height without knowing that height ahead of time.
// The open/close flag is owned by the caller (the accordion model); this
// package only animates whatever the flag says, one frame per tick message
// through the bubbletea event loop.
//
// The transition is a small state machine. Opening pins the region at
// height zero, measures the natural height of the current content, and
// grows toward it; once settled the height constraint is released so
// content that grows afterwards (a nested panel opening inside an open
// parent) is never clipped. Closing first pins the region at its current
// measured height, because an unconstrained region has no concrete value
// to animate from, then shrinks to zero. Re-entrant toggles always restart
// from the current height, so a close issued mid-open reverses smoothly.
package disclosure

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase is the transition state of a panel.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

// String returns the phase name for logs and test failures.
func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Measurer reports the natural rendered height of content, in rows. The
// production implementation reads the real rendered size via lipgloss;
// tests substitute a fake.
type Measurer interface {
	NaturalHeight(content string) int
}

// LipglossMeasurer measures content as lipgloss renders it.
type LipglossMeasurer struct{}

// NaturalHeight returns the row count of the rendered content. Empty
// content measures zero: a region with nothing in it has no height to
// animate, and the caller falls through to an instant state change.
func (LipglossMeasurer) NaturalHeight(content string) int {
	if content == "" {
		return 0
	}
	return lipgloss.Height(content)
}

// TickMsg advances one panel's transition by a single frame. Gen ties the
// message to the transition that scheduled it; a tick from a superseded
// transition is discarded, which is what keeps a pre-empted open/close
// from mutating state after a newer toggle took over.
type TickMsg struct {
	ID  string
	Gen int
}

// DefaultInterval is the frame interval used when none is configured.
const DefaultInterval = 25 * time.Millisecond

// Panel is one animated disclosure region. It is not safe for concurrent
// use; like the rest of the TUI it lives on the bubbletea event loop.
type Panel struct {
	id       string
	measurer Measurer
	interval time.Duration

	content string
	phase   Phase
	height  int // constrained height while animating; ignored when Open
	target  int
	gen     int
}

// Option configures a Panel.
type Option func(*Panel)

// WithMeasurer substitutes the height measurer, used by tests.
func WithMeasurer(m Measurer) Option {
	return func(p *Panel) { p.measurer = m }
}

// WithInterval sets the frame interval for transition ticks.
func WithInterval(d time.Duration) Option {
	return func(p *Panel) { p.interval = d }
}

// New returns a closed panel. The id must be unique among live panels; it
// routes tick messages back to their owner.
func New(id string, opts ...Option) *Panel {
	p := &Panel{
		id:       id,
		measurer: LipglossMeasurer{},
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the panel id.
func (p *Panel) ID() string { return p.id }

// Phase returns the current transition phase.
func (p *Panel) Phase() Phase { return p.phase }

// Gen returns the generation of the current transition. Tick messages
// carry the generation they were scheduled under; callers synthesizing
// ticks (tests) need the live value.
func (p *Panel) Gen() int { return p.gen }

// Settled reports whether no transition is in flight.
func (p *Panel) Settled() bool {
	return p.phase == PhaseClosed || p.phase == PhaseOpen
}

// SetContent replaces the content the panel animates over. Call it before
// SetOpen and before View on every frame; the panel re-measures from the
// latest content, which is how nested growth retargets an in-flight open.
func (p *Panel) SetContent(content string) {
	p.content = content
}

// Height returns the height the panel currently occupies: zero when
// closed, the natural content height when open, and the in-flight
// constrained height while animating.
func (p *Panel) Height() int {
	switch p.phase {
	case PhaseClosed:
		return 0
	case PhaseOpen:
		return p.measurer.NaturalHeight(p.content)
	default:
		return p.height
	}
}

// SetOpen drives the panel toward the requested state and returns the
// command that schedules the first frame, or nil when no transition is
// needed. Calling it with the state the panel is already in (or already
// heading to) is a no-op; the latest requested value always wins over any
// transition still in flight.
func (p *Panel) SetOpen(open bool) tea.Cmd {
	if open {
		return p.beginOpen()
	}
	return p.beginClose()
}

func (p *Panel) beginOpen() tea.Cmd {
	switch p.phase {
	case PhaseOpen:
		return nil
	case PhaseOpening:
		// Already heading there; refresh the target in case the content
		// grew since the transition started.
		p.target = p.measurer.NaturalHeight(p.content)
		return nil
	}

	natural := p.measurer.NaturalHeight(p.content)
	if natural <= 0 {
		// Nothing to animate: content is empty or not yet renderable.
		// Fail open to the final state with no transition.
		p.phase = PhaseOpen
		p.gen++
		return nil
	}

	if p.phase == PhaseClosed {
		// Pin at zero so the first frame grows from a concrete value.
		p.height = 0
	}
	// When pre-empting a close, p.height is already the live value and the
	// animation reverses from wherever it is.
	p.phase = PhaseOpening
	p.target = natural
	p.gen++
	return p.tick()
}

func (p *Panel) beginClose() tea.Cmd {
	switch p.phase {
	case PhaseClosed, PhaseClosing:
		return nil
	case PhaseOpen:
		// An open panel is unconstrained; pin it at its current measured
		// height so there is a concrete value to animate from.
		p.height = p.measurer.NaturalHeight(p.content)
	}

	if p.height <= 0 {
		p.phase = PhaseClosed
		p.gen++
		return nil
	}

	p.phase = PhaseClosing
	p.target = 0
	p.gen++
	return p.tick()
}

// Update consumes a TickMsg addressed to this panel and advances the
// transition one frame. Ticks for other panels or from superseded
// transitions are ignored. Returns the command scheduling the next frame,
// or nil once the transition settles.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != p.id || tick.Gen != p.gen {
		return nil
	}
	if p.Settled() {
		return nil
	}

	if p.phase == PhaseOpening {
		// Re-measure so content that grew mid-open raises the target.
		p.target = p.measurer.NaturalHeight(p.content)
	}

	p.height = step(p.height, p.target)
	if p.height != p.target {
		return p.tick()
	}

	if p.phase == PhaseOpening {
		// Settled open: release the constraint so nested content may grow
		// freely without being clipped.
		p.phase = PhaseOpen
	} else {
		p.phase = PhaseClosed
		p.height = 0
	}
	return nil
}

// step moves the current height one frame toward the target with an
// ease-out curve: a quarter of the remaining distance, at least one row.
func step(current, target int) int {
	delta := target - current
	if delta == 0 {
		return current
	}
	mag := delta
	if mag < 0 {
		mag = -mag
	}
	inc := mag / 4
	if inc < 1 {
		inc = 1
	}
	if delta > 0 {
		return current + inc
	}
	return current - inc
}

func (p *Panel) tick() tea.Cmd {
	id, gen := p.id, p.gen
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen}
	})
}

// View renders the content under the current height constraint: nothing
// when closed, the content untouched when open, and the first Height rows
// (padded when the content is shorter) while a transition is in flight.
func (p *Panel) View() string {
	switch p.phase {
	case PhaseClosed:
		return ""
	case PhaseOpen:
		return p.content
	}

	h := p.height
	if h <= 0 {
		return ""
	}
	lines := strings.Split(p.content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
