package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipedeck/internal/gesture"
	"swipedeck/internal/models"
)

// springRestVel is the velocity under which a spring is considered settled
const springRestVel = 0.5

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case settleMsg:
		return m.handleSettle(msg)

	case frameMsg:
		return m.handleFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.SwipeLeft):
		// The button path: explicit direction, no threshold decision
		return m.commitCard(models.DirectionLeft)

	case key.Matches(msg, m.keys.SwipeRight):
		return m.commitCard(models.DirectionRight)

	case key.Matches(msg, m.keys.NextImage):
		if !m.controller.Exiting() {
			m.controller.Pager().Next()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevImage):
		if !m.controller.Exiting() {
			m.controller.Pager().Prev()
		}
		return m, nil
	}

	return m, nil
}

// handleMouse turns raw mouse events into the drag gesture. A press
// anchors the drag, motion while pressed moves the tracker, and release
// either pages the carousel (press+release without real movement on the
// image pane) or runs the swipe decision.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// A card that is animating out no longer accepts input
	if m.controller.Exhausted() || m.controller.Exiting() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.dragging = true
		m.animating = false
		m.springVel = 0
		m.anchorX = msg.X - int(math.Round(m.controller.Tracker().Offset()/m.config.Swipe.DragScale))
		m.pressedImage = m.inImagePane(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.controller.Tracker().SetOffset(float64(msg.X-m.anchorX) * m.config.Swipe.DragScale)
		return m, nil

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false

		// A press that never really moved is a click, not a drag
		offset := m.controller.Tracker().Offset()
		if m.pressedImage && math.Abs(offset) < m.config.Swipe.DragScale {
			m.controller.Tracker().Reset()
			m.controller.Pager().Advance(m.imageClickFraction(msg.X))
			return m, nil
		}

		decision, token := m.controller.Release()
		if decision == gesture.SnapBack {
			return m.startSpring(0)
		}

		cur, _ := m.controller.Current()
		m.status = fmt.Sprintf("%s %q", decision, cur.Title)
		next, cmd := m.startSpring(decision.Direction().Sign() * m.exitDistance())
		return next, tea.Batch(cmd, settleCmd(m.controller.SettleDelay(), token))
	}

	return m, nil
}

// commitCard dismisses the current card with an explicit direction,
// bypassing the threshold decision entirely.
func (m Model) commitCard(dir models.Direction) (tea.Model, tea.Cmd) {
	cur, ok := m.controller.Current()
	if !ok {
		return m, nil
	}

	token, ok := m.controller.Commit(dir)
	if !ok {
		return m, nil
	}

	m.dragging = false
	m.status = fmt.Sprintf("commit-%s %q", dir, cur.Title)
	next, cmd := m.startSpring(dir.Sign() * m.exitDistance())
	return next, tea.Batch(cmd, settleCmd(m.controller.SettleDelay(), token))
}

func (m Model) handleSettle(msg settleMsg) (tea.Model, tea.Cmd) {
	if !m.controller.Settle(msg.token) {
		return m, nil
	}

	m.animating = false
	m.springVel = 0

	if m.controller.Exhausted() {
		m.status = "deck complete"
	}
	return m, nil
}

// handleFrame advances the spring one step and keeps the frame loop
// running until the offset comes to rest at the target.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.animating {
		// Stale frame from an animation that was cancelled or settled
		return m, nil
	}

	tracker := m.controller.Tracker()
	pos, vel := m.spring.Update(tracker.Offset(), m.springVel, m.springTarget)
	tracker.SetOffset(pos)
	m.springVel = vel

	if math.Abs(pos-m.springTarget) < 0.5 && math.Abs(vel) < springRestVel {
		m.animating = false
		m.springVel = 0
		if m.springTarget == 0 {
			tracker.Reset()
		}
		return m, nil
	}

	return m, frameCmd()
}

// startSpring aims the spring at a new target, starting the frame loop
// unless one is already running.
func (m Model) startSpring(target float64) (Model, tea.Cmd) {
	wasAnimating := m.animating
	m.springTarget = target
	m.animating = true
	if wasAnimating {
		return m, nil
	}
	return m, frameCmd()
}

// exitDistance is how far off-center a committed card slides, in gesture
// units: past the fade-out point and clear of any terminal width.
func (m Model) exitDistance() float64 {
	d := float64(m.width) * m.config.Swipe.DragScale / 2
	if d < 400 {
		d = 400
	}
	return d
}
