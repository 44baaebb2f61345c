// Package dialogue runs conversations: a queue of speaker lines typed out
// onto a panel, plus triggers that start them.
package dialogue

import (
	"log"

	"github.com/zyedidia/generic/queue"

	"daybreak/pkg/game/locale"
)

// DefaultTextSpeed is the typing speed in characters per second.
const DefaultTextSpeed = 10

// Line is one thing a speaker says. Name may be empty to keep the previous
// speaker. Both fields may be translation keys.
type Line struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Dialogue is an ordered conversation.
type Dialogue struct {
	ID    string `yaml:"id"`
	Lines []Line `yaml:"lines"`
}

// Panel is the container showing a conversation.
type Panel interface {
	SetActive(on bool)
}

// TextView displays a single string.
type TextView interface {
	SetText(s string)
}

// Cursor controls the pointer's lock and visibility.
type Cursor interface {
	SetLocked(locked bool)
	SetVisible(visible bool)
}

// Views groups the widgets a Manager drives. Any of them may be nil.
type Views struct {
	Panel  Panel
	Name   TextView
	Body   TextView
	Cursor Cursor
}

// Manager owns the conversation in progress. A game has one Manager; it is
// passed explicitly to whatever starts dialogues.
type Manager struct {
	views     Views
	lines     *queue.Queue[Line]
	tw        *Typewriter
	ongoing   bool
	speaker   string
	listeners []func()
}

// NewManager creates a Manager typing at DefaultTextSpeed. The panel starts
// hidden.
func NewManager(v Views) *Manager {
	m := &Manager{
		views: v,
		lines: queue.New[Line](),
	}
	m.tw = NewTypewriter(DefaultTextSpeed, func(s string) {
		if m.views.Body != nil {
			m.views.Body.SetText(s)
		}
	})
	if v.Panel != nil {
		v.Panel.SetActive(false)
	}
	return m
}

// SetTextSpeed changes the typing speed in characters per second.
func (m *Manager) SetTextSpeed(cps float64) {
	m.tw.Speed = cps
}

// TextSpeed returns the typing speed.
func (m *Manager) TextSpeed() float64 {
	return m.tw.Speed
}

// StartDialogue replaces any queued lines with d, shows the panel, frees the
// cursor and starts the first line.
func (m *Manager) StartDialogue(d Dialogue) {
	m.ongoing = true
	m.speaker = ""
	m.lines = queue.New[Line]()
	for _, l := range d.Lines {
		m.lines.Enqueue(l)
	}

	if m.views.Panel != nil {
		m.views.Panel.SetActive(true)
	}
	if m.views.Cursor != nil {
		m.views.Cursor.SetLocked(false)
		m.views.Cursor.SetVisible(true)
	}
	if d.ID != "" {
		log.Printf("[dialogue] start %q (%d lines)", d.ID, len(d.Lines))
	}
	// A line still typing from the previous conversation is dropped.
	m.tw.Stop()
	m.Advance()
}

// Advance finishes the line being typed, or moves to the next line, or ends
// the conversation when nothing is left.
func (m *Manager) Advance() {
	if !m.ongoing {
		return
	}
	if m.tw.Typing() {
		m.tw.Complete()
		return
	}
	if m.lines.Empty() {
		m.EndDialogue()
		return
	}

	l := m.lines.Dequeue()
	if l.Name != "" {
		m.speaker = locale.Text(l.Name)
		if m.views.Name != nil {
			m.views.Name.SetText(m.speaker)
		}
	}
	m.tw.Start(locale.Text(l.Text))
}

// Update types out the current line.
func (m *Manager) Update(dt float64) {
	if !m.ongoing {
		return
	}
	m.tw.Update(dt)
}

// EndDialogue hides the panel, locks the cursor and notifies end listeners.
func (m *Manager) EndDialogue() {
	m.ongoing = false
	m.lines = queue.New[Line]()
	m.tw.Complete()

	if m.views.Panel != nil {
		m.views.Panel.SetActive(false)
	}
	if m.views.Cursor != nil {
		m.views.Cursor.SetLocked(true)
		m.views.Cursor.SetVisible(false)
	}

	// Listeners may resubscribe or start another dialogue.
	fns := m.listeners
	for _, fn := range fns {
		fn()
	}
}

// SubscribeEnds registers fn to run when a conversation ends.
func (m *Manager) SubscribeEnds(fn func()) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// UnsubscribeEnds removes every end listener.
func (m *Manager) UnsubscribeEnds() {
	m.listeners = nil
}

// IsOngoing reports whether a conversation is showing.
func (m *Manager) IsOngoing() bool { return m.ongoing }

// Typing reports whether the current line is still being revealed.
func (m *Manager) Typing() bool { return m.tw.Typing() }

// Speaker returns the current speaker's display name.
func (m *Manager) Speaker() string { return m.speaker }

// VisibleText returns the revealed part of the current line.
func (m *Manager) VisibleText() string { return m.tw.Visible() }

// Remaining returns the lines still queued after the current one.
func (m *Manager) Remaining() []Line {
	var out []Line
	m.lines.Each(func(l Line) {
		out = append(out, l)
	})
	return out
}
