// Package ui holds the retained state the hosts draw from: HUD widgets and
// the lighting values the day/night cycle pushes each tick.
package ui

// Label is a line of text.
type Label struct {
	text string
}

// SetText replaces the label's text.
func (l *Label) SetText(s string) { l.text = s }

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// Image is a sprite that can be hidden.
type Image struct {
	sprite  string
	enabled bool
}

// SetSprite sets the sprite name.
func (i *Image) SetSprite(name string) { i.sprite = name }

// SetEnabled shows or hides the image.
func (i *Image) SetEnabled(on bool) { i.enabled = on }

// Sprite returns the sprite name.
func (i *Image) Sprite() string { return i.sprite }

// Enabled reports whether the image is drawn.
func (i *Image) Enabled() bool { return i.enabled }

// Panel is a container that is either shown or hidden.
type Panel struct {
	active bool
}

// SetActive shows or hides the panel.
func (p *Panel) SetActive(on bool) { p.active = on }

// ActiveSelf reports whether the panel is shown.
func (p *Panel) ActiveSelf() bool { return p.active }

// Cursor is the pointer state requested by gameplay.
type Cursor struct {
	locked  bool
	visible bool
}

// SetLocked captures or frees the pointer.
func (c *Cursor) SetLocked(locked bool) { c.locked = locked }

// SetVisible shows or hides the pointer.
func (c *Cursor) SetVisible(visible bool) { c.visible = visible }

// Locked reports whether the pointer is captured.
func (c *Cursor) Locked() bool { return c.locked }

// Visible reports whether the pointer is drawn.
func (c *Cursor) Visible() bool { return c.visible }

// Toggle is an on/off switch for a component such as mouse look.
type Toggle struct {
	enabled bool
}

// SetEnabled switches the component.
func (t *Toggle) SetEnabled(on bool) { t.enabled = on }

// Enabled reports the switch state.
func (t *Toggle) Enabled() bool { return t.enabled }

// SlotView is the widgets of one inventory slot.
type SlotView struct {
	Icon  *Image
	Count *Label
	Label *Label
}

// HUD is everything drawn over the scene.
type HUD struct {
	DialoguePanel *Panel
	Speaker       *Label
	Body          *Label
	Counter       *Label
	Cursor        *Cursor
	Look          *Toggle
	Slots         []*SlotView
}

// NewHUD creates a HUD with the dialogue hidden, the cursor captured and
// mouse look enabled.
func NewHUD() *HUD {
	return &HUD{
		DialoguePanel: &Panel{},
		Speaker:       &Label{},
		Body:          &Label{},
		Counter:       &Label{},
		Cursor:        &Cursor{locked: true},
		Look:          &Toggle{enabled: true},
	}
}

// AddSlot appends an empty inventory slot.
func (h *HUD) AddSlot() *SlotView {
	v := &SlotView{Icon: &Image{}, Count: &Label{}, Label: &Label{}}
	h.Slots = append(h.Slots, v)
	return v
}
