// Package inventory provides the HUD slot showing an item icon and count.
package inventory

import "fmt"

// Image shows a sprite.
type Image interface {
	SetSprite(name string)
	SetEnabled(on bool)
}

// TextView displays a single string.
type TextView interface {
	SetText(s string)
}

// Slot is one inventory cell. Its views are optional.
type Slot struct {
	Icon      Image
	CountText TextView
	Label     TextView

	count int
}

// NewSlot creates an empty slot.
func NewSlot(icon Image, count, label TextView) *Slot {
	return &Slot{Icon: icon, CountText: count, Label: label}
}

// SetIcon shows sprite, or hides the image when sprite is empty.
func (s *Slot) SetIcon(sprite string) {
	if s.Icon == nil {
		return
	}
	s.Icon.SetSprite(sprite)
	s.Icon.SetEnabled(sprite != "")
}

// SetCount sets the count, clamped at zero.
func (s *Slot) SetCount(c int) {
	s.count = max(0, c)
	s.updateView()
}

// Add changes the count by delta, clamped at zero.
func (s *Slot) Add(delta int) {
	s.count = max(0, s.count+delta)
	s.updateView()
}

// SetLabel sets the optional label text.
func (s *Slot) SetLabel(label string) {
	if s.Label != nil {
		s.Label.SetText(label)
	}
}

// Count returns the current count.
func (s *Slot) Count() int { return s.count }

func (s *Slot) updateView() {
	if s.CountText != nil {
		s.CountText.SetText(fmt.Sprintf("x%d", s.count))
	}
}
