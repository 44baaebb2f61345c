package inventory

import "testing"

type fakeImage struct {
	sprite  string
	enabled bool
}

func (i *fakeImage) SetSprite(name string) { i.sprite = name }
func (i *fakeImage) SetEnabled(on bool)    { i.enabled = on }

type fakeText struct{ text string }

func (t *fakeText) SetText(s string) { t.text = s }

func TestSlot_CountClampsAtZero(t *testing.T) {
	count := &fakeText{}
	s := NewSlot(nil, count, nil)

	s.SetCount(3)
	if count.text != "x3" {
		t.Errorf("SetCount(3) text = %q", count.text)
	}
	s.Add(-5)
	if s.Count() != 0 || count.text != "x0" {
		t.Errorf("Add(-5): count=%d text=%q", s.Count(), count.text)
	}
	s.SetCount(-2)
	if s.Count() != 0 {
		t.Errorf("SetCount(-2) = %d", s.Count())
	}
	s.Add(2)
	s.Add(1)
	if s.Count() != 3 || count.text != "x3" {
		t.Errorf("after adds: count=%d text=%q", s.Count(), count.text)
	}
}

func TestSlot_IconEnabledOnlyWithSprite(t *testing.T) {
	img := &fakeImage{}
	s := NewSlot(img, nil, nil)

	s.SetIcon("icon_crystal")
	if img.sprite != "icon_crystal" || !img.enabled {
		t.Errorf("icon = %+v", img)
	}
	s.SetIcon("")
	if img.enabled {
		t.Error("empty sprite should disable the image")
	}
}

func TestSlot_LabelAndNilViews(t *testing.T) {
	label := &fakeText{}
	s := NewSlot(nil, nil, label)
	s.SetLabel("Crystal")
	if label.text != "Crystal" {
		t.Errorf("label = %q", label.text)
	}

	empty := &Slot{}
	empty.SetIcon("x")
	empty.SetLabel("x")
	empty.Add(1)
	if empty.Count() != 1 {
		t.Errorf("count without views = %d", empty.Count())
	}
}
