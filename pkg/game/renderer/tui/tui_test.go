package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/renderer"
)

func TestNewMessages(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur []string
		wantFresh []string
	}{
		{"first frame", nil, []string{"a", "b"}, []string{"a", "b"}},
		{"nothing new", []string{"a", "b"}, []string{"a", "b"}, nil},
		{"appended", []string{"a"}, []string{"a", "b", "c"}, []string{"b", "c"}},
		{"capped log scrolled", []string{"a", "b", "c", "d", "e"}, []string{"b", "c", "d", "e", "f"}, []string{"f"}},
		{"cleared", []string{"a"}, nil, nil},
		{"replaced", []string{"a"}, []string{"x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newMessages(tt.prev, tt.cur)
			if strings.Join(got, ",") != strings.Join(tt.wantFresh, ",") {
				t.Errorf("newMessages = %v, want %v", got, tt.wantFresh)
			}
		})
	}
}

func TestFormatLine_Truncates(t *testing.T) {
	r := New(60)
	r.Init()

	segs := []renderer.Segment{
		{Text: "hello "},
		{Text: "crystal", Style: renderer.StyleItem},
		{Text: " world"},
	}
	if got := color.ClearCode(r.FormatLine(segs, 80)); got != "hello crystal world" {
		t.Errorf("wide = %q", got)
	}
	if got := color.ClearCode(r.FormatLine(segs, 10)); got != "hello cry…" {
		t.Errorf("narrow = %q", got)
	}
}

func TestStatusSegments(t *testing.T) {
	v := renderer.View{
		Status:  "sunrise  t=0.053  180s left",
		Phase:   daynight.PhaseSunrise,
		Counter: "Collected: 2",
		Slots:   []renderer.Slot{{Icon: "icon_crystal", Count: "x2", Label: "crystal"}},
		Target:  "lantern",
		Markers: []renderer.Marker{{Name: "keeper", InRange: true}, {Name: "farmer"}},
	}
	got := renderer.Plain(StatusSegments(v))

	for _, want := range []string{"t=0.053", "Collected: 2", "crystal x2", "[E lantern]", "[Q keeper]"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "farmer") {
		t.Errorf("out-of-range NPC listed: %q", got)
	}
}

func TestDialogueLine(t *testing.T) {
	got := renderer.Plain(DialogueLine(renderer.View{Speaker: "Old Keeper", Body: "Hello."}))
	if got != "Old Keeper: Hello." {
		t.Errorf("line = %q", got)
	}
	if got := renderer.Plain(DialogueLine(renderer.View{Body: "Hello."})); got != "Hello." {
		t.Errorf("unnamed line = %q", got)
	}
}
