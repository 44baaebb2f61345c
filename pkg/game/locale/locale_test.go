package locale

import (
	"fmt"
	"testing"

	"github.com/leonelquinteros/gotext"
)

func TestLoad_Default(t *testing.T) {
	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := fmt.Sprintf(gotext.Get("COLLECTED_COUNT"), 3); got != "Collected: 3" {
		t.Errorf("COLLECTED_COUNT = %q", got)
	}
	if got := gotext.Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("missing keys should pass through, got %q", got)
	}
}

func TestLoad_UnknownFallsBack(t *testing.T) {
	if err := Load("xx"); err == nil {
		t.Fatal("expected an error for an unknown language")
	}
	if got := gotext.Get("GOODBYE"); got != "Goodbye." {
		t.Errorf("fallback catalogue not active, GOODBYE = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	found := false
	for _, l := range langs {
		if l == DefaultLanguage {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, missing %q", langs, DefaultLanguage)
	}
}

func TestText(t *testing.T) {
	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Text("PHASE_night"); got != "night" {
		t.Errorf("Text(PHASE_night) = %q, want night", got)
	}
	if got := Text("100% cotton"); got != "100% cotton" {
		t.Errorf("untranslated content was altered: %q", got)
	}
	if got := fmt.Sprintf(gotext.Get("NPC_HINT"), "Keeper"); got != "Press Q to talk to Keeper." {
		t.Errorf("NPC_HINT = %q", got)
	}
}
