package dialogue

// Typewriter reveals a line of text one character per tick. The first
// character shows as soon as the line starts; the line counts as typed once
// a full tick has passed after the last character.
type Typewriter struct {
	runes   []rune
	elapsed float64
	shown   int
	typing  bool
	Speed   float64 // Characters per second
	onFrame func(visible string)
}

// NewTypewriter creates a typewriter revealing speed characters per second.
// onFrame, when non-nil, receives the visible text whenever it changes.
func NewTypewriter(speed float64, onFrame func(visible string)) *Typewriter {
	return &Typewriter{Speed: speed, onFrame: onFrame}
}

// Start begins revealing text.
func (tw *Typewriter) Start(text string) {
	tw.runes = []rune(text)
	tw.elapsed = 0
	tw.typing = len(tw.runes) > 0
	tw.shown = min(1, len(tw.runes))
	tw.emit()
}

// Update advances the reveal by dt seconds and reports whether the visible
// text changed. A non-positive speed completes the line at once.
func (tw *Typewriter) Update(dt float64) bool {
	if !tw.typing {
		return false
	}
	if tw.Speed <= 0 {
		tw.Complete()
		return true
	}

	tw.elapsed += dt
	ticks := int(tw.elapsed * tw.Speed)
	if ticks >= len(tw.runes) {
		tw.typing = false
	}
	shown := min(1+ticks, len(tw.runes))
	if shown == tw.shown {
		return false
	}
	tw.shown = shown
	tw.emit()
	return true
}

// Complete shows the whole line immediately.
func (tw *Typewriter) Complete() {
	if !tw.typing {
		return
	}
	tw.typing = false
	if tw.shown != len(tw.runes) {
		tw.shown = len(tw.runes)
		tw.emit()
	}
}

// Stop abandons the current line without revealing the rest of it.
func (tw *Typewriter) Stop() {
	tw.typing = false
}

// Typing reports whether the line is still being revealed.
func (tw *Typewriter) Typing() bool { return tw.typing }

// Visible returns the revealed part of the line.
func (tw *Typewriter) Visible() string {
	return string(tw.runes[:tw.shown])
}

// Full returns the whole line being typed.
func (tw *Typewriter) Full() string {
	return string(tw.runes)
}

func (tw *Typewriter) emit() {
	if tw.onFrame != nil {
		tw.onFrame(tw.Visible())
	}
}
