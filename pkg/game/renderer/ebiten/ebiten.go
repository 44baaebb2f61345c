package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/renderer"
	"daybreak/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// scale is the integer zoom (adjustable with +/-)
	scale int

	tickRate int

	// OnScale is called after the player changes the zoom.
	OnScale func(scale int)

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for the console
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for speaker names

	// Cached font faces (recreated when the scale changes)
	cachedUIFontSize   float64
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace
	cachedMonoFace     *text.GoTextFace
	cachedSmallFace    *text.GoTextFace

	game *state.Game

	// cursorMode is the last mode pushed to the window.
	cursorMode ebiten.CursorModeType

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New(tickRate, scale int) *EbitenRenderer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &EbitenRenderer{
		scale:      clampScale(scale),
		tickRate:   tickRate,
		cursorMode: -1,
	}
}

// Init initializes the Ebiten renderer
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Printf("[ebiten] %v", err)
	}
	e.windowWidth, e.windowHeight = baseWidth*e.scale, baseHeight*e.scale
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Daybreak")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.tickRate)
}

// Run starts the Ebiten game loop and blocks until the window closes or
// the game quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	if e.sansFontSource == nil {
		return errors.New("ebiten renderer: fonts not loaded")
	}
	e.game = g
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	g.Quit = true
	return nil
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[ebiten] window opened (%dx%d)", w, h)
	}

	g := e.game
	e.handleZoom()
	e.handleInput(g)
	if g.Quit {
		return ebiten.Termination
	}

	gameplay.Update(g, 1/float64(ebiten.TPS()))
	e.syncCursor(g)
	return nil
}

// syncCursor applies the pointer state gameplay asked for.
func (e *EbitenRenderer) syncCursor(g *state.Game) {
	mode := ebiten.CursorModeHidden
	switch {
	case g.HUD.Cursor.Locked():
		mode = ebiten.CursorModeCaptured
	case g.HUD.Cursor.Visible():
		mode = ebiten.CursorModeVisible
	}
	if mode != e.cursorMode {
		e.cursorMode = mode
		ebiten.SetCursorMode(mode)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Draw renders one frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if e.game == nil {
		return
	}
	e.drawView(screen, renderer.Snapshot(e.game))
}

func clampScale(s int) int {
	if s < minScale {
		return minScale
	}
	if s > maxScale {
		return maxScale
	}
	return s
}
