package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	return nil
}

// getUIFontSize returns the font size for UI text at the current scale
func (e *EbitenRenderer) getUIFontSize() float64 {
	return baseFontSize * float64(e.scale)
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
		e.cachedSansBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
		e.cachedSmallFace = &text.GoTextFace{Source: e.sansFontSource, Size: size * markerNameSize}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached bold face at UI size
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedSansBoldFace
}

// getMonoFontFace returns a monospace face at UI size (for the console)
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedMonoFace
}

// getSmallFontFace returns the face used for names under markers
func (e *EbitenRenderer) getSmallFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedSmallFace
}

// invalidateFontCache clears cached font faces (call when the scale changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
	e.cachedMonoFace = nil
	e.cachedSmallFace = nil
}
