package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"daybreak/pkg/game/renderer"
)

// styleColors maps markup styles to colours.
var styleColors = map[renderer.TextStyle]color.Color{
	renderer.StyleNormal:      colorText,
	renderer.StyleSpeaker:     colorSpeaker,
	renderer.StyleItem:        colorItem,
	renderer.StyleAction:      colorAction,
	renderer.StyleActionShort: colorAction,
	renderer.StyleDenied:      colorDenied,
	renderer.StyleSubtle:      colorSubtle,
	renderer.StylePlayer:      colorPlayer,
	renderer.StyleNPC:         colorNPC,
	renderer.StylePickup:      colorPickup,
	renderer.StylePhase:       colorSpeaker,
	renderer.StyleNight:       colorMoon,
}

// drawText draws str with its top-left corner at x, y.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawSegments draws styled segments on one line.
func (e *EbitenRenderer) drawSegments(screen *ebiten.Image, segs []renderer.Segment, x, y float64, face *text.GoTextFace) {
	for _, s := range segs {
		col, ok := styleColors[s.Style]
		if !ok {
			col = colorText
		}
		f := face
		if s.Style == renderer.StyleActionShort {
			f = e.getSansBoldFontFace()
		}
		e.drawText(screen, s.Text, x, y, col, f)
		w, _ := text.Measure(s.Text, f, 0)
		x += w
	}
}

// drawWrapped draws str word-wrapped to maxWidth.
func (e *EbitenRenderer) drawWrapped(screen *ebiten.Image, str string, x, y, maxWidth float64, col color.Color, face *text.GoTextFace) {
	for _, line := range wrap(str, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}) {
		e.drawText(screen, line, x, y, col, face)
		y += face.Size * 1.3
	}
}

// wrap breaks str into lines no wider than maxWidth as measured by width.
// A single word wider than maxWidth gets a line of its own.
func wrap(str string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(str) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && width(next) > maxWidth {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
