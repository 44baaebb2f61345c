package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/renderer"
)

// Layout of the frame: a sky band across the top with the scene below it.
const (
	skyBandRatio = 0.22
	mapMargin    = 12
)

// drawView renders one snapshot.
func (e *EbitenRenderer) drawView(screen *ebiten.Image, v renderer.View) {
	screen.Fill(v.Sky)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	skyH := int(float64(h) * skyBandRatio)
	e.drawCelestial(screen, v, w, skyH)

	// Scene area below the sky band
	mapX, mapY := mapMargin*e.scale, skyH
	mapW, mapH := w-2*mapX, h-skyH-mapMargin*e.scale
	tile := 1.0
	if v.Width > 0 && v.Height > 0 {
		tile = math.Min(float64(mapW)/v.Width, float64(mapH)/v.Height)
	}
	offX := float64(mapX) + (float64(mapW)-v.Width*tile)/2
	offY := float64(mapY) + (float64(mapH)-v.Height*tile)/2
	toScreen := func(p world.Vec2) (float32, float32) {
		return float32(offX + p.X*tile), float32(offY + p.Y*tile)
	}

	vector.DrawFilledRect(screen, float32(offX), float32(offY), float32(v.Width*tile), float32(v.Height*tile),
		groundColor(v.SunElevation, v.MoonUp), false)

	for _, m := range v.Markers {
		e.drawMarker(screen, m, toScreen, tile)
	}
	if v.Player.Name != "" {
		e.drawPlayer(screen, v, toScreen, tile)
	}

	// Fog sits over the scene but under the HUD.
	if v.FogAlpha > 0 {
		fog := v.FogColor
		fog.A = v.FogAlpha
		vector.DrawFilledRect(screen, 0, float32(skyH), float32(w), float32(h-skyH), premultiply(fog), false)
	}

	e.drawHUD(screen, v, w, h)
	if v.DialogueOpen {
		e.drawDialogue(screen, v, w, h)
	}
	if v.ConsoleOpen {
		e.drawConsole(screen, v, w)
	}
}

// drawCelestial places the sun or moon in the sky band by elevation.
func (e *EbitenRenderer) drawCelestial(screen *ebiten.Image, v renderer.View, w, skyH int) {
	r := float32(6 * e.scale)
	y := float32(skyH) - float32(clamp01((v.SunElevation+1)/2))*float32(skyH-int(2*r)) - r
	if v.SunElevation > -0.05 {
		vector.DrawFilledCircle(screen, float32(w)/3, y, r, colorSun, true)
	}
	if v.MoonUp {
		// The moon mirrors the sun across the horizon.
		my := float32(skyH) - float32(clamp01((-v.SunElevation+1)/2))*float32(skyH-int(2*r)) - r
		vector.DrawFilledCircle(screen, float32(w)*2/3, my, r*0.8, colorMoon, true)
	}
}

func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, m renderer.Marker, toScreen func(world.Vec2) (float32, float32), tile float64) {
	x, y := toScreen(m.Pos)
	r := float32(math.Max(m.Radius, 0.2) * tile)

	col := colorProp
	switch m.Tag {
	case world.TagNPC:
		col = colorNPC
		if m.InRange {
			vector.StrokeCircle(screen, x, y, r*2.5, float32(e.scale), colorNPCRange, true)
		}
	case world.TagPickup:
		col = colorPickup
	}
	vector.DrawFilledCircle(screen, x, y, r, col, true)
	if m.Targeted {
		vector.StrokeCircle(screen, x, y, r+float32(2*e.scale), float32(e.scale), colorTarget, true)
	}

	face := e.getSmallFontFace()
	tw, _ := text.Measure(m.Name, face, 0)
	e.drawText(screen, m.Name, float64(x)-tw/2, float64(y+r)+2, colorText, face)
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, v renderer.View, toScreen func(world.Vec2) (float32, float32), tile float64) {
	x, y := toScreen(v.Player.Pos)
	r := float32(math.Max(v.Player.Radius, 0.2) * tile)
	vector.DrawFilledCircle(screen, x, y, r, colorPlayer, true)

	// Line of sight out to grab range.
	f := v.Facing.Normalized()
	reach := float32(v.Reach * tile)
	lineCol := colorSubtle
	if v.Target != "" {
		lineCol = colorTarget
	}
	if v.LookEnabled {
		vector.StrokeLine(screen, x, y, x+float32(f.X)*reach, y+float32(f.Y)*reach, 1, lineCol, true)
	}
}

// drawHUD draws the status line, counter, slots and messages.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, v renderer.View, w, h int) {
	face := e.getSansFontFace()
	pad := float64(4 * e.scale)
	line := face.Size * 1.3

	e.drawText(screen, v.Status, pad, pad, colorText, face)
	if v.Counter != "" {
		cw, _ := text.Measure(v.Counter, face, 0)
		e.drawText(screen, v.Counter, float64(w)-cw-pad, pad, colorItem, face)
	}

	// Slots stack down the right edge under the counter.
	y := pad + line
	for _, s := range v.Slots {
		label := s.Label + " " + s.Count
		sw, _ := text.Measure(label, face, 0)
		e.drawText(screen, label, float64(w)-sw-pad, y, colorText, face)
		y += line
	}

	if v.Target != "" {
		e.drawSegments(screen, renderer.Markup(fmt.Sprintf("ACTION{E} ITEM{%s}", v.Target)), pad, pad+line, face)
	}

	// Messages fade upwards from the bottom left.
	y = float64(h) - pad - line
	if v.DialogueOpen {
		y -= dialogueHeight(face)
	}
	for i := len(v.Messages) - 1; i >= 0; i-- {
		age := len(v.Messages) - 1 - i
		col := colorText
		col.A = uint8(255 - 40*age)
		e.drawText(screen, v.Messages[i], pad, y, premultiply(col), face)
		y -= line
	}
}

func dialogueHeight(face *text.GoTextFace) float64 {
	return face.Size * 5
}

// drawDialogue draws the dialogue panel across the bottom of the screen.
func (e *EbitenRenderer) drawDialogue(screen *ebiten.Image, v renderer.View, w, h int) {
	face := e.getSansFontFace()
	pad := float64(6 * e.scale)
	ph := dialogueHeight(face)
	px, py := pad, float64(h)-ph-pad
	pw := float64(w) - 2*pad

	vector.DrawFilledRect(screen, float32(px-1), float32(py-1), float32(pw+2), float32(ph+2), colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(pw), float32(ph), colorPanelBackground, false)

	ty := py + pad/2
	if v.Speaker != "" {
		e.drawText(screen, v.Speaker, px+pad, ty, colorSpeaker, e.getSansBoldFontFace())
		ty += face.Size * 1.4
	}
	e.drawWrapped(screen, v.Body, px+pad, ty, pw-2*pad, colorText, face)

	if !v.Typing {
		hint := renderer.Markup("ACTION{Space}")
		hw, _ := text.Measure(renderer.Plain(hint), face, 0)
		e.drawSegments(screen, hint, px+pw-hw-pad, py+ph-face.Size*1.4, face)
	}
}

// drawConsole draws the developer console line across the top.
func (e *EbitenRenderer) drawConsole(screen *ebiten.Image, v renderer.View, w int) {
	face := e.getMonoFontFace()
	hgt := face.Size * 1.8
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt), colorPanelBackground, false)
	vector.DrawFilledRect(screen, 0, float32(hgt), float32(w), 1, colorPanelBorder, false)
	e.drawText(screen, "> "+v.ConsoleLine+"_", float64(4*e.scale), face.Size*0.4, colorAction, face)
}

// groundColor shades the grass by how high the sun is.
func groundColor(elevation float64, moon bool) color.RGBA {
	light := clamp01(0.3 + elevation)
	if moon {
		light = math.Min(light, 0.15)
	}
	return lerpRGBA(colorGroundNight, colorGround, light)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// premultiply converts a straight-alpha colour to the premultiplied form
// color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	f := float64(c.A) / 255
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
