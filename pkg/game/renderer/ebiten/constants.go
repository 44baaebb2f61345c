// Package ebiten provides an Ebiten-based 2D graphical renderer for Daybreak.
package ebiten

import "image/color"

// Color palette for the game
var (
	colorGround          = color.RGBA{96, 140, 72, 255}   // Grass at full daylight
	colorGroundNight     = color.RGBA{18, 26, 34, 255}    // Grass under the moon
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorNPC             = color.RGBA{100, 200, 255, 255} // Light blue
	colorNPCRange        = color.RGBA{100, 200, 255, 90}  // Trigger ring
	colorPickup          = color.RGBA{255, 200, 100, 255} // Orange
	colorTarget          = color.RGBA{255, 255, 255, 220} // Crosshair ring
	colorProp            = color.RGBA{160, 160, 180, 255} // Medium gray
	colorSun             = color.RGBA{255, 236, 170, 255}
	colorMoon            = color.RGBA{210, 220, 255, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorSpeaker         = color.RGBA{255, 220, 100, 255} // Yellow
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{120, 130, 180, 255}
)

// Window and scale constraints
const (
	baseWidth      = 480
	baseHeight     = 320
	minScale       = 1
	maxScale       = 4
	baseFontSize   = 8.0 // UI font size at scale 1
	markerNameSize = 0.8 // Name label size relative to the UI font
)

// Held movement keys repeat after keyRepeatInitialDelay ticks, then every
// keyRepeatInterval ticks.
const (
	keyRepeatInitialDelay = 18
	keyRepeatInterval     = 6
)
