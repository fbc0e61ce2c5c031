package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCraft      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHitbox     = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbBody       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbProjectile = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbDangerZone = tcell.NewRGBColor(40, 30, 45)    // Very dark purple
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbOverlay    = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
)

// Styles composed from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleCraft      = StyleBackground.Foreground(RgbCraft).Bold(true)
	StyleHitbox     = StyleBackground.Foreground(RgbHitbox)
	StyleBody       = StyleBackground.Foreground(RgbBody)
	StyleProjectile = StyleBackground.Foreground(RgbProjectile).Bold(true)
	StyleDangerZone = tcell.StyleDefault.Background(RgbDangerZone)
	StyleStatusBar  = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	StyleOverlay    = StyleBackground.Foreground(RgbOverlay)
)
