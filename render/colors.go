package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground  = tcell.NewRGBColor(0, 0, 0)       // Black canvas
	RgbCurve       = tcell.NewRGBColor(255, 255, 255) // White polyline
	RgbControlFill = tcell.NewRGBColor(128, 128, 128) // Gray control point
	RgbControlGrab = tcell.NewRGBColor(255, 165, 0)   // Orange while dragged
	RgbHelpText    = tcell.NewRGBColor(220, 220, 220) // Instructions
	RgbStepText    = tcell.NewRGBColor(255, 255, 0)   // Step counter
	RgbMetricText  = tcell.NewRGBColor(150, 150, 150) // Perimeter / area
	RgbMessageErr  = tcell.NewRGBColor(255, 0, 0)     // Advisory red
	RgbMessageInfo = tcell.NewRGBColor(80, 220, 80)   // Export success
)

// Styles
var (
	StyleCanvas  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCurve)
	StyleCurve   = StyleCanvas.Foreground(RgbCurve)
	StyleControl = StyleCanvas.Foreground(RgbControlFill)
	StyleGrabbed = StyleCanvas.Foreground(RgbControlGrab).Bold(true)
	StyleHelp    = StyleCanvas.Foreground(RgbHelpText)
	StyleStep    = StyleCanvas.Foreground(RgbStepText).Bold(true)
	StyleMetric  = StyleCanvas.Foreground(RgbMetricText)
	StyleError   = StyleCanvas.Foreground(RgbMessageErr).Bold(true)
	StyleInfo    = StyleCanvas.Foreground(RgbMessageInfo)
)
