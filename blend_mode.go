package tinyskia

import "github.com/gogpu/tinyskia/internal/blend"

// BlendMode selects how a source color combines with the destination.
// The order matches tiny-skia; BlendModeSourceOver is the default.
type BlendMode = blend.Mode

// Blend modes: 14 Porter-Duff operators, 11 separable and 4 non-separable
// modes from W3C Compositing and Blending Level 1.
const (
	BlendModeClear           = blend.ModeClear
	BlendModeSource          = blend.ModeSource
	BlendModeDestination     = blend.ModeDestination
	BlendModeSourceOver      = blend.ModeSourceOver
	BlendModeDestinationOver = blend.ModeDestinationOver
	BlendModeSourceIn        = blend.ModeSourceIn
	BlendModeDestinationIn   = blend.ModeDestinationIn
	BlendModeSourceOut       = blend.ModeSourceOut
	BlendModeDestinationOut  = blend.ModeDestinationOut
	BlendModeSourceAtop      = blend.ModeSourceAtop
	BlendModeDestinationAtop = blend.ModeDestinationAtop
	BlendModeXor             = blend.ModeXor
	BlendModePlus            = blend.ModePlus
	BlendModeModulate        = blend.ModeModulate
	BlendModeScreen          = blend.ModeScreen
	BlendModeOverlay         = blend.ModeOverlay
	BlendModeDarken          = blend.ModeDarken
	BlendModeLighten         = blend.ModeLighten
	BlendModeColorDodge      = blend.ModeColorDodge
	BlendModeColorBurn       = blend.ModeColorBurn
	BlendModeHardLight       = blend.ModeHardLight
	BlendModeSoftLight       = blend.ModeSoftLight
	BlendModeDifference      = blend.ModeDifference
	BlendModeExclusion       = blend.ModeExclusion
	BlendModeMultiply        = blend.ModeMultiply
	BlendModeHue             = blend.ModeHue
	BlendModeSaturation      = blend.ModeSaturation
	BlendModeColor           = blend.ModeColor
	BlendModeLuminosity      = blend.ModeLuminosity
)

// ParseBlendMode returns the mode with the given kebab-case name, such as
// "source-over" or "color-dodge".
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.ParseMode(name)
}
