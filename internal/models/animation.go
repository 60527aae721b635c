package models

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"
)

var (
	ErrUnknownColorMode   = errors.New("unknown color mode")
	ErrUnknownDrawPattern = errors.New("unknown draw pattern")
)

const (
	// MinTickInterval bounds how often the background may repaint
	MinTickInterval     = 50 * time.Millisecond
	DefaultTickInterval = 500 * time.Millisecond

	CirclesPerTick  = 20
	MinCircleRadius = 10
	MaxCircleRadius = 50 // exclusive
)

// ColorMode constrains the palette used when generating a new color
type ColorMode int

const (
	ColorModeRandom ColorMode = iota
	ColorModeBlues
	ColorModeGreens
	ColorModeGrayscale
	ColorModePink
)

var colorModeNames = map[ColorMode]string{
	ColorModeRandom:    "Random",
	ColorModeBlues:     "Blues",
	ColorModeGreens:    "Greens",
	ColorModeGrayscale: "Grayscale",
	ColorModePink:      "Pink",
}

// AllColorModes returns every color mode in menu order
func AllColorModes() []ColorMode {
	return []ColorMode{ColorModeRandom, ColorModeBlues, ColorModeGreens, ColorModeGrayscale, ColorModePink}
}

func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode accepts a mode name, ignoring case and surrounding space
func ParseColorMode(name string) (ColorMode, error) {
	key := strings.TrimSpace(name)
	for mode, modeName := range colorModeNames {
		if strings.EqualFold(modeName, key) {
			return mode, nil
		}
	}
	if strings.EqualFold(key, "gray") || strings.EqualFold(key, "greyscale") {
		return ColorModeGrayscale, nil
	}
	return ColorModeRandom, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
}

// DrawPattern is the visual mode of the background
type DrawPattern int

const (
	DrawPatternSolidFill DrawPattern = iota
	DrawPatternCircles
)

// AllDrawPatterns returns every draw pattern in menu order
func AllDrawPatterns() []DrawPattern {
	return []DrawPattern{DrawPatternSolidFill, DrawPatternCircles}
}

func (p DrawPattern) String() string {
	switch p {
	case DrawPatternSolidFill:
		return "Solid Fill"
	case DrawPatternCircles:
		return "Circles"
	default:
		return fmt.Sprintf("DrawPattern(%d)", int(p))
	}
}

// ParseDrawPattern accepts "Solid Fill", "solid", "SolidFill" or "Circles"
func ParseDrawPattern(name string) (DrawPattern, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), ""))
	switch key {
	case "solidfill", "solid", "fill":
		return DrawPatternSolidFill, nil
	case "circles", "circle":
		return DrawPatternCircles, nil
	}
	return DrawPatternSolidFill, fmt.Errorf("%w: %q", ErrUnknownDrawPattern, name)
}

// AnimationConfig is replaced wholesale on every setter call
type AnimationConfig struct {
	ColorMode    ColorMode
	DrawPattern  DrawPattern
	TickInterval time.Duration
}

// DefaultAnimationConfig is the state every launch starts from
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		ColorMode:    ColorModeRandom,
		DrawPattern:  DrawPatternSolidFill,
		TickInterval: DefaultTickInterval,
	}
}

// ClampTickInterval enforces MinTickInterval
func ClampTickInterval(d time.Duration) time.Duration {
	if d < MinTickInterval {
		return MinTickInterval
	}
	return d
}

// CircleShape is one filled circle of the Circles pattern
type CircleShape struct {
	CenterX int
	CenterY int
	Radius  int
	Color   color.RGBA
}

// Snapshot is the drawing state handed from the tick loop to the renderer.
// A published Snapshot is never mutated; Circles is only populated when
// Pattern is DrawPatternCircles.
type Snapshot struct {
	Pattern    DrawPattern
	Background color.RGBA
	Circles    []CircleShape
	Sequence   uint64
}

// InitialSnapshot is shown before the first tick completes
func InitialSnapshot() Snapshot {
	return Snapshot{
		Pattern:    DrawPatternSolidFill,
		Background: color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	}
}
