// Package safety classifies sensor values against per-variable limit
// bands into a five-level safety scale with a matching display palette.
package safety

import "image/color"

// Class is the safety classification of a value relative to its band.
type Class int

const (
	DangerouslyLow Class = iota
	Low
	Normal
	High
	DangerouslyHigh
)

var classNames = [...]string{
	"dangerously_low",
	"low",
	"normal",
	"high",
	"dangerously_high",
}

func (c Class) String() string {
	if c < DangerouslyLow || c > DangerouslyHigh {
		return "unknown"
	}
	return classNames[c]
}

// NoBound marks a missing lower boundary: values on that side can never
// classify below Normal.
const NoBound = -1

// Band holds the four threshold boundaries for one sensor variable,
// ordered dangerously-low < low < high < dangerously-high.
type Band struct {
	DangerouslyLow  float64
	Low             float64
	High            float64
	DangerouslyHigh float64
}

// Classify maps a value to its safety class by ordered comparison
// against the band boundaries.
func Classify(v float64, b Band) Class {
	switch {
	case b.DangerouslyLow != NoBound && v < b.DangerouslyLow:
		return DangerouslyLow
	case b.Low != NoBound && v < b.Low:
		return Low
	case v > b.DangerouslyHigh:
		return DangerouslyHigh
	case v > b.High:
		return High
	default:
		return Normal
	}
}

// Palette maps each class to its indicator color, cold to hot.
var Palette = [5]color.RGBA{
	{B: 255, A: 255},         // dangerously low: blue
	{G: 255, B: 255, A: 255}, // low: cyan
	{G: 255, A: 255},         // normal: green
	{R: 255, G: 255, A: 255}, // high: yellow
	{R: 255, A: 255},         // dangerously high: red
}

// Color returns the palette color for the class.
func (c Class) Color() color.RGBA {
	if c < DangerouslyLow || c > DangerouslyHigh {
		return Palette[Normal]
	}
	return Palette[c]
}
