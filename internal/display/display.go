// Package display implements the LCD mode state machine and the screen
// renderers. Frames are drawn into a reused RGBA image and handed to a
// Device; rendering is cosmetic, so every failure is reported to the
// caller for logging and otherwise ignored.
package display

import (
	"image"
	"log/slog"
	"time"
)

// ST7735 panel geometry: 160x80, 2px-wide bars.
const (
	Width    = 160
	Height   = 80
	TopPos   = 25 // bars start below the label line
	BarWidth = 2
	NumBars  = Width / BarWidth
)

// Display modes. Modes 0..10 map 1:1 to the sensor variable catalog.
const (
	NumSensorModes = 11
	ModeInfo       = 11
	ModeLogo       = 12
	ModeHealth     = 13
	NumModes       = 14
)

var auxModeNames = [...]string{"info", "logo", "health"}

// ModeName returns a label for logging.
func ModeName(mode int, sensorName func(int) string) string {
	if mode >= 0 && mode < NumSensorModes {
		return sensorName(mode)
	}
	if mode >= ModeInfo && mode < NumModes {
		return auxModeNames[mode-NumSensorModes]
	}
	return "unknown"
}

// Device transfers a finished frame to the physical panel.
type Device interface {
	Render(frame *image.RGBA) error
}

// Nop is the device used when no LCD is attached.
type Nop struct{}

func (Nop) Render(*image.RGBA) error { return nil }

// Controller advances the display mode on debounced proximity triggers.
// The proximity signal arrives at tick rate, far faster than a hand
// gesture, so a transition also requires the signal to have dropped
// below the threshold since the last one: a single sustained wave
// yields exactly one mode change.
type Controller struct {
	threshold  float64
	debounce   time.Duration
	mode       int
	lastSwitch time.Time
	armed      bool
	log        *slog.Logger
}

// NewController creates a controller starting at mode 0.
func NewController(threshold float64, debounce time.Duration, log *slog.Logger) *Controller {
	return &Controller{
		threshold: threshold,
		debounce:  debounce,
		armed:     true,
		log:       log,
	}
}

// Mode returns the current display mode.
func (c *Controller) Mode() int { return c.mode }

// HandleProximity feeds one proximity sample. It returns true when the
// mode advanced.
func (c *Controller) HandleProximity(prox float64, now time.Time) bool {
	if prox <= c.threshold {
		c.armed = true
		return false
	}
	if !c.armed {
		return false
	}
	if !c.lastSwitch.IsZero() && now.Sub(c.lastSwitch) < c.debounce {
		return false
	}

	c.mode = (c.mode + 1) % NumModes
	c.lastSwitch = now
	c.armed = false
	c.log.Info("display mode switched", "mode", c.mode)
	return true
}
