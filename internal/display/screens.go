package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/luki/enviromon/internal/history"
)

var (
	colorBlack  = color.RGBA{A: 255}
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorNavy   = color.RGBA{R: 10, G: 10, B: 20, A: 255}
	colorAccent = color.RGBA{G: 200, B: 255, A: 255}
	colorOK     = color.RGBA{G: 255, A: 255}
	colorBad    = color.RGBA{R: 255, A: 255}
	colorWarm   = color.RGBA{R: 255, G: 165, A: 255}
	colorGrey   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorDim    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// InfoStatus is the connectivity snapshot the info screen shows.
type InfoStatus struct {
	Now    time.Time
	WiFiOK bool
	MQTTOK bool
	SSHOK  bool
	Uptime string
}

// HealthStats feeds the system health screen.
type HealthStats struct {
	LAN      string
	WAN      string
	SSID     string
	CPUTemp  float64
	RAMUsed  int
	RAMTotal int
	DiskPct  int
	Uptime   string
}

// Screens renders all display modes into one shared frame and pushes it
// to the device. The frame is allocated once and reused every render.
type Screens struct {
	dev          Device
	frame        *image.RGBA
	version      string
	dashboardURL string
	qr           image.Image // generated once on first use
	qrFailed     bool
}

// NewScreens creates the renderer set for a device.
func NewScreens(dev Device, dashboardURL, version string) *Screens {
	return &Screens{
		dev:          dev,
		frame:        image.NewRGBA(image.Rect(0, 0, Width, Height)),
		version:      version,
		dashboardURL: dashboardURL,
	}
}

// Bars renders the rolling history bar graph for one sensor variable:
// white background, 2px HSV-colored bars, black cursor line at each
// sample's height, label on top.
func (s *Screens) Bars(name, unit string, integer bool, window []float64, latest float64) error {
	fillFrame(s.frame, colorWhite)

	magnitudes := history.Normalize(window)
	barHeight := float64(Height - TopPos)

	for i, m := range magnitudes {
		x0 := i * BarWidth
		x1 := x0 + BarWidth
		fillRect(s.frame, x0, TopPos, x1, Height, history.Color(m))

		lineY := Height - int(float64(TopPos)+m*barHeight) + TopPos
		fillRect(s.frame, x0, lineY, x1, lineY+1, colorBlack)
	}

	format := "%.4s: %.1f %s"
	if integer {
		format = "%.4s: %.0f %s"
	}
	drawText(s.frame, 0, 4, fmt.Sprintf(format, name, latest, unit), colorBlack)

	return s.dev.Render(s.frame)
}

// Info renders the QR code alongside date, time and connectivity
// status dots.
func (s *Screens) Info(st InfoStatus) error {
	fillFrame(s.frame, colorBlack)
	s.pasteQR()

	x := 84
	drawText(s.frame, x, 0, st.Now.Format("02/01/06"), color.RGBA{R: 255, G: 255, A: 255})
	drawText(s.frame, x, 11, st.Now.Format("15:04:05"), colorWhite)

	y := 25
	for _, ind := range []struct {
		label string
		ok    bool
	}{
		{"WiFi", st.WiFiOK},
		{"MQTT", st.MQTTOK},
		{"SSH", st.SSHOK},
	} {
		dot := colorBad
		if ind.ok {
			dot = colorOK
		}
		fillRect(s.frame, x, y, x+6, y+6, dot)
		drawText(s.frame, x+9, y-3, ind.label, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		y += 12
	}

	drawText(s.frame, x, 61, st.Uptime, colorGrey)
	drawText(s.frame, x, 71, s.version, colorDim)

	return s.dev.Render(s.frame)
}

// Logo renders the branding screen with the gear mark.
func (s *Screens) Logo() error {
	fillFrame(s.frame, colorNavy)

	cx, cy := 140, 22
	for deg := 0; deg < 360; deg += 45 {
		a := float64(deg) * math.Pi / 180
		x0 := cx + int(8*math.Cos(a))
		y0 := cy + int(8*math.Sin(a))
		x1 := cx + int(16*math.Cos(a))
		y1 := cy + int(16*math.Sin(a))
		drawLine(s.frame, x0, y0, x1, y1, colorAccent)
	}
	drawDisc(s.frame, cx, cy, 6, colorAccent)

	drawText(s.frame, 4, 2, "ENVIROMON", colorAccent)
	drawText(s.frame, 4, 28, "Telemetry Node", colorWhite)
	drawText(s.frame, 4, 52, "Enviro+ Monitor", colorGrey)
	drawText(s.frame, 4, 64, s.dashboardURL, colorDim)

	return s.dev.Render(s.frame)
}

// Health renders host statistics: addresses, CPU temperature with
// color coding, RAM usage bar, disk and uptime.
func (s *Screens) Health(h HealthStats) error {
	fillFrame(s.frame, colorBlack)

	cpuCol := colorOK
	switch {
	case h.CPUTemp >= 75:
		cpuCol = colorBad
	case h.CPUTemp >= 60:
		cpuCol = colorWarm
	}

	y := 1
	drawText(s.frame, 0, y, "LAN: "+h.LAN, colorAccent)
	y += 10
	drawText(s.frame, 0, y, "WAN: "+h.WAN, color.RGBA{R: 150, G: 150, B: 255, A: 255})
	y += 10
	ssid := h.SSID
	if len(ssid) > 14 {
		ssid = ssid[:14]
	}
	drawText(s.frame, 0, y, "WiFi: "+ssid, color.RGBA{R: 100, G: 200, B: 100, A: 255})
	y += 10
	drawText(s.frame, 0, y, fmt.Sprintf("CPU: %.1fC", h.CPUTemp), cpuCol)
	y += 10

	total := h.RAMTotal
	if total < 1 {
		total = 1
	}
	drawText(s.frame, 0, y, fmt.Sprintf("RAM %d/%dMB", h.RAMUsed, total), color.RGBA{R: 200, G: 200, B: 200, A: 255})
	y += 11
	barW := h.RAMUsed * 100 / total
	if barW < 1 {
		barW = 1
	}
	fillRect(s.frame, 0, y, barW, y+4, color.RGBA{G: 200, A: 255})
	fillRect(s.frame, barW, y, 100, y+4, color.RGBA{R: 60, G: 60, B: 60, A: 255})
	y += 7
	drawText(s.frame, 0, y, fmt.Sprintf("Disk: %d%%", h.DiskPct), color.RGBA{R: 200, G: 200, B: 100, A: 255})
	y += 10
	drawText(s.frame, 0, y, "Up: "+h.Uptime, colorGrey)

	return s.dev.Render(s.frame)
}

// Splash renders the boot screen shown once before the loop starts.
func (s *Screens) Splash() error {
	fillFrame(s.frame, colorNavy)
	s.pasteQR()

	x := 84
	drawText(s.frame, x, 4, "ENVIRO", colorAccent)
	drawText(s.frame, x, 16, "MON", colorWhite)
	drawText(s.frame, x, 40, "Starting...", color.RGBA{R: 100, G: 200, B: 100, A: 255})
	drawText(s.frame, x, 64, s.version, colorDim)

	return s.dev.Render(s.frame)
}

// Stopped renders the shutdown screen.
func (s *Screens) Stopped() error {
	fillFrame(s.frame, colorBlack)
	drawText(s.frame, 4, 30, "Stopped", colorBad)
	return s.dev.Render(s.frame)
}

// pasteQR draws the cached dashboard QR code on the left square of the
// frame, generating it on first use. Generation failure disables the
// QR permanently rather than retrying every render.
func (s *Screens) pasteQR() {
	if s.qr == nil && !s.qrFailed {
		qr, err := qrcode.New(s.dashboardURL, qrcode.Low)
		if err != nil {
			s.qrFailed = true
		} else {
			s.qr = qr.Image(Height)
		}
	}
	if s.qr == nil {
		return
	}
	draw.Draw(s.frame, image.Rect(0, 0, Height, Height), s.qr, s.qr.Bounds().Min, draw.Src)
}
