package display

import (
	"image"
	"image/png"
	"os"
)

// FileDevice writes every frame to a PNG file, replacing it atomically.
// Useful for watching the LCD output of a headless or simulated run.
type FileDevice struct {
	Path string
}

func (d FileDevice) Render(frame *image.RGBA) error {
	tmp := d.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, d.Path)
}
