package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ImageSurface draws frames at full pixel resolution with gg.
type ImageSurface struct {
	dc    *gg.Context
	title string
}

// NewImageSurface creates a width x height image surface.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(width, height)}
}

// Clear fills the whole image.
func (s *ImageSurface) Clear(c core.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.Clear()
}

// FillRect paints a solid rectangle.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	s.dc.Fill()
}

// StrokeRect draws a one-pixel outline just inside r.
func (s *ImageSurface) StrokeRect(r core.Rect, c core.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(float64(r.X)+0.5, float64(r.Y)+0.5, float64(r.W)-1, float64(r.H)-1)
	s.dc.Stroke()
}

// SetTitle stores the title for Present.
func (s *ImageSurface) SetTitle(title string) {
	s.title = title
}

// Title returns the last title set.
func (s *ImageSurface) Title() string {
	return s.title
}

// Present stamps the title in the top-left corner.
func (s *ImageSurface) Present() error {
	if s.title == "" {
		return nil
	}
	s.dc.SetColor(core.ColorWhite.NRGBA())
	s.dc.DrawStringAnchored(s.title, 4, 2, 0, 1)
	return nil
}

// Image returns the rendered image.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// WritePNG encodes the image as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to a file.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
