package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// Raster is an image surface backed by a gg context.
type Raster struct {
	dc         *gg.Context
	w, h       float64
	scale      float64
	background color.Color
}

// NewRaster creates a w x h logical pixel surface at scale pixels per
// logical pixel, cleared to background.
func NewRaster(w, h, scale float64, background color.Color) *Raster {
	r := &Raster{background: background}
	r.Resize(w, h, scale)
	return r
}

func (r *Raster) Resize(w, h, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Max(1, math.Floor(w*scale)))
	ph := int(math.Max(1, math.Floor(h*scale)))
	r.w, r.h, r.scale = w, h, scale
	r.dc = gg.NewContext(pw, ph)
	r.Clear()
}

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

func (r *Raster) Clear() {
	if r.background == nil {
		r.dc.SetRGBA(0, 0, 0, 0)
	} else {
		r.dc.SetColor(r.background)
	}
	r.dc.Clear()
}

func (r *Raster) FillSquare(x, y, half, rot float64, c color.Color) {
	r.dc.Push()
	r.dc.Scale(r.scale, r.scale)
	r.dc.Translate(x, y)
	r.dc.Rotate(rot)
	r.dc.DrawRectangle(-half, -half, 2*half, 2*half)
	r.dc.SetColor(c)
	r.dc.Fill()
	r.dc.Pop()
}

// Image returns the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG writes the current pixels to path.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Recorder collects raster frames into an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder records frames shown for delay hundredths of a second each.
func NewRecorder(delay int) *Recorder {
	if delay < 1 {
		delay = 1
	}
	return &Recorder{delay: delay}
}

// Capture quantizes img onto the web-safe palette and appends it.
func (rec *Recorder) Capture(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, palette.WebSafe)
	draw.FloydSteinberg.Draw(frame, b, img, b.Min)
	rec.frames = append(rec.frames, frame)
}

// Len returns the number of captured frames.
func (rec *Recorder) Len() int { return len(rec.frames) }

// Encode writes the animation to w.
func (rec *Recorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range rec.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, rec.delay)
	}
	return gif.EncodeAll(w, &anim)
}
