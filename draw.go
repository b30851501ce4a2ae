// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// barScheme is one of dwm.c's two colour schemes (SchemeNorm,
// SchemeSel): a border colour (applied to client windows, hence kept
// as a raw X pixel value) plus a background/foreground pair the bar
// text is rendered with.
type barScheme struct {
	borderPixel uint32
	bg, fg      color.RGBA
}

// parseHexColor decodes a "#rrggbb" config string into both an
// image/color.RGBA (for rendering into the bar canvas) and a raw
// 24-bit X pixel value (for XSetWindowBorder-equivalent calls), the
// two shapes dwm.c's drw_clr_create and XSetWindowBorder each want.
// Malformed strings degrade to black rather than failing config load,
// the same permissiveness dwm.c's Xft colour lookup has (it just logs
// and keeps going).
func parseHexColor(s string) (color.RGBA, uint32) {
	if len(s) == 7 && s[0] == '#' {
		r, err1 := strconv.ParseUint(s[1:3], 16, 8)
		g, err2 := strconv.ParseUint(s[3:5], 16, 8)
		b, err3 := strconv.ParseUint(s[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			pixel := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, pixel
		}
	}
	return color.RGBA{A: 255}, 0
}

// barDrawer renders the bar's tag cells, layout symbol, title and
// status text into an in-memory canvas that is then blitted to each
// monitor's bar window with PutImage, generalizing dwm.c's drw.c
// (which does the analogous work against an off-screen Xlib Pixmap)
// to a plain Go image since there is no Xft/Xlib drawing surface to
// reuse on this side. Libraries: github.com/golang/freetype +
// golang.org/x/image/font, already teacher dependencies (pulled in
// for nucular's glyph rendering) repurposed here for the one thing a
// bar needs: measuring and rasterising short strings.
type barDrawer struct {
	face  font.Face
	lrpad int // left+right text padding, dwm.c's lrpad
}

// newBarDrawer parses spec'd TTF bytes at the configured point size.
// fontSize is in points at 72 DPI, matching dwm.c's own default DPI
// assumption (no Xft DPI query in this fork's drw.c either).
func newBarDrawer(ttf []byte, fontSize float64) (*barDrawer, error) {
	fnt, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(fnt, &truetype.Options{
		Size:    fontSize,
		Hinting: font.HintingFull,
		DPI:     72,
	})
	m := face.Metrics()
	return &barDrawer{face: face, lrpad: m.Height.Ceil()}, nil
}

// height is the bar's pixel height: one line of text plus two pixels
// of vertical slack (dwm.c's `drw->fonts->h + 2`).
func (d *barDrawer) height() int {
	m := d.face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 2
}

// textWidth measures s as it would be rendered, including the
// drawer's left+right padding (dwm.c's TEXTW macro).
func (d *barDrawer) textWidth(s string) int {
	return font.MeasureString(d.face, s).Ceil() + d.lrpad
}

// canvas is one monitor-width-by-barHeight drawing surface, reset and
// re-filled on every drawBar call (dwm.c re-uses one shared Pixmap the
// same way).
type canvas struct {
	img *image.RGBA
	d   *barDrawer
}

func newCanvas(d *barDrawer, w, h int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), d: d}
}

func (c *canvas) fillRect(x, y, w, h int, col color.RGBA) {
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// drawText draws s left-aligned with pad/2 leading space inside the
// (x,y,w,h) cell, filling the cell's background first (dwm.c
// drw_text). invert swaps bg/fg, used for urgent tag rendering.
func (c *canvas) drawText(x, y, w, h, pad int, s string, scheme barScheme, invert bool) {
	bg, fg := scheme.bg, scheme.fg
	if invert {
		bg, fg = fg, bg
	}
	c.fillRect(x, y, w, h, bg)
	if s == "" {
		return
	}
	m := c.d.face.Metrics()
	baseline := y + (h+(m.Ascent-m.Descent).Ceil())/2
	dr := font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fg},
		Face: c.d.face,
		Dot:  fixed.P(x+pad/2, baseline),
	}
	dr.DrawString(s)
}

// bytesBGRX packs the canvas into the 32-bit little-endian BGRX byte
// layout XPutImage expects for a 24/32-bit-depth TrueColor visual —
// the common case this fork targets (dwm.c itself only ever runs
// against the default visual, never negotiates one).
func (c *canvas) bytesBGRX() []byte {
	b := c.img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := c.img.RGBAAt(x, y)
			out = append(out, p.B, p.G, p.R, 0)
		}
	}
	return out
}
