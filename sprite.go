// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Frames is the number of frames in a sprite sheet.
const Frames = 4

//go:embed sheet.png
var sheetPNG []byte

// A Sheet is a sprite sheet of Frames square frames laid out left to
// right: light module in phase 0 and 1, then dark module in phase 0
// and 1.
type Sheet struct {
	img *image.NRGBA
	bs  int
}

// NewSheet returns a sheet holding a copy of img, which must be
// exactly Frames times as wide as it is high.
func NewSheet(img image.Image) (*Sheet, error) {
	r := img.Bounds()
	if r.Dy() == 0 || r.Dx() != Frames*r.Dy() {
		return nil, fmt.Errorf("%w: sheet is %dx%d, want %d square frames",
			ErrAsset, r.Dx(), r.Dy(), Frames)
	}
	return &Sheet{img: imaging.Clone(img), bs: r.Dy()}, nil
}

// LoadSheet reads a sprite sheet from a PNG, JPEG, GIF, BMP, TIFF or
// WebP file.
func LoadSheet(name string) (*Sheet, error) {
	img, err := imaging.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAsset, err)
	}
	return NewSheet(img)
}

// DefaultSheet returns the built-in sprite sheet.
func DefaultSheet() (*Sheet, error) {
	img, err := imaging.Decode(bytes.NewReader(sheetPNG))
	if err != nil {
		return nil, fmt.Errorf("%w: built-in sheet: %v", ErrAsset, err)
	}
	return NewSheet(img)
}

// BlockSize returns the side of a frame in pixels.
func (s *Sheet) BlockSize() int { return s.bs }

// Frame returns the rectangle of the frame for a module in the given
// phase (0 or 1).
func (s *Sheet) Frame(dark bool, phase int) image.Rectangle {
	n := phase & 1
	if dark {
		n += 2
	}
	return image.Rect(n*s.bs, 0, (n+1)*s.bs, s.bs)
}

// spriteTiler draws modules from a sheet, alternating phases.
type spriteTiler struct {
	sheet  *Sheet
	canvas *image.NRGBA
}

func newSpriteTiler(size int, sheet *Sheet) *spriteTiler {
	bs := sheet.bs
	return &spriteTiler{
		sheet:  sheet,
		canvas: image.NewNRGBA(image.Rect(0, 0, size*bs, size*bs)),
	}
}

// Phase returns the animation phase of the module tiled after seq
// others.
func Phase(seq int) int { return seq & 1 }

func (t *spriteTiler) Tile(m Module) {
	bs := t.sheet.bs
	Blit(t.canvas, image.Pt(m.X*bs, m.Y*bs), t.sheet.img,
		t.sheet.Frame(m.Dark, Phase(m.Seq)))
}

func (t *spriteTiler) Finalize() *image.NRGBA { return imaging.Clone(t.canvas) }
func (t *spriteTiler) BlockSize() int         { return t.sheet.bs }
