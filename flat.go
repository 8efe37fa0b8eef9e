// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"image"

	"github.com/disintegration/imaging"
)

// flatTiler draws dark modules black and light modules white.
type flatTiler struct {
	bs           int
	canvas       *image.NRGBA
	black, white *image.NRGBA
}

func newFlatTiler(size, bs int) *flatTiler {
	return &flatTiler{
		bs:     bs,
		canvas: image.NewNRGBA(image.Rect(0, 0, size*bs, size*bs)),
		black:  solid(bs, black),
		white:  solid(bs, white),
	}
}

func (t *flatTiler) Tile(m Module) {
	src := t.white
	if m.Dark {
		src = t.black
	}
	Blit(t.canvas, image.Pt(m.X*t.bs, m.Y*t.bs), src, src.Rect)
}

func (t *flatTiler) Finalize() *image.NRGBA { return imaging.Clone(t.canvas) }
func (t *flatTiler) BlockSize() int         { return t.bs }
