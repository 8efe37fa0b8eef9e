// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"fmt"
	"image"
)

// Blit copies the rectangle sr of src to dst with its upper left
// corner at dp.  Pixels are copied verbatim, without blending.
// Blit panics if either rectangle is not within its image.
func Blit(dst *image.NRGBA, dp image.Point,
	src *image.NRGBA, sr image.Rectangle) {
	dr := sr.Sub(sr.Min).Add(dp)
	if !sr.In(src.Rect) || !dr.In(dst.Rect) {
		panic(fmt.Sprintf("tile: blit %v from %v to %v in %v",
			sr, src.Rect, dr, dst.Rect))
	}
	if sr.Empty() {
		return
	}
	n := sr.Dx() * 4
	si, di := src.PixOffset(sr.Min.X, sr.Min.Y), dst.PixOffset(dp.X, dp.Y)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
		si += src.Stride
		di += dst.Stride
	}
}

// fill copies block to every cell of the w×h grid of block-sized
// cells starting at cell (x0, y0) of dst.
func fill(dst *image.NRGBA, block *image.NRGBA, x0, y0, w, h int) {
	bs := block.Rect.Dx()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			Blit(dst, image.Pt(x*bs, y*bs), block, block.Rect)
		}
	}
}
