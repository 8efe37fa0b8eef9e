// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strconv"
)

// EncodePBM writes img to w as a Portable Bit Map, for use with
// netpbm.  Pixels darker than half grey over white are black.
func EncodePBM(w io.Writer, img image.Image) error {
	b := bufio.NewWriter(w)
	r := img.Bounds()
	if _, err := b.WriteString("P4\n" + strconv.Itoa(r.Dx()) + " " +
		strconv.Itoa(r.Dy()) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (r.Dx()+7)/8)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if nrgba, ok := img.(*image.NRGBA); ok {
			pbmRowNRGBA(row, nrgba, y)
		} else {
			pbmRow(row, img, y)
		}
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRowNRGBA encodes row y of img, reading pixels directly.
func pbmRowNRGBA(row []byte, img *image.NRGBA, y int) {
	clear(row)
	pix := img.Pix[img.PixOffset(img.Rect.Min.X, y):]
	for x := 0; x < img.Rect.Dx(); x++ {
		p := pix[x*4 : x*4+4 : x*4+4]
		if isBlack(uint32(p[0]), uint32(p[1]), uint32(p[2]), uint32(p[3])) {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}

// pbmRow encodes row y of img.
func pbmRow(row []byte, img image.Image, y int) {
	clear(row)
	r := img.Bounds()
	for x := 0; x < r.Dx(); x++ {
		c := color.NRGBAModel.Convert(img.At(r.Min.X+x, y)).(color.NRGBA)
		if isBlack(uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)) {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}

// isBlack reports whether the non-premultiplied 8-bit colour,
// composited over white, has luma below 0x80.
func isBlack(r, g, b, a uint32) bool {
	// Y' = (299R + 587G + 114B) / 1000, blended with white by alpha.
	y := (299*r + 587*g + 114*b) / 1000
	y = (y*a + 0xff*(0xff-a)) / 0xff
	return y < 0x80
}
