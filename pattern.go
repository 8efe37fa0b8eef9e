// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"fmt"
	"image"
)

const (
	finderSize = 7 // finder pattern side in modules
	alignSize  = 5 // alignment pattern side in modules
)

// finderBlock returns a finder pattern: a dark 7x7 square around
// a light 5x5 square around a dark 3x3 square.
func finderBlock(bs int) *image.NRGBA {
	b := image.NewNRGBA(image.Rect(0, 0, finderSize*bs, finderSize*bs))
	dark, light := solid(bs, black), solid(bs, white)
	fill(b, dark, 0, 0, 7, 7)
	fill(b, light, 1, 1, 5, 5)
	fill(b, dark, 2, 2, 3, 3)
	return b
}

// alignmentBlock returns an alignment pattern: a dark 5x5 square
// around a light 3x3 square around a dark module.
func alignmentBlock(bs int) *image.NRGBA {
	b := image.NewNRGBA(image.Rect(0, 0, alignSize*bs, alignSize*bs))
	dark, light := solid(bs, black), solid(bs, white)
	fill(b, dark, 0, 0, 5, 5)
	fill(b, light, 1, 1, 3, 3)
	fill(b, dark, 2, 2, 1, 1)
	return b
}

// geometry returns the number of modules on a side of img, or an
// error unless img is a QR code of bs-pixel modules.
func geometry(img *image.NRGBA, bs int) (int, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if bs <= 0 || w != h || w%bs != 0 {
		return 0, fmt.Errorf("%w: %dx%d image, block size %d",
			ErrGeometry, w, h, bs)
	}
	n := w / bs
	if n < 21 || (n-17)%4 != 0 {
		return 0, fmt.Errorf("%w: %d modules is not a QR code size",
			ErrGeometry, n)
	}
	return n, nil
}

// Stamp draws finder and alignment patterns over img, a QR code
// with bs×bs pixel modules.
func Stamp(img *image.NRGBA, bs int) error {
	n, err := geometry(img, bs)
	if err != nil {
		return err
	}
	stampFinders(img, bs, n)
	stampAlignment(img, bs, n)
	return nil
}

// StampFinders draws finder patterns over the upper left, upper right
// and lower left corners of img.
func StampFinders(img *image.NRGBA, bs int) error {
	n, err := geometry(img, bs)
	if err == nil {
		stampFinders(img, bs, n)
	}
	return err
}

// StampAlignment draws alignment patterns over img, skipping the
// three corners taken by finder patterns.
func StampAlignment(img *image.NRGBA, bs int) error {
	n, err := geometry(img, bs)
	if err == nil {
		stampAlignment(img, bs, n)
	}
	return err
}

func stampFinders(img *image.NRGBA, bs, n int) {
	b := finderBlock(bs)
	o := img.Rect.Min
	far := (n - finderSize) * bs
	for _, p := range [...]image.Point{{0, 0}, {far, 0}, {0, far}} {
		Blit(img, o.Add(p), b, b.Rect)
	}
}

// AlignmentCentres returns the module coordinates of alignment
// pattern centres of a QR code of size n.
func AlignmentCentres(n int) []image.Point {
	coords := AlignmentCoords(Version(n), n)
	pts := make([]image.Point, 0, len(coords)*len(coords))
	for _, x := range coords {
		for _, y := range coords {
			if x == 6 && (y == 6 || y == n-7) || y == 6 && x == n-7 {
				continue
			}
			pts = append(pts, image.Pt(x, y))
		}
	}
	return pts
}

func stampAlignment(img *image.NRGBA, bs, n int) {
	b := alignmentBlock(bs)
	o := img.Rect.Min
	for _, c := range AlignmentCentres(n) {
		p := c.Sub(image.Pt(alignSize/2, alignSize/2)).Mul(bs)
		Blit(img, o.Add(p), b, b.Rect)
	}
}
