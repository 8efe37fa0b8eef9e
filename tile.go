// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tile renders QR module matrices into styled raster images.

Each module is drawn by a Tiler as a square block of pixels.  The Flat
style draws solid black and white blocks.  The Bouncy style draws
frames from a sprite sheet, alternating between two animation phases
from one module to the next, which may leave finder and alignment
patterns hard to read; after tiling, such images have the patterns
stamped over them in flat black and white.
*/
package tile // import "github.com/unixdj/tile"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	ErrGeometry  = errors.New("tile: invalid geometry")
	ErrAsset     = errors.New("tile: cannot load sprite sheet")
	ErrOutput    = errors.New("tile: cannot write image")
	ErrFinalized = errors.New("tile: renderer already used")
)

var (
	black = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// A Style selects a Tiler.
type Style int

const (
	Flat   Style = iota // solid black and white blocks
	Bouncy              // two-phase sprite animation
)

var styleNames = [...]string{"flat", "bounce"}

func (s Style) String() string {
	if Flat <= s && s <= Bouncy {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Styles returns the names accepted by ParseStyle.
func Styles() []string { return styleNames[:] }

// ParseStyle returns the style called s.  "base" and "bouncy" are
// accepted as aliases.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "flat", "base":
		return Flat, nil
	case "bounce", "bouncy":
		return Bouncy, nil
	}
	return 0, fmt.Errorf("tile: unknown style %q", s)
}

// A Module describes one module handed to a Tiler.  Seq is the number
// of modules tiled before it; the Renderer tiles in row-major order,
// so Seq is Y*size+X.
type Module struct {
	X, Y, Seq int
	Dark      bool
}

// A Tiler draws modules onto a canvas of size×size blocks.
type Tiler interface {
	// Tile draws m at (m.X*BlockSize(), m.Y*BlockSize()).
	Tile(m Module)
	// Finalize returns a copy of the canvas.  The Tiler remains
	// usable; later tiles do not affect the copy.
	Finalize() *image.NRGBA
	// BlockSize returns the number of pixels on a block side.
	BlockSize() int
}

// NewTiler returns a Tiler of the given style for a size×size matrix.
// blockSize is ignored by Bouncy, which uses the block size of sheet;
// sheet is ignored by Flat.
func NewTiler(style Style, size, blockSize int, sheet *Sheet) (Tiler, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: matrix size %d", ErrGeometry, size)
	}
	switch style {
	case Flat:
		if blockSize <= 0 {
			return nil, fmt.Errorf("%w: block size %d",
				ErrGeometry, blockSize)
		}
		return newFlatTiler(size, blockSize), nil
	case Bouncy:
		if sheet == nil {
			return nil, fmt.Errorf("%w: no sheet", ErrAsset)
		}
		return newSpriteTiler(size, sheet), nil
	}
	return nil, fmt.Errorf("tile: unknown style %d", int(style))
}

// solid returns a bs×bs block of colour c.
func solid(bs int, c color.Color) *image.NRGBA {
	return imaging.New(bs, bs, c)
}
