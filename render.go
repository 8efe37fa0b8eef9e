// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"

	"github.com/unixdj/tile/matrix"
)

// Options configure a Renderer.
type Options struct {
	Style     Style
	BlockSize int    // pixels per module side; ignored by Bouncy
	Sheet     *Sheet // sprite sheet for Bouncy; nil for the built-in one

	// Restamp stamps finder and alignment patterns after Flat
	// tiling too.  Patterns are always stamped after other styles.
	Restamp bool

	Logger *log.Logger // optional
}

// DefaultBlockSize is the block size used when Options.BlockSize is 0.
const DefaultBlockSize = 32

type state int

const (
	empty state = iota
	tiling
	finalized
)

// A Renderer renders a single matrix.
type Renderer struct {
	opts  Options
	state state
}

// NewRenderer returns a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.BlockSize == 0 {
		opts.BlockSize = DefaultBlockSize
	}
	return &Renderer{opts: opts}
}

// Render draws m and returns the canvas.  It tiles m row by row, left
// to right, and stamps patterns over the result if the style calls
// for it.  A Renderer renders once; later calls return ErrFinalized.
func (r *Renderer) Render(m matrix.Matrix) (*image.NRGBA, error) {
	if r.state != empty {
		return nil, ErrFinalized
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeometry, err)
	}
	sheet := r.opts.Sheet
	if r.opts.Style == Bouncy && sheet == nil {
		var err error
		if sheet, err = DefaultSheet(); err != nil {
			return nil, err
		}
	}
	siz := m.Size()
	t, err := NewTiler(r.opts.Style, siz, r.opts.BlockSize, sheet)
	if err != nil {
		return nil, err
	}
	r.debug("tiling", "style", r.opts.Style, "modules", siz,
		"block", t.BlockSize())

	r.state = tiling
	seq := 0
	for y, row := range m {
		for x, v := range row {
			t.Tile(Module{X: x, Y: y, Seq: seq, Dark: v})
			seq++
		}
	}
	img := t.Finalize()
	r.state = finalized

	if r.opts.Style != Flat || r.opts.Restamp {
		r.debug("stamping patterns", "version", Version(siz))
		if err := Stamp(img, t.BlockSize()); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func (r *Renderer) debug(msg string, kv ...interface{}) {
	if r.opts.Logger != nil {
		r.opts.Logger.Debug(msg, kv...)
	}
}

// Render renders m with a new Renderer.
func Render(m matrix.Matrix, opts Options) (*image.NRGBA, error) {
	return NewRenderer(opts).Render(m)
}
