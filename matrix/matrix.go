// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix holds QR module matrices and the encoders that
// produce them.
package matrix // import "github.com/unixdj/tile/matrix"

import (
	"errors"
	"strings"
)

var (
	ErrNotSquare = errors.New("matrix: not a non-empty square")
	ErrEmpty     = errors.New("matrix: empty text")
	ErrCapacity  = errors.New("matrix: text too long to encode as QR")
)

// A Matrix is a square grid of QR modules indexed as m[y][x].
// true is dark, false is light.
type Matrix [][]bool

// Size returns the number of modules on a side.
func (m Matrix) Size() int { return len(m) }

// Validate returns ErrNotSquare unless m is a non-empty square.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return ErrNotSquare
	}
	for _, row := range m {
		if len(row) != len(m) {
			return ErrNotSquare
		}
	}
	return nil
}

// Dark returns true if the module at (x,y) is dark.  Modules outside
// the matrix are light.
func (m Matrix) Dark(x, y int) bool {
	return 0 <= y && y < len(m) && 0 <= x && x < len(m[y]) && m[y][x]
}

// Quiet is the width of the quiet zone drawn by String.
const Quiet = 4

// String returns the matrix drawn with UTF-8 half blocks, two rows per
// line, surrounded by a quiet zone.  Light modules are drawn as blocks
// for terminals with dark backgrounds.
func (m Matrix) String() string {
	siz := len(m)
	var b strings.Builder
	b.Grow((siz + 2*Quiet) * (siz/2 + Quiet + 1) * 3)
	for y := -Quiet; y < siz+Quiet; y += 2 {
		for x := -Quiet; x < siz+Quiet; x++ {
			n := 0
			if m.Dark(x, y) {
				n = 2
			}
			if m.Dark(x, y+1) {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
