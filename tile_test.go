// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// checkBlock reports pixels of the bs×bs block at module (x,y) of img
// that are not c.
func checkBlock(t *testing.T, img *image.NRGBA, x, y, bs int, c color.NRGBA) {
	t.Helper()
	for py := y * bs; py < (y+1)*bs; py++ {
		for px := x * bs; px < (x+1)*bs; px++ {
			if got := img.NRGBAAt(px, py); got != c {
				t.Fatalf("module (%d,%d) pixel (%d,%d) = %v, want %v",
					x, y, px, py, got, c)
			}
		}
	}
}

// tileAll tiles an n×n checkerboard row by row.
func tileAll(t Tiler, n int) {
	seq := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t.Tile(Module{X: x, Y: y, Seq: seq, Dark: (x+y)&1 == 0})
			seq++
		}
	}
}

func TestFlatSize(t *testing.T) {
	for n := 1; n <= 25; n += 3 {
		for _, bs := range []int{1, 3, 32} {
			tl, err := NewTiler(Flat, n, bs, nil)
			if err != nil {
				t.Fatal(err)
			}
			tileAll(tl, n)
			r := tl.Finalize().Rect
			if r != image.Rect(0, 0, n*bs, n*bs) {
				t.Errorf("n=%d bs=%d: bounds %v", n, bs, r)
			}
		}
	}
}

func TestFlatTile(t *testing.T) {
	const n, bs = 5, 4
	tl, err := NewTiler(Flat, n, bs, nil)
	if err != nil {
		t.Fatal(err)
	}
	tileAll(tl, n)
	img := tl.Finalize()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := white
			if (x+y)&1 == 0 {
				c = black
			}
			checkBlock(t, img, x, y, bs, c)
		}
	}
	// Order does not matter.
	tl2, _ := NewTiler(Flat, n, bs, nil)
	for y := n - 1; y >= 0; y-- {
		for x := n - 1; x >= 0; x-- {
			tl2.Tile(Module{X: x, Y: y, Dark: (x+y)&1 == 0})
		}
	}
	if !bytes.Equal(img.Pix, tl2.Finalize().Pix) {
		t.Error("flat tiling depends on order")
	}
}

func TestFinalizeCopies(t *testing.T) {
	tl, _ := NewTiler(Flat, 2, 2, nil)
	tl.Tile(Module{X: 0, Y: 0, Dark: true})
	img := tl.Finalize()
	tl.Tile(Module{X: 1, Y: 1, Dark: true})
	if img.NRGBAAt(2, 2) == black {
		t.Error("Finalize result changed by later Tile")
	}
	img.SetNRGBA(0, 0, white)
	if tl.Finalize().NRGBAAt(0, 0) != black {
		t.Error("canvas changed through Finalize result")
	}
}

// testSheet returns a sheet with bs-pixel frames, each filled with
// frameColour.
func testSheet(t *testing.T, bs int) *Sheet {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, Frames*bs, bs))
	for i := 0; i < Frames; i++ {
		fill(img, solid(bs, frameColour(i)), i, 0, 1, 1)
	}
	s, err := NewSheet(img)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func frameColour(i int) color.NRGBA {
	return color.NRGBA{uint8(0x40 * i), 0x80, uint8(0xff - 0x40*i), 0xff}
}

func TestSpriteTiler(t *testing.T) {
	const n, bs = 5, 3
	tl, err := NewTiler(Bouncy, n, 100, testSheet(t, bs))
	if err != nil {
		t.Fatal(err)
	}
	if tl.BlockSize() != bs {
		t.Errorf("block size %d, want %d", tl.BlockSize(), bs)
	}
	tileAll(tl, n)
	img := tl.Finalize()
	if r := img.Rect; r != image.Rect(0, 0, n*bs, n*bs) {
		t.Fatalf("bounds %v", r)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			k := y*n + x // modules tiled before
			frame := k % 2
			if (x+y)&1 == 0 {
				frame += 2
			}
			checkBlock(t, img, x, y, bs, frameColour(frame))
		}
	}
}

func TestSpriteDeterministic(t *testing.T) {
	sheet := testSheet(t, 2)
	var prev []byte
	for i := 0; i < 3; i++ {
		tl, _ := NewTiler(Bouncy, 7, 0, sheet)
		tileAll(tl, 7)
		img := tl.Finalize()
		if prev != nil && !bytes.Equal(prev, img.Pix) {
			t.Fatalf("run %d differs", i)
		}
		prev = img.Pix
	}
}

func TestPhase(t *testing.T) {
	for k := 0; k < 10; k++ {
		if got, want := Phase(k) == 1, k%2 == 1; got != want {
			t.Errorf("Phase(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestNewTilerErrors(t *testing.T) {
	for _, v := range []struct {
		style    Style
		size, bs int
		want     error
	}{
		{Flat, 0, 4, ErrGeometry},
		{Flat, 3, 0, ErrGeometry},
		{Bouncy, 3, 4, ErrAsset}, // no sheet
	} {
		_, err := NewTiler(v.style, v.size, v.bs, nil)
		if !errors.Is(err, v.want) {
			t.Errorf("%v %d %d: error %v, want %v",
				v.style, v.size, v.bs, err, v.want)
		}
	}
	if _, err := NewTiler(Style(9), 3, 3, nil); err == nil {
		t.Error("unknown style accepted")
	}
}

func TestParseStyle(t *testing.T) {
	for _, v := range []struct {
		s    string
		want Style
	}{
		{"flat", Flat}, {"base", Flat}, {"bounce", Bouncy},
		{"Bouncy", Bouncy},
	} {
		if got, err := ParseStyle(v.s); err != nil || got != v.want {
			t.Errorf("ParseStyle(%q) = %v, %v", v.s, got, err)
		}
	}
	if _, err := ParseStyle("stars"); err == nil {
		t.Error("ParseStyle accepted stars")
	}
	for _, s := range Styles() {
		st, err := ParseStyle(s)
		if err != nil || st.String() != s {
			t.Errorf("style %q does not round trip", s)
		}
	}
}
