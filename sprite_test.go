// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestDefaultSheet(t *testing.T) {
	s, err := DefaultSheet()
	if err != nil {
		t.Fatal(err)
	}
	if s.BlockSize() != 32 {
		t.Errorf("block size %d, want 32", s.BlockSize())
	}
	// Frame centres are light for light modules and dark for dark.
	for _, dark := range []bool{false, true} {
		for phase := 0; phase < 2; phase++ {
			r := s.Frame(dark, phase)
			c := s.img.NRGBAAt(r.Min.X+16, 16)
			if got := c.R < 0x80; got != dark {
				t.Errorf("frame dark=%v phase %d: centre %v",
					dark, phase, c)
			}
		}
	}
}

func TestSheetFrame(t *testing.T) {
	s := testSheet(t, 4)
	for i, v := range []struct {
		dark  bool
		phase int
	}{{false, 0}, {false, 1}, {true, 0}, {true, 1}} {
		if got, want := s.Frame(v.dark, v.phase), image.Rect(i*4, 0, i*4+4, 4); got != want {
			t.Errorf("Frame(%v, %d) = %v, want %v",
				v.dark, v.phase, got, want)
		}
	}
}

func TestNewSheetSize(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 0, 0),
		image.Rect(0, 0, 96, 32),
		image.Rect(0, 0, 128, 64),
	} {
		if _, err := NewSheet(image.NewNRGBA(r)); !errors.Is(err, ErrAsset) {
			t.Errorf("%v: error %v, want ErrAsset", r, err)
		}
	}
	// Bounds need not start at the origin.
	s, err := NewSheet(image.NewNRGBA(image.Rect(10, 10, 50, 20)))
	if err != nil || s.BlockSize() != 10 {
		t.Errorf("offset sheet: %v", err)
	}
}

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSheet(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrAsset) {
		t.Errorf("missing file: error %v, want ErrAsset", err)
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a PNG"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSheet(bad); !errors.Is(err, ErrAsset) {
		t.Errorf("corrupt file: error %v, want ErrAsset", err)
	}
	good := filepath.Join(dir, "sheet.png")
	if err := imaging.Save(testSheet(t, 8).img, good); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSheet(good)
	if err != nil {
		t.Fatal(err)
	}
	if s.BlockSize() != 8 {
		t.Errorf("block size %d, want 8", s.BlockSize())
	}
	if c := s.img.NRGBAAt(8*3+1, 1); c != frameColour(3) {
		t.Errorf("frame 3 colour %v, want %v", c, frameColour(3))
	}
}
