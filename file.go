// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Formats lists the file name extensions understood by Encode.
var Formats = []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp", "pbm"}

// Encode writes img to w in the format given by the extension of name.
func Encode(w io.Writer, img image.Image, name string) error {
	if strings.EqualFold(filepath.Ext(name), ".pbm") {
		return EncodePBM(w, img)
	}
	f, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutput, name, err)
	}
	return imaging.Encode(w, img, f,
		imaging.PNGCompressionLevel(png.BestCompression))
}

// WriteFile writes img to the named file in the format given by its
// extension.  The image is encoded in memory first, so the file is not
// created unless encoding succeeds.
func WriteFile(name string, img image.Image) error {
	if !isFormat(name) {
		return fmt.Errorf("%w: %s: unsupported format", ErrOutput, name)
	}
	var b bytes.Buffer
	if err := Encode(&b, img, name); err != nil {
		if errors.Is(err, ErrOutput) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", ErrOutput, name, err)
	}
	if err := os.WriteFile(name, b.Bytes(), 0666); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

func isFormat(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, v := range Formats {
		if ext == v {
			return true
		}
	}
	return false
}
