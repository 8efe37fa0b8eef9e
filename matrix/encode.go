// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxing "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/decoder"
	"github.com/skip2/go-qrcode"
	"rsc.io/qr"
)

// A Backend selects the QR encoder.
type Backend int

const (
	RSC   Backend = iota // rsc.io/qr
	Skip2                // github.com/skip2/go-qrcode
	ZXing                // github.com/makiuchi-d/gozxing
)

var backendNames = [...]string{"rsc", "skip2", "zxing"}

func (b Backend) String() string {
	if RSC <= b && b <= ZXing {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Backends returns the names accepted by ParseBackend.
func Backends() []string { return backendNames[:] }

// ParseBackend returns the backend called s.
func ParseBackend(s string) (Backend, error) {
	for i, v := range backendNames {
		if strings.EqualFold(s, v) {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("matrix: unknown backend %q", s)
}

// Encode encodes text at error correction level Q (25% recovery)
// and returns the module matrix without a quiet zone.
func Encode(text string, b Backend) (Matrix, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	var (
		m   Matrix
		err error
	)
	switch b {
	case RSC:
		m, err = encodeRSC(text)
	case Skip2:
		m, err = encodeSkip2(text)
	case ZXing:
		m, err = encodeZXing(text)
	default:
		return nil, fmt.Errorf("matrix: unknown backend %d", int(b))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCapacity, b, err)
	}
	return m, nil
}

func encodeRSC(text string) (Matrix, error) {
	c, err := qr.Encode(text, qr.Q)
	if err != nil {
		return nil, err
	}
	m := make(Matrix, c.Size)
	for y := range m {
		m[y] = make([]bool, c.Size)
		for x := range m[y] {
			m[y][x] = c.Black(x, y)
		}
	}
	return m, nil
}

func encodeSkip2(text string) (Matrix, error) {
	q, err := qrcode.New(text, qrcode.High)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return Matrix(q.Bitmap()), nil
}

func encodeZXing(text string) (Matrix, error) {
	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: decoder.ErrorCorrectionLevel_Q,
		gozxing.EncodeHintType_CHARACTER_SET:    "UTF-8",
		gozxing.EncodeHintType_MARGIN:           0,
	}
	// Requested width and height of 0 yield one pixel per module.
	bm, err := zxing.NewQRCodeWriter().Encode(text,
		gozxing.BarcodeFormat_QR_CODE, 0, 0, hints)
	if err != nil {
		return nil, err
	}
	siz := bm.GetWidth()
	m := make(Matrix, siz)
	for y := range m {
		m[y] = make([]bool, siz)
		for x := range m[y] {
			m[y][x] = bm.Get(x, y)
		}
	}
	return m, nil
}
