// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

// Version returns the QR version of a code with size modules on a
// side.  Sizes run from 21 for version 1 to 177 for version 40.
func Version(size int) int { return (size - 17) / 4 }

// AlignmentCoords returns the row and column coordinates of alignment
// pattern centres for a QR code of the given version and size, in
// ascending order.  The first coordinate is always 6, the last
// size-7.  Version 1 has no alignment patterns.
func AlignmentCoords(version, size int) []int {
	if version <= 1 {
		return []int{}
	}
	n := 2 + version/7
	// Centres are evenly spaced from size-7 down, the remainder
	// going to the first gap.  The spacing is even so that the
	// centres fall on dark timing pattern modules.
	step := 26 // version 32 breaks the rule
	if version != 32 {
		step = (size - 16 + n*2) / (n*2 - 2) * 2
	}
	coords := make([]int, 1, n)
	coords[0] = 6
	for i := n - 2; i >= 0; i-- {
		coords = append(coords, size-7-i*step)
	}
	return coords
}
