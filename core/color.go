// SPDX-License-Identifier: MIT

package core

import (
	"math/bits"
	"strings"
)

// Color is one of the five colors of the palette.
type Color uint8

// The palette, in allocation order.
const (
	Red Color = iota
	Green
	Yellow
	Purple
	Blue
)

// NumColors is the size of the palette.
const NumColors = 5

var colorNames = [NumColors]string{"Red", "Green", "Yellow", "Purple", "Blue"}

// String returns the color name.
func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}

	return "Color(?)"
}

// ColorSet is a set of palette colors, one bit per color.
type ColorSet uint8

// AllColors holds the full palette.
const AllColors ColorSet = 1<<NumColors - 1

// NewColorSet returns the set holding exactly the given colors.
func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.Add(c)
	}

	return s
}

// Has reports whether c is in the set.
func (s ColorSet) Has(c Color) bool { return s&(1<<c) != 0 }

// Add returns s ∪ {c}.
func (s ColorSet) Add(c Color) ColorSet { return s | 1<<c }

// Remove returns s \ {c}.
func (s ColorSet) Remove(c Color) ColorSet { return s &^ (1 << c) }

// Intersect returns s ∩ o.
func (s ColorSet) Intersect(o ColorSet) ColorSet { return s & o }

// Minus returns s \ o.
func (s ColorSet) Minus(o ColorSet) ColorSet { return s &^ o }

// Len returns the number of colors in the set.
func (s ColorSet) Len() int { return bits.OnesCount8(uint8(s & AllColors)) }

// Colors lists the members in palette order.
func (s ColorSet) Colors() []Color {
	out := make([]Color, 0, s.Len())
	for c := Red; c <= Blue; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// First returns the lowest member in palette order; ok=false for the empty set.
func (s ColorSet) First() (Color, bool) {
	for c := Red; c <= Blue; c++ {
		if s.Has(c) {
			return c, true
		}
	}

	return 0, false
}

// FirstN returns the set made of the first n members in palette order.
func (s ColorSet) FirstN(n int) ColorSet {
	var out ColorSet
	for c := Red; c <= Blue && n > 0; c++ {
		if s.Has(c) {
			out = out.Add(c)
			n--
		}
	}

	return out
}

// Single returns the only member of a one-color set.
func (s ColorSet) Single() (Color, bool) {
	if s.Len() != 1 {
		return 0, false
	}

	return s.First()
}

// String renders the set as "{Red,Blue}".
func (s ColorSet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Colors() {
		names = append(names, c.String())
	}

	return "{" + strings.Join(names, ",") + "}"
}
