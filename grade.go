// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Cut is the cut grade of a stone, ordered worst to best.
type Cut int

// Cut grades.
const (
	CutFair Cut = iota
	CutGood
	CutVeryGood
	CutExcellent
)

// Color is the color grade of a stone, ordered best (colorless) to worst (tinted).
type Color int

// Color grades.
const (
	ColorD Color = iota
	ColorE
	ColorF
	ColorG
	ColorH
	ColorI
	ColorJ
)

// Clarity is the clarity grade of a stone, ordered worst to best.
type Clarity int

// Clarity grades.
const (
	ClarityI1 Clarity = iota
	ClaritySI2
	ClaritySI1
	ClarityVS2
	ClarityVS1
	ClarityVVS2
	ClarityVVS1
	ClarityIF
	ClarityFL
)

var (
	cutNames     = [...]string{"Fair", "Good", "Very Good", "Excellent"}
	colorNames   = [...]string{"D", "E", "F", "G", "H", "I", "J"}
	clarityNames = [...]string{"I1", "SI2", "SI1", "VS2", "VS1", "VVS2", "VVS1", "IF", "FL"}
)

// Scale lengths.
const (
	CutLevels     = len(cutNames)
	ColorLevels   = len(colorNames)
	ClarityLevels = len(clarityNames)
)

// Rank returns the position of c on the cut scale. Values outside the
// scale rank 0.
func (c Cut) Rank() int { return rank(int(c), CutLevels) }

// Rank returns the position of c on the color scale. Values outside the
// scale rank 0.
func (c Color) Rank() int { return rank(int(c), ColorLevels) }

// Rank returns the position of c on the clarity scale. Values outside the
// scale rank 0.
func (c Clarity) Rank() int { return rank(int(c), ClarityLevels) }

func (c Cut) String() string     { return cutNames[c.Rank()] }
func (c Color) String() string   { return colorNames[c.Rank()] }
func (c Clarity) String() string { return clarityNames[c.Rank()] }

// Valid reports whether c is a member of the cut scale.
func (c Cut) Valid() bool { return c >= 0 && int(c) < CutLevels }

// Valid reports whether c is a member of the color scale.
func (c Color) Valid() bool { return c >= 0 && int(c) < ColorLevels }

// Valid reports whether c is a member of the clarity scale.
func (c Clarity) Valid() bool { return c >= 0 && int(c) < ClarityLevels }

func rank(v, n int) int {
	if v < 0 || v >= n {
		return 0
	}
	return v
}

// CutScale returns the cut grades in scale order.
func CutScale() []Cut {
	s := make([]Cut, CutLevels)
	for i := range s {
		s[i] = Cut(i)
	}
	return s
}

// ColorScale returns the color grades in scale order.
func ColorScale() []Color {
	s := make([]Color, ColorLevels)
	for i := range s {
		s[i] = Color(i)
	}
	return s
}

// ClarityScale returns the clarity grades in scale order.
func ClarityScale() []Clarity {
	s := make([]Clarity, ClarityLevels)
	for i := range s {
		s[i] = Clarity(i)
	}
	return s
}

// ParseCut parses a cut name such as "very good". Matching ignores case and
// surrounding or repeated whitespace. Unknown names return CutFair and false.
func ParseCut(s string) (Cut, bool) {
	i, ok := lookup(s, cutNames[:])
	return Cut(i), ok
}

// ParseColor parses a color letter. Unknown names return ColorD and false.
func ParseColor(s string) (Color, bool) {
	i, ok := lookup(s, colorNames[:])
	return Color(i), ok
}

// ParseClarity parses a clarity name such as "VVS1". Unknown names return
// ClarityI1 and false.
func ParseClarity(s string) (Clarity, bool) {
	i, ok := lookup(s, clarityNames[:])
	return Clarity(i), ok
}

func lookup(s string, names []string) (int, bool) {
	fold := cases.Fold()
	key := fold.String(strings.Join(strings.Fields(s), " "))
	for i, name := range names {
		if fold.String(name) == key {
			return i, true
		}
	}
	return 0, false
}

// Normalize maps index on a scale of length entries onto [0,1] as
// index/(length-1), or 1 minus that when reverse is set. Scales shorter than
// two entries normalize to 0.
func Normalize(index, length int, reverse bool) float64 {
	if length < 2 {
		return 0
	}
	v := float64(index) / float64(length-1)
	v = math.Max(0, math.Min(1, v))
	if reverse {
		return 1 - v
	}
	return v
}

// The shader scalars are defined over the reference grading table, which
// lists every dimension best first. refRank converts a scale rank into a
// position on that table.

func (c Cut) refRank() int     { return CutLevels - 1 - c.Rank() }
func (c Color) refRank() int   { return c.Rank() }
func (c Clarity) refRank() int { return ClarityLevels - 1 - c.Rank() }

// CutQuality returns the cut as a continuous quality in [0,1]; Excellent is 1.
// Unknown cuts yield 0.
func CutQuality(c Cut) float64 {
	if !c.Valid() {
		return 0
	}
	return Normalize(c.refRank(), CutLevels, true)
}

// ColorGrade returns the color rank in [0,1]; D (colorless) is 0.
// Unknown colors yield 0.
func ColorGrade(c Color) float64 {
	if !c.Valid() {
		return 0
	}
	return Normalize(c.refRank(), ColorLevels, false)
}

// ClarityGrade returns the clarity as a quality in [0,1] where higher means
// fewer inclusions and less haze; FL is 1 and I1 is 0. Unknown clarities yield 0.
func ClarityGrade(c Clarity) float64 {
	if !c.Valid() {
		return 0
	}
	return Normalize(c.refRank(), ClarityLevels, true)
}
