// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		length  int
		reverse bool
		want    float64
	}{
		{"first", 0, 4, false, 0},
		{"last", 3, 4, false, 1},
		{"middle", 3, 7, false, 0.5},
		{"first reversed", 0, 4, true, 1},
		{"last reversed", 3, 4, true, 0},
		{"nine scale", 2, 9, false, 0.25},
		{"degenerate", 0, 1, false, 0},
		{"empty", 0, 0, true, 0},
		{"above range", 9, 4, false, 1},
		{"below range", -2, 4, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.index, tt.length, tt.reverse)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Normalize(%d, %d, %v) = %v, want %v", tt.index, tt.length, tt.reverse, got, tt.want)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	for length := 2; length <= 9; length++ {
		for i := range length {
			for _, rev := range []bool{false, true} {
				a := Normalize(i, length, rev)
				b := Normalize(i, length, rev)
				if a != b {
					t.Fatalf("Normalize(%d, %d, %v) not idempotent: %v then %v", i, length, rev, a, b)
				}
				if a < 0 || a > 1 {
					t.Errorf("Normalize(%d, %d, %v) = %v, outside [0,1]", i, length, rev, a)
				}
			}
		}
	}
}

func TestRankOutOfScale(t *testing.T) {
	if got := Cut(42).Rank(); got != 0 {
		t.Errorf("Cut(42).Rank() = %d, want 0", got)
	}
	if got := Color(-1).Rank(); got != 0 {
		t.Errorf("Color(-1).Rank() = %d, want 0", got)
	}
	if got := Clarity(ClarityLevels).Rank(); got != 0 {
		t.Errorf("Clarity(%d).Rank() = %d, want 0", ClarityLevels, got)
	}
	if got := Cut(42).String(); got != "Fair" {
		t.Errorf("Cut(42).String() = %q, want %q", got, "Fair")
	}
}

func TestScaleEnds(t *testing.T) {
	cuts := CutScale()
	if cuts[0] != CutFair || cuts[len(cuts)-1] != CutExcellent {
		t.Errorf("CutScale() = %v, want Fair..Excellent", cuts)
	}
	colors := ColorScale()
	if colors[0] != ColorD || colors[len(colors)-1] != ColorJ {
		t.Errorf("ColorScale() = %v, want D..J", colors)
	}
	clar := ClarityScale()
	if clar[0] != ClarityI1 || clar[len(clar)-1] != ClarityFL {
		t.Errorf("ClarityScale() = %v, want I1..FL", clar)
	}
	for i, c := range clar {
		if c.Rank() != i {
			t.Errorf("%v.Rank() = %d, want %d", c, c.Rank(), i)
		}
	}
}

func TestParse(t *testing.T) {
	cutTests := []struct {
		in   string
		want Cut
		ok   bool
	}{
		{"Excellent", CutExcellent, true},
		{"very good", CutVeryGood, true},
		{"  VERY   GOOD ", CutVeryGood, true},
		{"fair", CutFair, true},
		{"Ideal", CutFair, false},
		{"", CutFair, false},
	}
	for _, tt := range cutTests {
		got, ok := ParseCut(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCut(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if got, ok := ParseColor("h"); got != ColorH || !ok {
		t.Errorf("ParseColor(%q) = %v, %v, want H, true", "h", got, ok)
	}
	if got, ok := ParseColor("Z"); got != ColorD || ok {
		t.Errorf("ParseColor(%q) = %v, %v, want D, false", "Z", got, ok)
	}
	if got, ok := ParseClarity("vvs1"); got != ClarityVVS1 || !ok {
		t.Errorf("ParseClarity(%q) = %v, %v, want VVS1, true", "vvs1", got, ok)
	}
	if got, ok := ParseClarity("I3"); got != ClarityI1 || ok {
		t.Errorf("ParseClarity(%q) = %v, %v, want I1, false", "I3", got, ok)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, c := range CutScale() {
		if got, ok := ParseCut(c.String()); !ok || got != c {
			t.Errorf("ParseCut(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for _, c := range ColorScale() {
		if got, ok := ParseColor(c.String()); !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for _, c := range ClarityScale() {
		if got, ok := ParseClarity(c.String()); !ok || got != c {
			t.Errorf("ParseClarity(%q) = %v, %v", c.String(), got, ok)
		}
	}
}

func TestCutQuality(t *testing.T) {
	tests := []struct {
		cut  Cut
		want float64
	}{
		{CutExcellent, 1},
		{CutVeryGood, 2.0 / 3},
		{CutGood, 1.0 / 3},
		{CutFair, 0},
		{Cut(99), 0},
	}
	for _, tt := range tests {
		if got := CutQuality(tt.cut); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("CutQuality(%v) = %v, want %v", tt.cut, got, tt.want)
		}
	}
}

func TestColorGrade(t *testing.T) {
	if got := ColorGrade(ColorD); got != 0 {
		t.Errorf("ColorGrade(D) = %v, want 0", got)
	}
	if got := ColorGrade(ColorJ); got != 1 {
		t.Errorf("ColorGrade(J) = %v, want 1", got)
	}
	if got := ColorGrade(ColorG); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ColorGrade(G) = %v, want 0.5", got)
	}
	if got := ColorGrade(Color(12)); got != 0 {
		t.Errorf("ColorGrade(12) = %v, want 0", got)
	}
}

func TestClarityGrade(t *testing.T) {
	if got := ClarityGrade(ClarityFL); got != 1 {
		t.Errorf("ClarityGrade(FL) = %v, want 1", got)
	}
	if got := ClarityGrade(ClarityI1); got != 0 {
		t.Errorf("ClarityGrade(I1) = %v, want 0", got)
	}
	prev := -1.0
	for _, c := range ClarityScale() {
		g := ClarityGrade(c)
		if g <= prev {
			t.Errorf("ClarityGrade(%v) = %v, not above previous %v", c, g, prev)
		}
		prev = g
	}
}
