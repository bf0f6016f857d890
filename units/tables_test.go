package units

import (
	"strings"
	"testing"
)

func TestPrefixPower(t *testing.T) {
	tests := []struct {
		letter string
		power  int64
	}{
		{"G", 9}, {"M", 6}, {"k", 3},
		{"c", -2}, {"m", -3}, {"u", -6},
		{"n", -9}, {"p", -12}, {"a", -18},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			power, ok := PrefixPower(tt.letter)
			if !ok {
				t.Fatalf("PrefixPower(%q) missing", tt.letter)
			}
			if power != tt.power {
				t.Errorf("PrefixPower(%q) = %d, want %d", tt.letter, power, tt.power)
			}
		})
	}

	if _, ok := PrefixPower("d"); ok {
		t.Error("PrefixPower(\"d\") should be unknown")
	}
}

func TestPrefixLettersUnambiguous(t *testing.T) {
	// First-match scanning is only sound if no supported letter is a
	// prefix of another.
	letters := PrefixLetters()
	for i, a := range letters {
		for j, b := range letters {
			if i == j {
				continue
			}
			if strings.HasPrefix(b, a) {
				t.Errorf("prefix %q is a prefix of %q", a, b)
			}
		}
	}
}

func TestPrefixLettersIsACopy(t *testing.T) {
	letters := PrefixLetters()
	letters[0] = "X"
	if PrefixLetters()[0] == "X" {
		t.Error("PrefixLetters leaked the internal table")
	}
}

func TestDerivedEquivalent(t *testing.T) {
	hz, ok := DerivedEquivalent("Hz")
	if !ok {
		t.Fatal("Hz should have a derived equivalent")
	}
	if !hz.Equal(MustParse("s^-1")) {
		t.Errorf("Hz equivalent = %s, want s^-1", hz)
	}

	if _, ok := DerivedEquivalent("m"); ok {
		t.Error("m is primitive, no equivalent expected")
	}
}

func TestDerivedGlyphsSurvivePrefixStripping(t *testing.T) {
	// A derived glyph that begins with a prefix letter could never be
	// looked up, because parsing strips the letter first.
	for _, glyph := range DerivedGlyphs() {
		_, stripped, err := splitPrefix(glyph)
		if err != nil {
			t.Errorf("splitPrefix(%q) error: %v", glyph, err)
			continue
		}
		if stripped != glyph {
			t.Errorf("derived glyph %q loses its head to prefix stripping (-> %q)", glyph, stripped)
		}
	}
}
