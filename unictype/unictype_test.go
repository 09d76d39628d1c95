package unictype

import (
	"testing"
	"unicode"

	"github.com/glport/glport/internal/ucdparse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

var fixtureFiles = map[Property]string{
	BidiControl:       "pr_bidi_control.txt",
	JoinControl:       "pr_join_control.txt",
	PatternWhiteSpace: "pr_pattern_white_space.txt",
	WhiteSpace:        "pr_white_space.txt",
}

type runeRange struct {
	from, to rune
}

func loadFixtureRanges(t *testing.T, filename string) []runeRange {
	tf := ucdparse.OpenTestFile(filename, t)
	if tf == nil {
		t.Fatalf("cannot open fixture file %s", filename)
	}
	defer tf.Close()
	var ranges []runeRange
	for tf.Scan() {
		from, to, err := ucdparse.RangeTestInput(tf.Text())
		if err != nil {
			t.Fatal(err)
		}
		ranges = append(ranges, runeRange{from, to})
	}
	if err := tf.Err(); err != nil {
		t.Fatal(err)
	}
	if len(ranges) == 0 {
		t.Fatalf("fixture file %s holds no ranges", filename)
	}
	return ranges
}

func contains(ranges []runeRange, r rune) bool {
	for _, rng := range ranges {
		if rng.from <= r && r <= rng.to {
			return true
		}
	}
	return false
}

// Walks the whole code-point space for every property: membership must
// hold exactly within the fixture ranges.
func TestPropertyMembership(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for p, filename := range fixtureFiles {
		ranges := loadFixtureRanges(t, filename)
		for c := rune(0); c <= unicode.MaxRune; c++ {
			expected := contains(ranges, c)
			if Is(p, c) != expected {
				t.Fatalf("Is(%s, %#U) = %v, should be %v", p, c, !expected, expected)
			}
		}
	}
}

func TestFixtureRangesAreOrdered(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, filename := range fixtureFiles {
		ranges := loadFixtureRanges(t, filename)
		prev := rune(-1)
		for _, rng := range ranges {
			if rng.from > rng.to {
				t.Errorf("%s: range %04X..%04X is inverted", filename, rng.from, rng.to)
			}
			if rng.from <= prev {
				t.Errorf("%s: range %04X..%04X overlaps its predecessor", filename,
					rng.from, rng.to)
			}
			prev = rng.to
		}
	}
}

func TestIsBidiControl(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, c := range []rune{0x061C, 0x200E, 0x200F, 0x202A, 0x202E, 0x2066, 0x2069} {
		if !IsBidiControl(c) {
			t.Errorf("%#U should be a bidi control character", c)
		}
	}
	for _, c := range []rune{0x061B, 0x061D, 0x200D, 0x2029, 0x202F, 0x2065, 0x206A, 'A'} {
		if IsBidiControl(c) {
			t.Errorf("%#U should not be a bidi control character", c)
		}
	}
}

func TestForName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	p, ok := ForName("Bidi_Control")
	if !ok || p != BidiControl {
		t.Errorf("lookup of Bidi_Control failed, have %v/%v", p, ok)
	}
	if p.String() != "BidiControl" {
		t.Errorf("unexpected stringer output %q", p.String())
	}
	if _, ok := ForName("Soft_Dotted"); ok {
		t.Errorf("Soft_Dotted is not covered, lookup should fail")
	}
}

func TestUnknownProperty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if Is(Property(99), 'A') {
		t.Errorf("unknown property should hold for no code point")
	}
	if RangesFor(Property(99)) != nil {
		t.Errorf("unknown property should have no range table")
	}
}

func TestFormatControls(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	merged := FormatControls()
	for _, c := range []rune{0x061C, 0x200C, 0x200D, 0x202A} {
		if !unicode.Is(merged, c) {
			t.Errorf("%#U should be in the merged format-control table", c)
		}
	}
	if unicode.Is(merged, ' ') {
		t.Errorf("SPACE should not be in the merged format-control table")
	}
}
