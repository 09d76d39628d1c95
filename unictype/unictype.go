package unictype

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Version is the version of the Unicode Character Database the property
// tables have been generated from.
const Version = "11.0.0"

var setupOnce sync.Once

// SetupProperties initializes the property range tables. The lookup
// functions call it on demand, but clients may want to call it up front
// to control the point in time of the table allocation.
func SetupProperties() {
	setupOnce.Do(setupPropertyTables)
}

// Is reports whether code point r carries the binary property p.
// Unknown properties hold for no code point.
func Is(p Property, r rune) bool {
	SetupProperties()
	if p < 0 || int(p) >= len(rangeFromProperty) {
		return false
	}
	return unicode.Is(rangeFromProperty[p], r)
}

// IsBidiControl reports whether r is a format control character for
// bidirectional text (property Bidi_Control).
func IsBidiControl(r rune) bool {
	return Is(BidiControl, r)
}

// IsJoinControl reports whether r controls cursive joining (property
// Join_Control).
func IsJoinControl(r rune) bool {
	return Is(JoinControl, r)
}

// IsPatternWhiteSpace reports whether r is white space for the purpose
// of syntax parsing (property Pattern_White_Space).
func IsPatternWhiteSpace(r rune) bool {
	return Is(PatternWhiteSpace, r)
}

// IsWhiteSpace reports whether r is white space (property White_Space).
func IsWhiteSpace(r rune) bool {
	return Is(WhiteSpace, r)
}

// RangesFor returns the range table of property p, or nil for unknown
// properties.
func RangesFor(p Property) *unicode.RangeTable {
	SetupProperties()
	if p < 0 || int(p) >= len(rangeFromProperty) {
		return nil
	}
	return rangeFromProperty[p]
}

var propertyNames = map[string]Property{
	"Bidi_Control":        BidiControl,
	"Join_Control":        JoinControl,
	"Pattern_White_Space": PatternWhiteSpace,
	"White_Space":         WhiteSpace,
}

// ForName returns the property for a PropList.txt property name, e.g.
// "Bidi_Control". ok will be false for names not covered by this
// package.
func ForName(name string) (p Property, ok bool) {
	p, ok = propertyNames[strings.TrimSpace(name)]
	if !ok {
		tracer().Debugf("unictype does not cover property '%s'", name)
	}
	return
}

var formatControls *unicode.RangeTable
var mergeOnce sync.Once

// FormatControls returns a merged range table of the Bidi_Control and
// Join_Control characters, i.e. the zero-width controls a text renderer
// is not supposed to display.
func FormatControls() *unicode.RangeTable {
	SetupProperties()
	mergeOnce.Do(func() {
		formatControls = rangetable.Merge(BidiControlRanges, JoinControlRanges)
	})
	return formatControls
}
