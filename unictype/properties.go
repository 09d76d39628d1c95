package unictype

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: PropList.txt, Unicode version 11.0.0

import (
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Property is the type for binary code-point properties of the Unicode
// Character Database. Must be convertable to int.
type Property int

// Will be initialized in SetupProperties()
var rangeFromProperty []*unicode.RangeTable

// These are the binary code-point properties of PropList.txt covered by
// this package.
const (
	BidiControl       Property = 0
	JoinControl       Property = 1
	PatternWhiteSpace Property = 2
	WhiteSpace        Property = 3
)

// Range tables for binary code-point properties.
// Will be initialized with SetupProperties().
// Clients can check with unicode.Is(..., rune)
var BidiControlRanges, JoinControlRanges, PatternWhiteSpaceRanges, WhiteSpaceRanges *unicode.RangeTable

const _Property_name = "BidiControlJoinControlPatternWhiteSpaceWhiteSpace"

var _Property_index = [...]uint16{0, 11, 22, 39, 49}

// Stringer for type Property
func (p Property) String() string {
	if p < 0 || p >= Property(len(_Property_index)-1) {
		return "Property(" + strconv.FormatInt(int64(p), 10) + ")"
	}
	return _Property_name[_Property_index[p]:_Property_index[p+1]]
}

func setupPropertyTables() {
	rangeFromProperty = make([]*unicode.RangeTable, 4)

	// Ranges for property Bidi_Control
	BidiControlRanges = rangetable.New('\u061c', '\u200e', '\u200f', '\u202a', '\u202b', '\u202c',
		'\u202d', '\u202e', '\u2066', '\u2067', '\u2068', '\u2069')
	rangeFromProperty[int(BidiControl)] = BidiControlRanges

	// Ranges for property Join_Control
	JoinControlRanges = rangetable.New('\u200c', '\u200d')
	rangeFromProperty[int(JoinControl)] = JoinControlRanges

	// Ranges for property Pattern_White_Space
	PatternWhiteSpaceRanges = rangetable.New('\t', '\n', '\v', '\f', '\r', ' ',
		'\u0085', '\u200e', '\u200f', '\u2028', '\u2029')
	rangeFromProperty[int(PatternWhiteSpace)] = PatternWhiteSpaceRanges

	// Ranges for property White_Space
	WhiteSpaceRanges = rangetable.New('\t', '\n', '\v', '\f', '\r', ' ',
		'\u0085', '\u00a0', '\u1680', '\u2000', '\u2001', '\u2002',
		'\u2003', '\u2004', '\u2005', '\u2006', '\u2007', '\u2008',
		'\u2009', '\u200a', '\u2028', '\u2029', '\u202f', '\u205f',
		'\u3000')
	rangeFromProperty[int(WhiteSpace)] = WhiteSpaceRanges
}
