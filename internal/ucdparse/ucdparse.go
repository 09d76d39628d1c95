/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. The
property table generator uses it to read PropList.txt and friends; the
unictype tests use it to read the checked-in range fixture files.
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and its
// clients. The scanner will read lines and wrap the content into tokens for
// the client to perform its operations on.
type Token struct {
	LineNo    int       // line of the data item within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // semicolon separated fields of the line, trimmed
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

//go:generate stringer -type=TokenType
type TokenType int8

const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

// newToken creates a scanner token initialized with a line index.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at(%d) %#U..%#U type=%d %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field 1 is the
// first field after the code-point range.
func (token *Token) Field(i int) string {
	if len(token.Fields) > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
