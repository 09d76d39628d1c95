package ucdparse

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glport/glport"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner over UCD data files.
//
// Our line-level scanner will operate by calling scanning steps in a chain,
// iteratively. Each step function tests for valid lookahead and then possibly
// branches out to a subsequent step function. Step functions may consume
// input characters.
type Scanner struct {
	Buf       *glport.LineBuffer // line buffer abstracts away properties of input readers
	Step      scannerStep        // the next scanner step to execute in a chain
	LastError error              // last error, if any
	Token     *Token             // last token produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	buf := glport.NewPooledLineBuffer(inputReader)
	sc := &Scanner{Buf: buf}
	sc.Step = sc.ScanItem
	return sc, nil
}

// Close hands the scanner's line buffer back to the pool.
func (sc *Scanner) Close() {
	if sc.Buf != nil {
		sc.Buf.Release()
		sc.Buf = nil
	}
}

// Parse iterates over each data item of a UCD file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	defer sc.Close()
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next line-level token. A token subsumes the
// properties of one data item line of UCD input. Comment-only lines, blank
// lines and `@missing` annotations are skipped.
//
// Next will iterate over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value
// from a step function, meaning there is no further step applicable in this
// chain.
func (sc *Scanner) Next() bool {
	if !sc.skipIrrelevantLines() {
		sc.Token = newToken(sc.Buf.CurrentLine)
		sc.Token.TokenType = EOF
		return false
	}
	sc.Token = newToken(sc.Buf.CurrentLine)
	step := sc.Step
	for step != nil {
		sc.Token, step = step(sc.Token)
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			sc.Buf.AdvanceLine()
			return false
		}
	}
	sc.Buf.AdvanceLine()
	return true
}

// skipIrrelevantLines positions the buffer on the next data item line.
func (sc *Scanner) skipIrrelevantLines() bool {
	for {
		if sc.Buf.IsEof() {
			return false
		}
		line := strings.TrimSpace(sc.Buf.Text)
		if line != "" && !strings.HasPrefix(line, "#") {
			return true
		}
		sc.Buf.AdvanceLine()
	}
}

// ScanItem is the step function to start recognizing a line-level data item.
func (sc *Scanner) ScanItem(token *Token) (*Token, scannerStep) {
	return token, sc.ScanRuneRange
}

// ScanRuneRange matches a single code point `XXXX` or a range `XXXX..YYYY`
// at the start of a data item line.
func (sc *Scanner) ScanRuneRange(token *Token) (*Token, scannerStep) {
	from, ok := sc.scanHexWord(token)
	if !ok {
		return token, nil
	}
	token.runeFrom, token.runeTo = from, from
	var isRange bool
	for sc.Buf.Lookahead == '.' {
		isRange = true
		sc.Buf.Advance()
	}
	if !isRange {
		token.TokenType = SingleDataItem
		return token, sc.ScanItemBody
	}
	to, ok := sc.scanHexWord(token)
	if !ok {
		return token, nil
	}
	token.runeTo = to
	token.TokenType = RangeDataItem
	return token, sc.ScanItemBody
}

func (sc *Scanner) scanHexWord(token *Token) (rune, bool) {
	hex := sc.Buf.MatchWhile(glport.IsHexDigit)
	if hex == "" {
		token.Error = fmt.Errorf("line %d: expected code point literal", token.LineNo)
		return 0, false
	}
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		token.Error = fmt.Errorf("hex decoding error: %w", err)
		return 0, false
	}
	return rune(n), true
}

// ScanItemBody collects the semicolon separated fields and the rest-of-line
// comment of a data item.
func (sc *Scanner) ScanItemBody(token *Token) (*Token, scannerStep) {
	rest := sc.Buf.ReadLineRemainder()
	a := strings.Split(rest, "#")
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(strings.Join(a[1:], "#"))
	}
	fields := strings.Split(a[0], ";")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:] // drop the empty field before the first ';'
	}
	token.Fields = token.Fields[:0]
	for _, f := range fields {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil
}
