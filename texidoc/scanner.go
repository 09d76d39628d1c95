package texidoc

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token classes produced by the line-level scanner. Texinfo input is
// tokenized per line; the parser never needs to look inside a line to
// decide how to proceed, only to extract values.
const (
	LineBlank int = iota + 1
	LineCommand
	LineText
)

// Scanner implements the scanner.Tokenizer interface. It reads a
// Texinfo fragment line by line and classifies each line as blank, as
// an @-command line, or as a text line.
type Scanner struct {
	lines  *bufio.Scanner // we're using an embedded line reader
	lineno uint64         // number of lines read
	pos    uint64         // byte position of the current line within the input
	errh   func(error)    // error handler, set with SetErrorHandler
}

// NewScanner creates a scanner for a Texinfo portability note fragment.
func NewScanner(input io.Reader) *Scanner {
	sc := &Scanner{}
	sc.lines = bufio.NewScanner(input)
	return sc
}

// NextToken reads the next line of input, returning a token for it.
//
// The token's value will be set to the line class, the token itself
// will be set to the line's content with surrounding whitespace
// removed.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for sc.lines.Scan() {
		line := sc.lines.Text()
		sc.lineno++
		start := sc.pos
		sc.pos += uint64(len(line)) + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return LineBlank, "", start, 0
		}
		if strings.HasPrefix(trimmed, "@") {
			return LineCommand, trimmed, start, uint64(len(line))
		}
		return LineText, trimmed, start, uint64(len(line))
	}
	if err := sc.lines.Err(); err != nil {
		tracer().Errorf("scanning Texinfo input: %v", err)
		if sc.errh != nil {
			sc.errh(err)
		}
	}
	return scanner.EOF, "", sc.pos, 0
}

// SetErrorHandler sets an error handler function, which receives an
// error and may try some error repair strategy.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

// LineNo returns the number of lines read so far.
func (sc *Scanner) LineNo() uint64 {
	return sc.lineno
}
