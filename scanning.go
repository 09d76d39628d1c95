package glport

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// A LineBuffer abstracts away the properties of input readers for
// line-level scanners. The parsing sub-packages (modfile, texidoc,
// internal/ucdparse) build their scanners on top of it.
//
// A line buffer holds one line of input at a time. Scanners inspect
// Lookahead, consume runes with Advance or Match, and move on to the
// next line with AdvanceLine. Lookahead is 0 at end of line.
type LineBuffer struct {
	Text        string // current line, without line terminator
	CurrentLine int    // line number of the current line, starting at 1
	ByteCursor  int    // byte offset of Lookahead within Text
	Lookahead   rune   // next rune to be consumed; 0 at end of line
	input       *bufio.Scanner
	eof         bool
}

// NewLineBuffer creates a line buffer for an input reader and positions
// it on the first line of input.
// This is rarely used, as clients rather should call NewPooledLineBuffer().
func NewLineBuffer(r io.Reader) *LineBuffer {
	buf := &LineBuffer{}
	buf.Reset(r)
	return buf
}

// Reset re-initializes a line buffer with a new input reader and loads
// the first line.
func (buf *LineBuffer) Reset(r io.Reader) {
	buf.input = bufio.NewScanner(r)
	buf.Text = ""
	buf.CurrentLine = 0
	buf.ByteCursor = 0
	buf.Lookahead = 0
	buf.eof = r == nil
	if !buf.eof {
		buf.AdvanceLine()
	}
}

// IsEof returns true as soon as the input is exhausted.
func (buf *LineBuffer) IsEof() bool {
	return buf.eof
}

// AdvanceLine drops the rest of the current line and loads the next
// one. It returns false at end of input.
func (buf *LineBuffer) AdvanceLine() bool {
	if buf.eof {
		return false
	}
	if !buf.input.Scan() {
		buf.eof = true
		buf.Text = ""
		buf.ByteCursor = 0
		buf.Lookahead = 0
		return false
	}
	buf.Text = strings.TrimSuffix(buf.input.Text(), "\r")
	buf.CurrentLine++
	buf.ByteCursor = 0
	buf.refreshLookahead()
	return true
}

// Advance consumes the lookahead rune and returns the new lookahead.
func (buf *LineBuffer) Advance() rune {
	if buf.ByteCursor < len(buf.Text) {
		_, sz := utf8.DecodeRuneInString(buf.Text[buf.ByteCursor:])
		buf.ByteCursor += sz
	}
	buf.refreshLookahead()
	return buf.Lookahead
}

// Match consumes the lookahead rune iff it equals r.
func (buf *LineBuffer) Match(r rune) bool {
	if buf.Lookahead != r {
		return false
	}
	buf.Advance()
	return true
}

// MatchWhile consumes runes as long as predicate returns true for the
// lookahead, returning the matched substring.
func (buf *LineBuffer) MatchWhile(predicate func(rune) bool) string {
	start := buf.ByteCursor
	for buf.Lookahead != 0 && predicate(buf.Lookahead) {
		buf.Advance()
	}
	return buf.Text[start:buf.ByteCursor]
}

// ReadLineRemainder returns the rest of the current line, from the
// lookahead position to the end of line, and consumes it.
func (buf *LineBuffer) ReadLineRemainder() string {
	rest := buf.Text[buf.ByteCursor:]
	buf.ByteCursor = len(buf.Text)
	buf.Lookahead = 0
	return rest
}

func (buf *LineBuffer) refreshLookahead() {
	if buf.ByteCursor >= len(buf.Text) {
		buf.Lookahead = 0
		return
	}
	r, _ := utf8.DecodeRuneInString(buf.Text[buf.ByteCursor:])
	buf.Lookahead = r
}

// IsHexDigit is a predicate for hexadecimal digits, as used for
// code-point literals in UCD files.
func IsHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Listing a module collection churns through hundreds of description
// files, each of which needs a line buffer for a few microseconds.
// To avoid multiple allocation of small objects we will pool them.
type lineBufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalLineBufferPool *lineBufferPool

func init() {
	globalLineBufferPool = &lineBufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &LineBuffer{}
			return buf, nil
		})
	globalLineBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalLineBufferPool.opool = pool.NewObjectPool(globalLineBufferPool.ctx, factory, config)
}

// NewPooledLineBuffer returns a LineBuffer, initialized with an input
// reader and positioned on the first line. The buffer is pooled for
// efficiency; clients hand it back with Release().
func NewPooledLineBuffer(r io.Reader) *LineBuffer {
	o, _ := globalLineBufferPool.opool.BorrowObject(globalLineBufferPool.ctx)
	buf := o.(*LineBuffer)
	buf.Reset(r)
	return buf
}

// Release clears the line buffer and puts it back into the pool.
func (buf *LineBuffer) Release() {
	buf.input = nil
	buf.Text = ""
	buf.CurrentLine = 0
	buf.ByteCursor = 0
	buf.Lookahead = 0
	buf.eof = true
	_ = globalLineBufferPool.opool.ReturnObject(globalLineBufferPool.ctx, buf)
}
