package ucdparse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
)

// ucdTestFile wraps a UCD-style test or fixture file, with '#' comments
// and one test case per line.
type ucdTestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
}

// OpenTestFile opens a UCD-style fixture file located in the calling
// test's package directory.
func OpenTestFile(filename string, t *testing.T) *ucdTestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading " + filename)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading "+filename)
		}
		return nil
	}
	tf := &ucdTestFile{}
	tf.in = f
	tf.scanner = bufio.NewScanner(f)
	return tf
}

func (tf *ucdTestFile) Scan() bool {
	for tf.scanner.Scan() {
		text := strings.TrimSpace(tf.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.SplitN(text, "#", 2)
		tf.text = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			tf.comment = strings.TrimSpace(parts[1])
		} else {
			tf.comment = ""
		}
		return true
	}
	return false
}

func (tf *ucdTestFile) Text() string {
	return tf.text
}

func (tf *ucdTestFile) Comment() string {
	return tf.comment
}

func (tf *ucdTestFile) Err() error {
	return tf.scanner.Err()
}

func (tf *ucdTestFile) Close() {
	tf.in.Close()
}

// RangeTestInput decodes a fixture line of the form "061C..2069" or
// "061C" into an inclusive code-point range.
func RangeTestInput(text string) (from, to rune, err error) {
	parts := strings.SplitN(text, "..", 2)
	lo, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 16, 32)
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return rune(lo), rune(lo), nil
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 16, 32)
	if err != nil {
		return 0, 0, err
	}
	return rune(lo), rune(hi), nil
}
