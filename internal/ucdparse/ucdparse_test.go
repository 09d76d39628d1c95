package ucdparse

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

var propListExcerpt = `# PropList-11.0.0.txt
# Date: 2018-03-15
# ================================================

0009..000D    ; White_Space # Cc   [5] <control-0009>..<control-000D>
0020          ; White_Space # Zs       SPACE

061C          ; Bidi_Control # Cf       ARABIC LETTER MARK
200E..200F    ; Bidi_Control # Cf   [2] LEFT-TO-RIGHT MARK..RIGHT-TO-LEFT MARK

# EOF
`

func TestParsePropListExcerpt(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	type item struct {
		from, to rune
		prop     string
	}
	var items []item
	err := Parse(strings.NewReader(propListExcerpt), func(token *Token) {
		from, to := token.Range()
		items = append(items, item{from, to, token.Field(1)})
	})
	if err != nil {
		t.Fatalf("parsing PropList excerpt failed: %v", err)
	}
	expected := []item{
		{0x0009, 0x000D, "White_Space"},
		{0x0020, 0x0020, "White_Space"},
		{0x061C, 0x061C, "Bidi_Control"},
		{0x200E, 0x200F, "Bidi_Control"},
	}
	if len(items) != len(expected) {
		t.Fatalf("expected %d data items, have %d", len(expected), len(items))
	}
	for i, it := range items {
		if it != expected[i] {
			t.Errorf("data item #%d: expected %v, have %v", i, expected[i], it)
		}
	}
}

func TestTokenTypes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc, err := New(strings.NewReader("061C ; Bidi_Control\n200E..200F ; Bidi_Control"))
	if err != nil {
		t.Fatal(err)
	}
	defer sc.Close()
	if !sc.Next() || sc.Token.TokenType != SingleDataItem {
		t.Errorf("expected first token to be a single data item, is %v", sc.Token)
	}
	if !sc.Next() || sc.Token.TokenType != RangeDataItem {
		t.Errorf("expected second token to be a range data item, is %v", sc.Token)
	}
	if sc.Next() {
		t.Errorf("expected EOF after two data items")
	}
}

func TestRangeTestInput(t *testing.T) {
	from, to, err := RangeTestInput("202A..202E")
	if err != nil || from != 0x202A || to != 0x202E {
		t.Errorf("expected range 202A..202E, have %#U..%#U (%v)", from, to, err)
	}
	from, to, err = RangeTestInput("061C")
	if err != nil || from != 0x061C || to != 0x061C {
		t.Errorf("expected single code point 061C, have %#U..%#U (%v)", from, to, err)
	}
}
