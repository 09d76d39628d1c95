/*
Package generator generates the property tables of package unictype.

Tables are generated from the UCD file "PropList.txt", the definite
source for binary code-point properties. The generator reads the
checked-in copy under internal/testdata/ucd (the downloader in
internal/testdata fetches a complete one).

Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates a file "properties.go" and one range fixture file
"pr_<property>.txt" per property in the current directory. It is
designed to be called from the "unictype" directory.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/glport/glport/internal/testdata"
	"github.com/glport/glport/internal/ucdparse"
)

var logger = log.New(os.Stderr, "unictype generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// ucdVersion is the UCD version the checked-in PropList.txt stems from.
const ucdVersion = "11.0.0"

// The binary properties package unictype covers, with their PropList.txt
// names. Order defines the Property constants.
var properties = []string{
	"Bidi_Control",
	"Join_Control",
	"Pattern_White_Space",
	"White_Space",
}

// goName turns a PropList.txt property name into a Go identifier.
func goName(property string) string {
	return strings.ReplaceAll(property, "_", "")
}

// Load the UCD property definition file: PropList.txt
func loadPropList() (map[string][]rune, error) {
	if verbose {
		logger.Printf("reading PropList.txt")
	}
	defer timeTrack(time.Now(), "loading PropList.txt")
	r, err := testdata.UCDReader("PropList.txt")
	if err != nil {
		fmt.Printf("ERROR loading " + testdata.UCDPath("PropList.txt") + "\n")
		return nil, err
	}
	wanted := make(map[string]*arraylist.List, len(properties))
	for _, name := range properties {
		wanted[name] = arraylist.New()
	}
	err = ucdparse.Parse(r, func(token *ucdparse.Token) {
		list := wanted[token.Field(1)]
		if list == nil {
			return // a property we do not cover
		}
		from, to := token.Range()
		for c := from; c <= to; c++ {
			list.Add(c)
		}
	})
	if err != nil {
		return nil, err
	}
	codePoints := make(map[string][]rune, len(wanted))
	for name, list := range wanted {
		runes := make([]rune, list.Size())
		it := list.Iterator()
		i := 0
		for it.Next() {
			runes[i] = it.Value().(rune)
			i++
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		codePoints[name] = runes
	}
	return codePoints, nil
}

// --- Templates --------------------------------------------------------

var header = `package unictype

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: PropList.txt, Unicode version ` + ucdVersion + `

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
`

var templateRangeForProperty = `{{$i:=0}}{{range .}}{{if notfirst $i}}, {{if modsix $i}}
		{{end}}{{end}}{{$i = inc $i}}{{printf "%+q" .}}{{end}}`

// Helper functions for templates
var funcMap = template.FuncMap{
	"modsix": func(i int) bool {
		return i%6 == 0
	},
	"inc": func(i int) int {
		return i + 1
	},
	"notfirst": func(i int) bool {
		return i > 0
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateConsts(w *bufio.Writer) {
	width := 0
	for _, name := range properties {
		if len(goName(name)) > width {
			width = len(goName(name))
		}
	}
	w.WriteString("\n// These are the binary code-point properties of PropList.txt covered by\n")
	w.WriteString("// this package.\nconst (\n")
	for i, name := range properties {
		fmt.Fprintf(w, "\t%-*s Property = %d\n", width, goName(name), i)
	}
	w.WriteString(")\n")
	w.WriteString("\n// Range tables for binary code-point properties.\n")
	w.WriteString("// Will be initialized with SetupProperties().\n")
	w.WriteString("// Clients can check with unicode.Is(..., rune)\nvar ")
	for i, name := range properties {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(goName(name) + "Ranges")
	}
	w.WriteString(" *unicode.RangeTable\n")
}

func generateStringer(w *bufio.Writer) {
	names := make([]string, len(properties))
	for i, name := range properties {
		names[i] = goName(name)
	}
	w.WriteString("\nconst _Property_name = \"" + strings.Join(names, "") + "\"\n")
	w.WriteString("\nvar _Property_index = [...]uint16{0")
	total := 0
	for _, name := range names {
		total += len(name)
		fmt.Fprintf(w, ", %d", total)
	}
	w.WriteString("}\n")
	w.WriteString(`
// Stringer for type Property
func (p Property) String() string {
	if p < 0 || p >= Property(len(_Property_index)-1) {
		return "Property(" + strconv.FormatInt(int64(p), 10) + ")"
	}
	return _Property_name[_Property_index[p]:_Property_index[p+1]]
}
`)
}

func generateRanges(w *bufio.Writer, codePoints map[string][]rune) {
	defer timeTrack(time.Now(), "generate range tables")
	w.WriteString("\nfunc setupPropertyTables() {\n")
	fmt.Fprintf(w, "\trangeFromProperty = make([]*unicode.RangeTable, %d)\n", len(properties))
	t := makeTemplate("property range", templateRangeForProperty)
	for _, name := range properties {
		fmt.Fprintf(w, "\n\t// Ranges for property %s\n", name)
		fmt.Fprintf(w, "\t%sRanges = rangetable.New(", goName(name))
		checkFatal(t.Execute(w, codePoints[name]))
		w.WriteString(")\n")
		fmt.Fprintf(w, "\trangeFromProperty[int(%s)] = %sRanges\n", goName(name), goName(name))
	}
	w.WriteString("}\n")
}

type runeRange struct {
	from, to rune
}

// collapse turns a sorted rune list into inclusive ranges.
func collapse(runes []rune) []runeRange {
	var ranges []runeRange
	for _, c := range runes {
		if n := len(ranges); n > 0 && ranges[n-1].to+1 == c {
			ranges[n-1].to = c
			continue
		}
		ranges = append(ranges, runeRange{c, c})
	}
	return ranges
}

// generateFixture writes the range fixture file for one property, to be
// consumed by the unictype tests.
func generateFixture(property string, runes []rune) error {
	filename := "pr_" + strings.ToLower(property) + ".txt"
	if verbose {
		logger.Printf("creating %s", filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Derived from PropList.txt, UCD version %s.\n", ucdVersion)
	fmt.Fprintf(w, "# Code-point ranges with binary property %s.\n#\n", property)
	w.WriteString("# Generated file -- you probably should NOT EDIT IT !\n\n")
	for _, rng := range collapse(runes) {
		if rng.from == rng.to {
			fmt.Fprintf(w, "%04X\n", rng.from)
		} else {
			fmt.Fprintf(w, "%04X..%04X\n", rng.from, rng.to)
		}
	}
	return w.Flush()
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	codePoints, err := loadPropList()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d binary properties\n", len(codePoints))
	}
	f, ioerr := os.Create("properties.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	generateConsts(w)
	generateStringer(w)
	generateRanges(w, codePoints)
	w.Flush()
	for _, name := range properties {
		checkFatal(generateFixture(name, codePoints[name]))
	}
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
