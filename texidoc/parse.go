package texidoc

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Parse reads one Texinfo portability note fragment.
func Parse(input io.Reader) (*Note, error) {
	if input == nil {
		return nil, errors.New("no input present")
	}
	p := &noteParser{sc: NewScanner(input)}
	p.sc.SetErrorHandler(func(err error) {
		p.err = err
	})
	return p.parse()
}

// noteParser holds the state of a single parse: the note under
// construction, the problem section being filled, and the problem item
// whose text lines are being collected.
type noteParser struct {
	sc             *Scanner
	note           Note
	sections       []*ProblemSection
	current        *ProblemSection
	item           []string // text lines of the open @item, nil if none open
	inItem         bool
	seenGnulibLine bool
	err            error
}

var codeArg = regexp.MustCompile(`@code\{([^}]*)\}`)

func (p *noteParser) parse() (*Note, error) {
	for {
		t, v, _, _ := p.sc.NextToken(nil)
		if t == scanner.EOF {
			break
		}
		line, _ := v.(string)
		switch t {
		case LineCommand:
			p.commandLine(line)
		case LineText:
			p.textLine(line)
		case LineBlank:
			// Blank lines separate blocks and carry no information.
		}
	}
	p.flushItem()
	if p.err != nil {
		return nil, p.err
	}
	if p.note.Function == "" {
		return nil, errors.New("portability note lacks a @node line")
	}
	for _, sec := range p.sections {
		p.note.Sections = append(p.note.Sections, *sec)
	}
	tracer().Debugf("parsed portability note for %s (%d problem sections)",
		p.note.Function, len(p.note.Sections))
	return &p.note, nil
}

func (p *noteParser) commandLine(line string) {
	switch {
	case strings.HasPrefix(line, "@node "):
		p.note.Function = strings.TrimSpace(line[len("@node "):])
	case strings.HasPrefix(line, "@subsection"), strings.HasPrefix(line, "@findex"):
		// Redundant with @node; the renderer re-synthesizes them.
	case strings.HasPrefix(line, "@documentlanguage"):
		// A rendering artifact, not part of the note.
	case line == "@itemize":
		if p.current == nil {
			p.documentationLine(line)
		}
	case line == "@item":
		if p.current == nil {
			p.documentationLine(line)
			return
		}
		p.flushItem()
		p.inItem = true
		p.item = nil
	case line == "@end itemize":
		if p.current == nil {
			p.documentationLine(line)
			return
		}
		p.flushItem()
	default:
		p.documentationLine(line)
	}
}

func (p *noteParser) textLine(line string) {
	switch {
	case strings.HasPrefix(line, "Gnulib module:"):
		p.seenGnulibLine = true
		rest := strings.TrimSpace(strings.TrimPrefix(line, "Gnulib module:"))
		if rest != "" && rest != "---" {
			for _, name := range strings.Split(rest, " or ") {
				p.note.Modules = append(p.note.Modules, strings.TrimSpace(name))
			}
		}
	case strings.HasPrefix(line, "Portability problems fixed by"):
		p.flushItem()
		sec := &ProblemSection{FixedBy: codeArgs(line)}
		p.sections = append(p.sections, sec)
		p.current = sec
	case strings.HasPrefix(line, "Portability problems not fixed"):
		p.flushItem()
		sec := &ProblemSection{}
		p.sections = append(p.sections, sec)
		p.current = sec
	default:
		if p.inItem {
			p.item = append(p.item, line)
		} else {
			p.documentationLine(line)
		}
	}
}

// documentationLine collects free-form lines between the @findex line
// and the "Gnulib module:" line.
func (p *noteParser) documentationLine(line string) {
	if p.note.Function == "" || p.seenGnulibLine || p.current != nil {
		return
	}
	p.note.Documentation = append(p.note.Documentation, line)
}

// flushItem closes the open @item, splitting off a trailing platform
// list. A problem text announcing platforms ends with a ':' line,
// followed by a single line listing the platforms, terminated with '.'.
func (p *noteParser) flushItem() {
	if !p.inItem {
		return
	}
	p.inItem = false
	lines := p.item
	p.item = nil
	if len(lines) == 0 || p.current == nil {
		return
	}
	problem := Problem{}
	last := lines[len(lines)-1]
	if len(lines) >= 2 &&
		strings.HasSuffix(lines[len(lines)-2], ":") &&
		strings.HasSuffix(last, ".") {
		for _, entry := range strings.Split(strings.TrimSuffix(last, "."), ",") {
			problem.Platforms = append(problem.Platforms, strings.TrimSpace(entry))
		}
		lines = lines[:len(lines)-1]
	}
	problem.Text = strings.Join(lines, "\n")
	p.current.Problems = append(p.current.Problems, problem)
}

// codeArgs extracts the arguments of all @code{…} occurrences of a line.
func codeArgs(line string) []string {
	var result []string
	for _, m := range codeArg.FindAllStringSubmatch(line, -1) {
		result = append(result, m[1])
	}
	return result
}
