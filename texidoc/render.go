package texidoc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Context represents information about the documentation environment a
// note is rendered for. If the context carries a language, the
// renderer prefixes the fragment with a @documentlanguage directive.
type Context struct {
	Locale   string       // ISO 639/3166 locale string
	Language language.Tag // language for @documentlanguage
}

// ContextFromEnvironment builds a rendering context from the user's
// environment locale.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("texidoc sets default user locale %v", userLocale)
	} else {
		tracer().Infof("texidoc detected user locale %v", userLocale)
	}
	return &Context{
		Locale:   userLocale,
		Language: language.Make(userLocale),
	}
}

func (ctx *Context) documentLanguage() string {
	if ctx == nil || ctx.Language == language.Und {
		return ""
	}
	base, confidence := ctx.Language.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// --- Templates --------------------------------------------------------

var funcMap = template.FuncMap{
	"code": func(arg string) string {
		return "@code{" + arg + "}"
	},
}

var preambleTemplate = template.Must(template.New("preamble").Funcs(funcMap).Parse(
	`@node {{.Function}}
@subsection {{code .Function}}
@findex {{.Function}}

`))

// Render writes the canonical Texinfo form of a note. A nil context
// renders the bare fragment.
func Render(w io.Writer, n *Note, ctx *Context) error {
	bw := bufio.NewWriter(w)
	if lang := ctx.documentLanguage(); lang != "" {
		fmt.Fprintf(bw, "@documentlanguage %s\n", lang)
	}
	if err := preambleTemplate.Execute(bw, n); err != nil {
		return err
	}
	for _, line := range n.Documentation {
		bw.WriteString(line + "\n")
	}
	if len(n.Documentation) > 0 {
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "Gnulib module: %s\n", modulesLine(n.Modules))
	for _, sec := range n.Sections {
		bw.WriteString("\n" + sectionHeader(sec) + "\n@itemize\n")
		for _, p := range sec.Problems {
			bw.WriteString("@item\n")
			bw.WriteString(p.Text + "\n")
			if len(p.Platforms) > 0 {
				bw.WriteString(strings.Join(p.Platforms, ", ") + ".\n")
			}
		}
		bw.WriteString("@end itemize\n")
	}
	return bw.Flush()
}

func modulesLine(modules []string) string {
	if len(modules) == 0 {
		return "---"
	}
	return strings.Join(modules, " or ")
}

func sectionHeader(sec ProblemSection) string {
	if !sec.Fixed() {
		return "Portability problems not fixed by Gnulib:"
	}
	coded := make([]string, len(sec.FixedBy))
	for i, name := range sec.FixedBy {
		coded[i] = "@code{" + name + "}"
	}
	if len(coded) == 1 {
		return "Portability problems fixed by Gnulib module " + coded[0] + ":"
	}
	return "Portability problems fixed by either Gnulib module " +
		strings.Join(coded, " or ") + ":"
}
