package texidoc

// A Note is the portability note of a single libc function: which
// modules of the collection fix the function, and which portability
// problems are known, grouped by the modules fixing them.
type Note struct {
	Function      string           // name of the documented function
	Modules       []string         // fixing modules (may be empty)
	Documentation []string         // free-form documentation lines, verbatim Texinfo
	Sections      []ProblemSection // problem groups, in document order
}

// A ProblemSection groups portability problems by the modules fixing
// them. A section with no FixedBy entries holds the problems not fixed
// by any module.
type ProblemSection struct {
	FixedBy  []string
	Problems []Problem
}

// A Problem is one documented platform quirk: a description and the
// platforms exhibiting it.
type Problem struct {
	Text      string   // problem description; a trailing ':' announces the platform list
	Platforms []string // affected platforms, e.g. "FreeBSD 13.0", "mingw"
}

// Fixed reports whether the section's problems are fixed by a module.
func (sec ProblemSection) Fixed() bool {
	return len(sec.FixedBy) > 0
}

// ProblemsFixedBy returns the problems that the given module fixes.
func (n *Note) ProblemsFixedBy(module string) []Problem {
	var result []Problem
	for _, sec := range n.Sections {
		for _, fixer := range sec.FixedBy {
			if fixer == module {
				result = append(result, sec.Problems...)
				break
			}
		}
	}
	return result
}

// UnfixedProblems returns the problems no module fixes.
func (n *Note) UnfixedProblems() []Problem {
	var result []Problem
	for _, sec := range n.Sections {
		if !sec.Fixed() {
			result = append(result, sec.Problems...)
		}
	}
	return result
}

// AffectsPlatform reports whether any documented problem affects the
// given platform. Platform entries carry version numbers ("FreeBSD
// 13.0"); matching is done on the full entry or its first word.
func (n *Note) AffectsPlatform(platform string) bool {
	for _, sec := range n.Sections {
		for _, p := range sec.Problems {
			for _, entry := range p.Platforms {
				if entry == platform || firstWord(entry) == platform {
					return true
				}
			}
		}
	}
	return false
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}
