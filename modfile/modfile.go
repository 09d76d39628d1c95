package modfile

import (
	"crypto/md5"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// sectionLabels matches the section labels a description file may contain,
// each on a line of its own.
//
// configure.ac-early has to come before configure.ac, otherwise the
// alternation would match the shorter label inside the longer one.
var sectionLabels = regexp.MustCompile(
	`(?m)^(Description|Comment|Status|Notice|Applicability|` +
		`Usable-in-testdir|Files|Depends-on|configure\.ac-early|configure\.ac|` +
		`Makefile\.am|Include|Link|License|Maintainer):$`)

// A Descriptor is the parsed form of a module description file. It can
// get all information about a module: its dependencies, files, build
// snippets, etc.
//
// Descriptors are read-only after parsing; the accessor methods memoize
// derived values, so a Descriptor should not be shared between
// goroutines.
type Descriptor struct {
	name     string
	sections map[string]string

	statuses      []string
	applicability string
	files         []string
	deps          []Dependency
	include       string
	license       string
	automakeUnc   map[string]string // keyed by auxdir
}

// A Dependency is one entry of the Depends-on section: a module name
// plus an optional condition. An empty condition means the dependency
// is unconditional.
type Dependency struct {
	Name      string
	Condition string
}

// Parse reads a module description file. The name is the module name,
// i.e. the file name of the description file relative to the modules
// directory.
func Parse(name string, r io.Reader) (*Descriptor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read module description %s: %w", name, err)
	}
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	d := &Descriptor{
		name:     name,
		sections: make(map[string]string),
	}
	// Dissect the content into sections.
	matches := sectionLabels.FindAllStringSubmatchIndex(content, -1)
	for i, m := range matches {
		label := content[m[2]:m[3]]
		start := m[1] + 1 // skip the newline after the label
		if start > len(content) {
			start = len(content)
		}
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		d.sections[label] = content[start:end]
	}
	return d, nil
}

// Name returns the name of the module.
func (d *Descriptor) Name() string {
	return d.name
}

func (d *Descriptor) String() string {
	return d.name
}

// IsTests checks whether the module is a *-tests module or a module of
// applicability 'all'.
func (d *Descriptor) IsTests() bool {
	return d.Applicability() != "main"
}

// HasTestsName checks whether the module is named like a tests module.
func (d *Descriptor) HasTestsName() bool {
	return strings.HasSuffix(d.name, "-tests")
}

// TestsName returns the -tests version of the module name.
func (d *Descriptor) TestsName() string {
	if d.HasTestsName() {
		return d.name
	}
	return d.name + "-tests"
}

// MainName returns the module name with a -tests suffix removed.
func (d *Descriptor) MainName() string {
	return strings.TrimSuffix(d.name, "-tests")
}

// section returns the raw contents of a section, or "" if absent.
func (d *Descriptor) section(label string) string {
	return d.sections[label]
}

// --- Shell identifiers -----------------------------------------------------

// Characters allowed in shell identifiers.
const shellIDChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// shellID returns the module name if it is a valid shell identifier,
// and an md5 digest of it otherwise.
func (d *Descriptor) shellID() string {
	valid := true
	for _, char := range d.name {
		if !strings.ContainsRune(shellIDChars, char) {
			valid = false
			break
		}
	}
	if valid {
		return d.name
	}
	sum := md5.Sum([]byte(d.name + "\n"))
	return fmt.Sprintf("%x", sum)
}

// ShellFunc computes the shell function name that will contain the m4
// macros for the module.
func (d *Descriptor) ShellFunc(macroPrefix string) string {
	return fmt.Sprintf("func_%s_gnulib_m4code_%s", macroPrefix, d.shellID())
}

// ShellVar computes the shell variable name that will be set to true
// once the m4 macros for the module have been executed.
func (d *Descriptor) ShellVar(macroPrefix string) string {
	return fmt.Sprintf("%s_gnulib_enabled_%s", macroPrefix, d.shellID())
}

// ConditionalName returns the automake conditional name for the module.
func (d *Descriptor) ConditionalName(macroPrefix string) string {
	return fmt.Sprintf("%s_GNULIB_ENABLED_%s", macroPrefix, d.shellID())
}
