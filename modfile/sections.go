package modfile

import (
	"regexp"
	"sort"
	"strings"
)

// --- Scalar sections -------------------------------------------------------

// Description returns the one-line description of the module.
func (d *Descriptor) Description() string {
	return strings.TrimSpace(d.section("Description"))
}

// Comment returns the free-form comment of the module.
func (d *Descriptor) Comment() string {
	return strings.TrimSpace(d.section("Comment"))
}

// Notice returns the notice to display when the module is imported.
func (d *Descriptor) Notice() string {
	return d.section("Notice")
}

// Maintainer returns the maintainer line(s) of the module.
func (d *Descriptor) Maintainer() string {
	return strings.TrimSpace(d.section("Maintainer"))
}

// Statuses returns the status words of the module (e.g. "obsolete",
// "c++-test").
func (d *Descriptor) Statuses() []string {
	if d.statuses == nil {
		d.statuses = nonEmptyLines(d.section("Status"))
	}
	return d.statuses
}

// HasStatus checks for a single status word.
func (d *Descriptor) HasStatus(word string) bool {
	for _, s := range d.Statuses() {
		if s == word {
			return true
		}
	}
	return false
}

// Applicability returns the applicability of the module: "main",
// "tests" or "all". The default is "main" or "tests", depending on the
// module's name.
func (d *Descriptor) Applicability() string {
	if d.applicability == "" {
		result := strings.TrimSpace(d.section("Applicability"))
		if result == "" {
			if d.HasTestsName() {
				result = "tests"
			} else {
				result = "main"
			}
		}
		d.applicability = result
	}
	return d.applicability
}

// UsableInTestdir returns the restrictions for using the module in a
// test directory.
func (d *Descriptor) UsableInTestdir() string {
	return strings.TrimSpace(d.section("Usable-in-testdir"))
}

// --- Files -----------------------------------------------------------------

// Module descriptions do not list the m4 bootstrap files, but every
// module needs them.
var bootstrapFiles = []string{
	"m4/00gnulib.m4",
	"m4/zzgnulib.m4",
	"m4/gnulib-common.m4",
}

// RawFiles returns the unmodified Files section as a string.
func (d *Descriptor) RawFiles() string {
	return d.section("Files")
}

// Files returns the list of files of the module, including the always
// needed m4 bootstrap files.
func (d *Descriptor) Files() []string {
	if d.files == nil {
		d.files = nonEmptyLines(d.section("Files"))
		d.files = append(d.files, bootstrapFiles...)
	}
	return d.files
}

// --- Dependencies ----------------------------------------------------------

var commentLines = regexp.MustCompile(`(?m)^#.*$\n`)
var conditionSuffix = regexp.MustCompile(` *\[`)

// Dependencies returns the entries of the Depends-on section. Comment
// lines are stripped; a trailing bracketed expression on a dependency
// line becomes the dependency's condition. A literal condition "true"
// is normalized to the empty (unconditional) condition.
//
// The implicit dependency of a *-tests module on its main module is not
// part of the description file; package modsys adds it during lookup.
func (d *Descriptor) Dependencies() []Dependency {
	if d.deps == nil {
		snippet := commentLines.ReplaceAllString(d.section("Depends-on"), "")
		d.deps = []Dependency{}
		for _, line := range nonEmptyLines(snippet) {
			dep := Dependency{Name: line}
			if loc := conditionSuffix.FindStringIndex(line); loc != nil {
				dep.Name = line[:loc[0]]
				dep.Condition = strings.TrimSuffix(line[loc[1]:], "]")
				if dep.Condition == "true" {
					dep.Condition = ""
				}
			}
			if dep.Name != "" {
				d.deps = append(d.deps, dep)
			}
		}
	}
	return d.deps
}

// --- Autoconf / Automake snippets ------------------------------------------

// AutoconfEarly returns the configure.ac-early snippet.
func (d *Descriptor) AutoconfEarly() string {
	return d.section("configure.ac-early")
}

// Autoconf returns the configure.ac snippet.
func (d *Descriptor) Autoconf() string {
	return d.section("configure.ac")
}

// AutomakeConditional returns the Makefile.am snippet as written in the
// description file.
func (d *Descriptor) AutomakeConditional() string {
	return d.section("Makefile.am")
}

// AutomakeSnippet returns the complete automake snippet: the written
// conditional part followed by the synthesized unconditional part.
func (d *Descriptor) AutomakeSnippet(auxdir string) string {
	result := ""
	conditional := d.AutomakeConditional()
	if strings.TrimSpace(conditional) != "" {
		result += conditional
	} else {
		result += "\n"
	}
	result += d.AutomakeUnconditional(auxdir)
	return result
}

var libSourcesLine = regexp.MustCompile(`(?m)^lib_SOURCES[\t ]*\+=[\t ]*(.*)$`)

// AutomakeUnconditional synthesizes the unconditional part of the
// automake snippet: EXTRA_DIST and EXTRA_lib_SOURCES augmentations for
// files that the written snippet does not mention.
func (d *Descriptor) AutomakeUnconditional(auxdir string) string {
	if d.automakeUnc == nil {
		d.automakeUnc = make(map[string]string)
	}
	if result, ok := d.automakeUnc[auxdir]; ok {
		return result
	}
	result := ""
	if d.HasTestsName() {
		// *-tests modules live in tests/, not lib/.
		// Synthesize an EXTRA_DIST augmentation.
		extraFiles := filterFileList(d.Files(), "tests/", "")
		sort.Strings(extraFiles)
		if len(extraFiles) > 0 {
			result += "EXTRA_DIST += " + strings.Join(extraFiles, " ") + "\n\n"
		}
	} else {
		// Synthesize an EXTRA_DIST augmentation.
		snippet := CombineLines(d.AutomakeConditional())
		mentioned := map[string]bool{}
		for _, m := range libSourcesLine.FindAllStringSubmatch(snippet, -1) {
			for _, filename := range strings.Fields(m[1]) {
				mentioned[filename] = true
			}
		}
		libFiles := filterFileList(d.Files(), "lib/", "")
		var extraFiles []string
		for _, filename := range libFiles {
			if !mentioned[filename] {
				extraFiles = append(extraFiles, filename)
			}
		}
		sort.Strings(extraFiles)
		if len(extraFiles) > 0 {
			result += "EXTRA_DIST += " + strings.Join(extraFiles, " ") + "\n\n"
		}
		// Synthesize also an EXTRA_lib_SOURCES augmentation. This is
		// necessary so that automake can generate the right list of
		// dependency rules. If some .c file is never compiled, automake
		// will generate a useless dependency; this is harmless.
		if d.name != "relocatable-prog-wrapper" && d.name != "pt_chown" {
			var extraSources []string
			for _, filename := range extraFiles {
				if strings.HasSuffix(filename, ".c") {
					extraSources = append(extraSources, filename)
				}
			}
			if len(extraSources) > 0 {
				result += "EXTRA_lib_SOURCES += " + strings.Join(extraSources, " ") + "\n\n"
			}
		}
		// Synthesize an EXTRA_DIST augmentation also for the files in build-aux/.
		buildauxFiles := filterFileList(d.Files(), "build-aux/", "")
		if len(buildauxFiles) > 0 {
			for i, filename := range buildauxFiles {
				buildauxFiles[i] = "$(top_srcdir)/" + auxdir + "/" + filename
			}
			result += "EXTRA_DIST += " + strings.Join(buildauxFiles, " ") + "\n\n"
		}
	}
	d.automakeUnc[auxdir] = result
	return result
}

// --- Include and Link ------------------------------------------------------

var includeLine = regexp.MustCompile(`(?m)^(["<])`)

// Include returns the include directives of the module, normalized to
// complete #include lines.
func (d *Descriptor) Include() string {
	if d.include == "" {
		d.include = includeLine.ReplaceAllString(d.section("Include"), "#include $1")
	}
	return d.include
}

// Link returns the link directive of the module.
func (d *Descriptor) Link() string {
	return d.section("Link")
}

// --- License ---------------------------------------------------------------

// RawLicense returns the License section as written.
func (d *Descriptor) RawLicense() string {
	return d.section("License")
}

// License returns the module's license, warning if a non-tests module
// lacks one. The default is GPL.
func (d *Descriptor) License() string {
	if d.license == "" {
		license := strings.TrimSpace(d.RawLicense())
		if license == "" && !d.HasTestsName() {
			T().Infof("module %s lacks a License", d.name)
		}
		if strings.HasPrefix(d.name, "parse-datetime") {
			// The parse-datetime modules carry a weaker license notice for
			// users who hand-edit them without an importer tool. For
			// regular importing they are under the stricter license.
			license = "GPL"
		}
		if license == "" {
			license = "GPL"
		}
		d.license = license
	}
	return d.license
}

// --- Helpers ---------------------------------------------------------------

func nonEmptyLines(snippet string) []string {
	var result []string
	for _, line := range strings.Split(snippet, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// CombineLines joins lines that are continued with a trailing backslash.
func CombineLines(snippet string) string {
	return strings.ReplaceAll(snippet, "\\\n", " ")
}

// filterFileList returns the files with the given prefix and suffix,
// the prefix removed.
func filterFileList(files []string, prefix, suffix string) []string {
	var result []string
	for _, filename := range files {
		if strings.HasPrefix(filename, prefix) && strings.HasSuffix(filename, suffix) {
			result = append(result, strings.TrimPrefix(filename, prefix))
		}
	}
	return result
}
