package modsys

import (
	"regexp"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/glport/glport/modfile"
)

// TestCategory classifies problematic unit-test modules. Dependencies
// carrying one of these status words are only pulled into a closure
// when the category is included.
type TestCategory int

// The test categories of the module description format.
const (
	CatTests TestCategory = iota
	CatObsolete
	CatCxxTest
	CatLongrunningTest
	CatPrivilegedTest
	CatUnportableTest
	numCategories
)

var categoryStatus = map[string]TestCategory{
	"obsolete":         CatObsolete,
	"c++-test":         CatCxxTest,
	"longrunning-test": CatLongrunningTest,
	"privileged-test":  CatPrivilegedTest,
	"unportable-test":  CatUnportableTest,
}

// Table is used to work with lists of modules: it computes transitive
// dependency closures and keeps track of conditional dependencies.
//
// Methods for conditional dependencies:
//
//   addUnconditional(B)       notes the presence of B as an unconditional module
//   addConditional(A, B, c)   notes a conditional dependency from A to B, subject
//                             to the condition that A is enabled and c is true
//   IsConditional(B)          tests whether module B is conditional
//   Condition(A, B)           returns the condition under which B is enabled as a
//                             dependency of A
type Table struct {
	sys                 *System
	condDeps            bool
	incAllDirectTests   bool // include all problematic unit tests of the specified modules
	incAllIndirectTests bool // include all problematic unit tests of the dependencies
	inclCategories      [numCategories]bool
	exclCategories      [numCategories]bool
	avoids              *treeset.Set
	dependers           map[string][]string // dependers[B] = parents with conditional edges to B
	conditionals        map[string]string   // conditionals[A---B] = condition ("" is the true condition)
	unconditionals      map[string]bool
}

// An Option configures a table.
type Option func(*Table)

// WithConditionalDependencies records conditions for conditional
// dependencies instead of treating every dependency as unconditional.
func WithConditionalDependencies() Option {
	return func(t *Table) { t.condDeps = true }
}

// WithAvoids excludes modules from every closure the table computes.
func WithAvoids(names ...string) Option {
	return func(t *Table) { t.avoids.Add(toInterfaces(names)...) }
}

// IncludeCategory includes a test category in closures.
func IncludeCategory(cat TestCategory) Option {
	return func(t *Table) { t.inclCategories[cat] = true }
}

// ExcludeCategory excludes a test category from closures.
func ExcludeCategory(cat TestCategory) Option {
	return func(t *Table) { t.exclCategories[cat] = true }
}

// IncludeAllTests includes all kinds of problematic unit tests among
// the unit tests of the specified modules (direct), and optionally of
// their dependencies (indirect).
func IncludeAllTests(indirect bool) Option {
	return func(t *Table) {
		t.incAllDirectTests = true
		t.incAllIndirectTests = indirect
	}
}

// NewTable creates a table for the given module system.
func NewTable(sys *System, opts ...Option) *Table {
	t := &Table{
		sys:            sys,
		avoids:         treeset.NewWithStringComparator(),
		dependers:      make(map[string][]string),
		conditionals:   make(map[string]string),
		unconditionals: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) addConditional(parent, module *modfile.Descriptor, condition string) {
	if t.unconditionals[module.Name()] {
		// An unconditional dependency to the module is already known.
		return
	}
	parents := t.dependers[module.Name()]
	for _, p := range parents {
		if p == parent.Name() {
			t.conditionals[condKey(parent.Name(), module.Name())] = condition
			return
		}
	}
	t.dependers[module.Name()] = append(parents, parent.Name())
	t.conditionals[condKey(parent.Name(), module.Name())] = condition
}

func (t *Table) addUnconditional(module *modfile.Descriptor) {
	t.unconditionals[module.Name()] = true
	delete(t.dependers, module.Name())
}

// IsConditional checks whether a module is a conditional module, i.e.
// reachable through conditional dependency edges only.
func (t *Table) IsConditional(module *modfile.Descriptor) bool {
	_, ok := t.dependers[module.Name()]
	return ok
}

// Dependers returns the parents with conditional edges to module.
func (t *Table) Dependers(module *modfile.Descriptor) []string {
	return t.dependers[module.Name()]
}

// Condition returns the condition under which module should be enabled
// as a dependency of parent, once the m4 code for parent has been
// executed. The empty condition stands for "true". ok is false if no
// conditional edge from parent to module is known.
func (t *Table) Condition(parent, module *modfile.Descriptor) (condition string, ok bool) {
	condition, ok = t.conditionals[condKey(parent.Name(), module.Name())]
	return condition, ok
}

func condKey(parent, module string) string {
	return parent + "---" + module
}

func (t *Table) isAvoided(name string) bool {
	return t.avoids.Contains(name)
}

// includeDependency decides whether to include a dependency or tests
// module, based on its status words and the table's test categories.
func (t *Table) includeDependency(dep *modfile.Descriptor, incAllTests bool) bool {
	for _, word := range dep.Statuses() {
		if cat, known := categoryStatus[word]; known && word != "obsolete" {
			if t.exclCategories[cat] {
				return false
			}
			if !incAllTests && !t.inclCategories[cat] {
				return false
			}
		} else if word == "obsolete" {
			if !t.inclCategories[CatObsolete] {
				return false
			}
		} else if strings.HasSuffix(word, "-test") {
			if !incAllTests {
				return false
			}
		}
	}
	return true
}

// TransitiveClosure adds every module from the given list and its
// transitive dependencies, but does not add dependencies that are in
// the avoids list. If conditional dependencies are enabled, the
// condition of each conditional dependency is recorded. The result is
// sorted by module name.
func (t *Table) TransitiveClosure(modules []*modfile.Descriptor) ([]*modfile.Descriptor, error) {
	// In order to process every module only once (for speed), process an
	// "input list" of modules, producing an "output list" of modules.
	// During each round, more modules can be queued in the input list.
	// Once a module on the input list has been processed, it is added to
	// the "handled list", so we can avoid to process it again.
	incAllTests := t.incAllDirectTests
	handled := map[string]bool{}
	out := map[string]*modfile.Descriptor{}
	in := map[string]*modfile.Descriptor{}
	for _, m := range modules {
		in[m.Name()] = m
		if t.condDeps && !t.isAvoided(m.Name()) {
			t.addUnconditional(m)
		}
	}
	for len(in) > 0 {
		thisRound := sortedModules(in)
		in = map[string]*modfile.Descriptor{}
		for _, module := range thisRound {
			if t.isAvoided(module.Name()) {
				continue
			}
			out[module.Name()] = module
			conditional := t.condDeps && t.IsConditional(module)
			deps := t.sys.DependenciesOf(module)
			t.warnAboutDuplicates(module, deps)
			if t.inclCategories[CatTests] {
				if testsName := module.TestsName(); testsName != module.Name() && t.sys.Exists(testsName) {
					deps = append(deps, modfile.Dependency{Name: testsName})
				}
			}
			for _, dep := range deps {
				if t.isAvoided(dep.Name) {
					continue
				}
				depmod, err := t.sys.Find(dep.Name)
				if err != nil {
					tracer().Errorf("module %s depends on unknown module %s", module, dep.Name)
					continue
				}
				if !t.includeDependency(depmod, incAllTests) {
					continue
				}
				in[depmod.Name()] = depmod
				if t.condDeps {
					if dep.Condition != "" {
						t.addConditional(module, depmod, dep.Condition)
					} else if conditional {
						t.addConditional(module, depmod, "")
					} else {
						t.addUnconditional(depmod)
					}
				}
			}
			handled[module.Name()] = true
		}
		for name := range handled {
			delete(in, name)
		}
		incAllTests = t.incAllIndirectTests
	}
	return sortedModules(out), nil
}

// Duplicate dependencies are harmless, but deserve a warning.
func (t *Table) warnAboutDuplicates(module *modfile.Descriptor, deps []modfile.Dependency) {
	seen := map[string]int{}
	for _, dep := range deps {
		seen[dep.Name]++
	}
	var duplicates []string
	for name, n := range seen {
		if n > 1 {
			duplicates = append(duplicates, name)
		}
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		tracer().Infof("module %s has duplicated dependencies: %v", module, duplicates)
	}
}

// TransitiveClosureSeparately determines the main module list and the
// tests-related module list separately.
//
// The main module list is the transitive closure of the specified
// modules, ignoring tests modules. Its lib/* sources go into the
// client's source base.
//
// The tests-related module list is the transitive closure of the
// specified modules, including tests modules, minus the main module
// list excluding modules of applicability 'all'. Its lib/* sources,
// brought in through dependencies of *-tests modules, go into the
// client's tests base.
func (t *Table) TransitiveClosureSeparately(base, final []*modfile.Descriptor) (mainModules, testsModules []*modfile.Descriptor, err error) {
	// Determine the main module list, with the tests category disabled.
	savedInclTests := t.inclCategories[CatTests]
	t.inclCategories[CatTests] = false
	mainModules, err = t.TransitiveClosure(base)
	t.inclCategories[CatTests] = savedInclTests
	if err != nil {
		return nil, nil, err
	}
	inMain := map[string]bool{}
	for _, m := range mainModules {
		inMain[m.Name()] = true
	}
	for _, m := range final {
		if !(inMain[m.Name()] && m.Applicability() == "main") {
			testsModules = append(testsModules, m)
		}
	}
	// If the tests-related modules consist only of modules with
	// applicability 'all', the list is dropped: such modules are only
	// helper modules for other modules.
	haveNontrivial := false
	for _, m := range testsModules {
		if m.Applicability() != "all" {
			haveNontrivial = true
			break
		}
	}
	if !haveNontrivial {
		testsModules = nil
	}
	return mainModules, testsModules, nil
}

// FileList determines the final file list for the given list of
// modules. The list of modules must already include dependencies.
func (t *Table) FileList(modules []*modfile.Descriptor) []string {
	var filelist []string
	seen := map[string]bool{}
	for _, module := range modules {
		for _, file := range module.Files() {
			if !seen[file] {
				seen[file] = true
				filelist = append(filelist, file)
			}
		}
	}
	return filelist
}

// FileListSeparately determines the file lists of the main modules and
// the tests-related modules. They must be computed separately, because
// files in lib/* go into the source base if they are in the main file
// list but into the tests base if they are in the tests-related file
// list. Furthermore lib/dummy.c can be in both.
func (t *Table) FileListSeparately(mainModules, testsModules []*modfile.Descriptor) (mainFiles, testsFiles []string) {
	mainFiles = t.FileList(mainModules)
	testsFiles = t.FileList(testsModules)
	for i, file := range testsFiles {
		if strings.HasPrefix(file, "lib/") {
			testsFiles[i] = "tests=lib/" + strings.TrimPrefix(file, "lib/")
		}
	}
	return mainFiles, testsFiles
}

var libSourcesAugmentation = regexp.MustCompile(`(?m)^lib_SOURCES[\t ]*\+=([^#]*).*$`)

// AddDummy appends the dummy module to the list of modules if none of
// them contributes a compiled source file to the client library, so
// that the library is guaranteed to be non-empty. Otherwise the
// original list is returned.
func (t *Table) AddDummy(modules []*modfile.Descriptor) []*modfile.Descriptor {
	haveLibSources := false
	for _, module := range modules {
		if module.HasTestsName() {
			continue
		}
		if t.condDeps && t.IsConditional(module) {
			// Conditional modules are not guaranteed to contribute to
			// lib_SOURCES.
			continue
		}
		snippet := modfile.CombineLines(module.AutomakeSnippet("build-aux"))
		snippet = removeIfBlocks(snippet)
		for _, m := range libSourcesAugmentation.FindAllStringSubmatch(snippet, -1) {
			for _, file := range strings.Fields(m[1]) {
				// .h files are not compiled.
				if !strings.HasSuffix(file, ".h") {
					haveLibSources = true
					break
				}
			}
		}
	}
	if haveLibSources {
		return modules
	}
	for _, module := range modules {
		if module.Name() == "dummy" {
			return modules
		}
	}
	if t.isAvoided("dummy") || !t.sys.Exists("dummy") {
		return modules
	}
	dummy, err := t.sys.Find("dummy")
	if err != nil {
		tracer().Errorf("cannot load the dummy module: %v", err)
		return modules
	}
	return append(modules, dummy)
}

// removeIfBlocks removes if…endif blocks from an automake snippet.
func removeIfBlocks(snippet string) string {
	var cleansed []string
	depth := 0
	for _, line := range strings.Split(snippet, "\n") {
		if strings.HasPrefix(line, "if ") {
			depth++
		} else if strings.HasPrefix(line, "endif") {
			depth--
		} else if depth == 0 {
			cleansed = append(cleansed, line)
		}
	}
	return strings.Join(cleansed, "\n")
}

func sortedModules(set map[string]*modfile.Descriptor) []*modfile.Descriptor {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]*modfile.Descriptor, 0, len(names))
	for _, name := range names {
		result = append(result, set[name])
	}
	return result
}

func toInterfaces(names []string) []interface{} {
	result := make([]interface{}, len(names))
	for i, n := range names {
		result[i] = n
	}
	return result
}
