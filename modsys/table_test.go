package modsys

import (
	"testing"

	"github.com/glport/glport/modfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func moduleNames(modules []*modfile.Descriptor) []string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name()
	}
	return names
}

func expectModules(t *testing.T, have []*modfile.Descriptor, expected ...string) {
	t.Helper()
	names := moduleNames(have)
	if len(names) != len(expected) {
		t.Fatalf("expected %d modules %v, have %d: %v", len(expected), expected, len(names), names)
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("module #%d: expected %s, have %s", i, expected[i], name)
		}
	}
}

func baseModules(t *testing.T, sys *System, names ...string) []*modfile.Descriptor {
	t.Helper()
	var modules []*modfile.Descriptor
	for _, name := range names {
		d, err := sys.Find(name)
		if err != nil {
			t.Fatalf("cannot load base module %s: %v", name, err)
		}
		modules = append(modules, d)
	}
	return modules
}

func TestTransitiveClosure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys)
	closure, err := table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	// old-printf is obsolete and must not be pulled in by default;
	// obstack-printf-tests is only pulled in with the tests category.
	expectModules(t, closure,
		"errno-h", "include-next", "obstack", "obstack-printf",
		"printf-directive-b", "stddef-h", "stdio-h", "vasnprintf")
}

func TestTransitiveClosureWithObsolete(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys, IncludeCategory(CatObsolete))
	closure, err := table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	expectModules(t, closure,
		"errno-h", "include-next", "obstack", "obstack-printf", "old-printf",
		"printf-directive-b", "stddef-h", "stdio-h", "vasnprintf")
}

func TestTransitiveClosureWithAvoids(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys, WithAvoids("vasnprintf"))
	closure, err := table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	// Avoiding vasnprintf also cuts printf-directive-b, which is only
	// reachable through it.
	expectModules(t, closure,
		"errno-h", "include-next", "obstack", "obstack-printf",
		"stddef-h", "stdio-h")
}

func TestTransitiveClosureWithTests(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys, IncludeCategory(CatTests))
	closure, err := table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	// longrun-check carries status longrunning-test and stays excluded.
	expectModules(t, closure,
		"errno-h", "include-next", "obstack", "obstack-printf",
		"obstack-printf-tests", "printf-directive-b", "stddef-h", "stdio-h",
		"vasnprintf")

	table = NewTable(sys, IncludeCategory(CatTests), IncludeCategory(CatLongrunningTest))
	closure, err = table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	expectModules(t, closure,
		"errno-h", "include-next", "longrun-check", "obstack", "obstack-printf",
		"obstack-printf-tests", "printf-directive-b", "stddef-h", "stdio-h",
		"vasnprintf")
}

func TestConditionalDependencies(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys, WithConditionalDependencies())
	closure, err := table.TransitiveClosure(baseModules(t, sys, "obstack-printf"))
	if err != nil {
		t.Fatal(err)
	}
	byName := map[string]*modfile.Descriptor{}
	for _, m := range closure {
		byName[m.Name()] = m
	}
	if table.IsConditional(byName["obstack"]) {
		t.Errorf("obstack is an unconditional dependency")
	}
	if !table.IsConditional(byName["vasnprintf"]) {
		t.Errorf("vasnprintf is reachable through a conditional edge only")
	}
	cond, ok := table.Condition(byName["obstack-printf"], byName["vasnprintf"])
	if !ok || cond != "test $ac_cv_func_obstack_printf = no" {
		t.Errorf("unexpected condition %q (ok=%v)", cond, ok)
	}
	// printf-directive-b hangs off the conditional vasnprintf without a
	// condition of its own; the recorded condition is the true condition.
	if !table.IsConditional(byName["printf-directive-b"]) {
		t.Errorf("printf-directive-b inherits conditionality from vasnprintf")
	}
	cond, ok = table.Condition(byName["vasnprintf"], byName["printf-directive-b"])
	if !ok || cond != "" {
		t.Errorf("expected the true condition, have %q (ok=%v)", cond, ok)
	}
}

func TestTransitiveClosureSeparately(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys, IncludeCategory(CatTests))
	base := baseModules(t, sys, "obstack-printf")
	final, err := table.TransitiveClosure(base)
	if err != nil {
		t.Fatal(err)
	}
	mainModules, testsModules, err := table.TransitiveClosureSeparately(base, final)
	if err != nil {
		t.Fatal(err)
	}
	expectModules(t, mainModules,
		"errno-h", "include-next", "obstack", "obstack-printf",
		"printf-directive-b", "stddef-h", "stdio-h", "vasnprintf")
	expectModules(t, testsModules, "obstack-printf-tests")
}

func TestFileList(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys)
	modules := baseModules(t, sys, "obstack", "obstack-printf")
	files := table.FileList(modules)
	seen := map[string]int{}
	for _, f := range files {
		seen[f]++
	}
	for f, n := range seen {
		if n > 1 {
			t.Errorf("file %s appears %d times in the file list", f, n)
		}
	}
	if seen["lib/obstack.c"] != 1 || seen["lib/obstack_printf.c"] != 1 {
		t.Errorf("missing module files in %v", files)
	}
	if seen["m4/gnulib-common.m4"] != 1 {
		t.Errorf("bootstrap m4 files must be part of every file list")
	}
}

func TestFileListSeparately(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys)
	mainModules := baseModules(t, sys, "obstack")
	testsModules := baseModules(t, sys, "obstack-printf-tests", "vasnprintf")
	mainFiles, testsFiles := table.FileListSeparately(mainModules, testsModules)
	found := false
	for _, f := range mainFiles {
		if f == "lib/obstack.c" {
			found = true
		}
	}
	if !found {
		t.Errorf("lib/obstack.c missing from main file list %v", mainFiles)
	}
	for _, f := range testsFiles {
		if f == "lib/vasnprintf.c" {
			t.Errorf("tests-related lib files must be renamed to tests=lib/, have %v", testsFiles)
		}
	}
	found = false
	for _, f := range testsFiles {
		if f == "tests=lib/vasnprintf.c" {
			found = true
		}
	}
	if !found {
		t.Errorf("tests=lib/vasnprintf.c missing from tests file list %v", testsFiles)
	}
}

func TestAddDummy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sys := testSystem()
	table := NewTable(sys)
	// Header-only modules do not contribute lib_SOURCES: dummy is needed.
	modules := baseModules(t, sys, "stdio-h", "include-next")
	modules = table.AddDummy(modules)
	names := moduleNames(modules)
	if names[len(names)-1] != "dummy" {
		t.Errorf("expected dummy module to be appended, have %v", names)
	}
	// obstack compiles obstack.c: no dummy needed.
	modules = baseModules(t, sys, "obstack", "stdio-h")
	modules = table.AddDummy(modules)
	for _, name := range moduleNames(modules) {
		if name == "dummy" {
			t.Errorf("dummy module must not be added when lib sources exist")
		}
	}
}
