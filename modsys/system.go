package modsys

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/glport/glport/modfile"
)

// System is used to operate with a module collection using dynamic
// searching. A system knows the collection's root directory and zero or
// more local override directories. Both the root and the override
// directories contain a modules/ sub-directory with one description
// file per module.
//
// The original collection tooling patches module descriptions with
// diff files from the override directories. We support whole-file
// overrides instead: an override file completely shadows the
// collection's file.
type System struct {
	root      string
	localDirs []string
}

// New creates a module system for a collection rooted at root, with
// optional local override directories.
func New(root string, localDirs ...string) *System {
	return &System{
		root:      root,
		localDirs: localDirs,
	}
}

// Files in the modules/ directory that never denote modules.
var badNames = []string{
	"ChangeLog", "COPYING", "README", "TEMPLATE",
	"TEMPLATE-EXTENDED", "TEMPLATE-TESTS",
}

// Exists checks whether the given module exists, either in the
// collection or in one of the local override directories.
func (sys *System) Exists(name string) bool {
	for _, bad := range badNames {
		if name == bad {
			return false
		}
	}
	if isFile(filepath.Join(sys.root, "modules", name)) {
		return true
	}
	for _, localdir := range sys.localDirs {
		if isFile(filepath.Join(localdir, "modules", name)) {
			return true
		}
	}
	return false
}

// Find finds the given module and parses its description file. Local
// override directories shadow the collection.
func (sys *System) Find(name string) (*modfile.Descriptor, error) {
	if !sys.Exists(name) {
		return nil, fmt.Errorf("module %s does not exist", name)
	}
	path := filepath.Join(sys.root, "modules", name)
	for _, localdir := range sys.localDirs {
		if local := filepath.Join(localdir, "modules", name); isFile(local) {
			path = local
			break
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open module description: %w", err)
	}
	defer f.Close()
	return modfile.Parse(name, f)
}

// IsModuleFile decides whether the name of a file in the modules/
// directory should be viewed as a module description file.
func IsModuleFile(filename string) bool {
	base := filepath.Base(filename)
	for _, bad := range badNames {
		if base == bad {
			return false
		}
	}
	return !(strings.HasPrefix(base, ".") ||
		strings.HasSuffix(filename, ".orig") ||
		strings.HasSuffix(filename, ".rej") ||
		strings.HasSuffix(filename, "~"))
}

// List returns the names of all available non-tests modules, sorted
// alphabetically.
func (sys *System) List() ([]string, error) {
	names := treeset.NewWithStringComparator()
	dirs := append([]string{sys.root}, sys.localDirs...)
	for _, dir := range dirs {
		moddir := filepath.Join(dir, "modules")
		if !isDir(moddir) {
			continue
		}
		err := filepath.WalkDir(moddir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(moddir, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			rel = strings.TrimSuffix(rel, ".diff")
			if IsModuleFile(rel) && !strings.HasSuffix(rel, "-tests") {
				names.Add(rel)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot list modules in %s: %w", moddir, err)
		}
	}
	result := make([]string, 0, names.Size())
	for _, v := range names.Values() {
		result = append(result, v.(string))
	}
	tracer().Debugf("module collection contains %d modules", len(result))
	return result, nil
}

// DependenciesOf returns the dependencies of a module, including the
// implicit dependency of a *-tests module on its main module.
func (sys *System) DependenciesOf(d *modfile.Descriptor) []modfile.Dependency {
	var deps []modfile.Dependency
	if d.HasTestsName() && sys.Exists(d.MainName()) {
		deps = append(deps, modfile.Dependency{Name: d.MainName()})
	}
	return append(deps, d.Dependencies()...)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
