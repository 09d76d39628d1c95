/*
Package modsys locates modules within a portability module collection
and reasons about sets of modules.

Content

A collection keeps its module description files in a modules/ directory.
Client projects may carry local override directories with the same
layout; an override file shadows the collection's file of the same name.

Type System performs the dynamic searching: checking whether a module
exists, finding and parsing its description, and listing all modules of
a collection.

Type Table works with lists of modules. Its central operation is the
transitive closure of a module list's dependencies, honoring

▪︎ avoided modules, which are cut out of the closure together with the
dependency edges leading to them,

▪︎ conditional dependencies, where a dependency only materializes when a
configure-time condition holds,

▪︎ test categories (obsolete, c++-test, longrunning-test, and so on),
which include or exclude whole classes of dependencies.

On top of the closure, Table computes the separation into main modules
and tests-related modules, the resulting file lists, and the injection
of the dummy module for client libraries that would otherwise end up
empty.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package modsys

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to glport.modsys .
func tracer() tracing.Trace {
	return tracing.Select("glport.modsys")
}
