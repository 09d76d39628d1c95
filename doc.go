/*
Package glport is about portability module collections in the gnulib style.

Description

A portability module collection is a tree of small C source shims, m4
autoconf macros and documentation snippets, organized into modules. A
module bundles everything needed to repair one deviation of a platform's
libc from the standards: the replacement sources, the configure checks
that decide whether the replacement is needed, the build-system hooks,
and a description of the module's dependencies on other modules.

Modules are described by plain-text description files with labelled
sections (Description, Files, Depends-on, configure.ac, Makefile.am,
Include, License, Maintainer, and a few more). An importer tool reads
these descriptions, computes the transitive closure of the requested
modules' dependencies, and copies the closure's files into a client
package.

Alongside the module tree lives reference documentation: one Texinfo
fragment per libc function, listing the known portability problems of
that function together with the platforms exhibiting them, and naming
the modules that fix them.

Finally, some of the shims deal with Unicode, and rely on boolean
code-point properties such as Bidi_Control. Properties are represented
as sorted tables of code-point ranges; a code point has a property iff
it falls into one of the ranges.

Contents

The sub-packages of glport cover these concerns:

Package modfile reads and interprets single module description files.

Package modsys locates modules within a collection (including local
override directories) and computes dependency closures and file lists.

Package texidoc parses and renders the per-function portability notes.

Package unictype provides the Unicode boolean property predicates
together with their generated range tables.

Base package glport provides some of the necessary means to implement
the line-level scanners used by the parsing sub-packages. Please note
that it is in no way mandatory to use the supporting types of this
package. Implementors of additional description formats are free to
ignore some or all of the helpers.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package glport

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
