/*
Package texidoc is about per-function portability notes.

Content

A portability module collection documents, for every libc function it
knows about, the function's deviations from the standards on the
platforms of this world. The documentation is kept as one Texinfo
fragment per function:

   @node obstack_printf
   @subsection @code{obstack_printf}
   @findex obstack_printf

   Gnulib module: obstack-printf or obstack-printf-posix

   Portability problems fixed by either Gnulib module
   @code{obstack-printf} or @code{obstack-printf-posix}:
   @itemize
   @item
   This function is missing on all non-glibc platforms:
   macOS 11.1, FreeBSD 13.0, NetBSD 9.0, OpenBSD 6.7, ...
   @end itemize

   Portability problems not fixed by Gnulib:
   @itemize
   @end itemize

This package parses such fragments into a Note — the function name, the
fixing modules, and the groups of portability problems together with
the platforms exhibiting them — and renders Notes back into canonical
Texinfo.

The line-level tokenization is done by a Scanner implementing the
tokenizer contract of the gorgo parsing tools, so the note parser reads
its input the same way grammar-driven parsers would.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package texidoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to glport.texidoc .
func tracer() tracing.Trace {
	return tracing.Select("glport.texidoc")
}
