/*
Package modfile reads module description files.

Content

Every module of a portability collection is described by a plain-text
file, named after the module. A description file consists of labelled
sections:

   Description:
   Formatted output to obstacks.

   Files:
   lib/obstack_printf.c
   m4/obstack-printf.m4

   Depends-on:
   obstack
   stdio-h
   vasnprintf        [test $ac_cv_func_obstack_printf = no]

   configure.ac:
   gl_FUNC_OBSTACK_PRINTF
   ...

   Include:
   <stdio.h>

   License:
   GPL

   Maintainer:
   all

Sections may appear in any order and most of them are optional. A
dependency line may carry a bracketed condition, restricting the
dependency to configurations where the condition (a shell expression)
holds.

This package parses a single description file into a Descriptor and
provides accessors for all sections, including the synthesized parts of
the automake snippet (EXTRA_DIST augmentations and the like). Locating
description files within a collection, and reasoning about sets of
modules, is the business of package modsys.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package modfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
