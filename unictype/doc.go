/*
Package unictype answers boolean property questions about Unicode code
points.

Content

The Unicode Character Database assigns binary properties to code
points, published as file "PropList.txt". This package covers the
properties a portability module collection's text tools consult, most
prominently Bidi_Control, the set of format control characters for
bidirectional text.

Clients check single code points,

   unictype.IsBidiControl('‪')          // true
   unictype.Is(unictype.WhiteSpace, '\t')    // true

or fetch a range table for use with the unicode package,

   unicode.Is(unictype.RangesFor(unictype.JoinControl), r)

The range tables are generated from PropList.txt by the generator in
internal/generator and committed; SetupProperties initializes them
lazily.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package unictype

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to glport.unictype .
func tracer() tracing.Trace {
	return tracing.Select("glport.unictype")
}
