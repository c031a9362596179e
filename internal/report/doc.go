// Package report renders a resolved submission record.
//
// Format produces the plain-text report line by line: fixed sections, tab
// indentation, blank-line framing for multi-line values, and collapsed blank
// runs. Writer stores that text next to the JSON record (gzip-wrapped on
// request) and an optional protection listing, holding a lock on the output
// directory while it writes.
package report
