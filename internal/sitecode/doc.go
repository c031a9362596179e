// Package sitecode holds the catalog's site-code table and merges tagged
// fragments back into free-text comment and content fields.
//
// Each code carries its short tag, long label, owning field, and whether it is
// multi-line, a boolean flag, or owned by the local dump. Merge renders
// fragments in a fixed priority order and consumes the fragment map.
package sitecode
