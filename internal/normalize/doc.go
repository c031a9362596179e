// Package normalize applies the catalog's deterministic rewrites to a
// submission record: leading articles move to the end of titles, and disc
// types are reclassified from their layerbreaks. Neither step can fail.
package normalize
