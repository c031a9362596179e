// Package matchcache keeps catalog quicksearch results in a local SQLite
// database so repeated resolutions of the same dump skip the network.
//
// Wrap decorates any searcher with the cache. Entries older than the
// configured age are treated as missing.
package matchcache
