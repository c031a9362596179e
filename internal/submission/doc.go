// Package submission defines the disc submission record and the immutable
// lookup tables for systems, disc types, regions, languages and categories.
//
// Records are plain data: identification fills them, normalization adjusts
// them, and the report package renders them.
package submission
