// Package hashes parses the per-track hash manifest produced by the dumping
// step. Each line is a ClrMamePro style <rom/> element.
package hashes
