// Package main hosts the discsub CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once and builds the
// catalog client and optional match cache before handing work to the internal
// packages. Resolve is the main entrypoint; the remaining commands query the
// catalog directly or maintain local state.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
