// Package identification matches a dumped disc against the catalog.
//
// Track hashes are searched one by one and folded into fully and partially
// matched candidate sets. Fully matched candidates are checked in ascending ID
// order against the local track count; the first that agrees has its detail
// page parsed, including the tag state machine that splits comment and
// content blocks into plain text and site-code fragments, and merged into the
// submission record.
package identification
