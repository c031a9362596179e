package sitecode

import (
	"strings"
)

// Format renders a single fragment as it appears in free text. Boolean codes
// render as the bare tag when value is truthy and as nothing otherwise.
func Format(code Code, value string) string {
	info, ok := table[code]
	if !ok {
		return ""
	}
	value = strings.TrimSpace(value)
	if info.Boolean {
		if !truthy(value) {
			return ""
		}
		return strings.TrimSpace(info.Short)
	}
	if value == "" {
		return ""
	}
	if info.MultiLine {
		return info.Short + "\n" + value + "\n"
	}
	return info.Short + " " + value
}

// Merge prepends the fragments in fields to text following order, normalizes
// line endings, trims the result, and empties fields. Codes present in fields
// but absent from order follow in detection order.
//
// The merge consumes fields: a second call with the emptied map returns text
// unchanged.
func Merge(text string, fields Fields, order []Code) string {
	if len(fields) == 0 {
		return text
	}

	rendered := make([]string, 0, len(fields))
	for _, code := range orderedCodes(fields, order) {
		if line := Format(code, fields[code]); line != "" {
			rendered = append(rendered, line)
		}
	}
	clear(fields)

	merged := strings.Join(rendered, "\n") + "\n" + text
	merged = strings.ReplaceAll(merged, "\r\n", "\n")
	return strings.TrimSpace(merged)
}

func orderedCodes(fields Fields, order []Code) []Code {
	seen := make(map[Code]struct{}, len(fields))
	codes := make([]Code, 0, len(fields))
	for _, code := range order {
		if _, ok := fields[code]; ok {
			codes = append(codes, code)
			seen[code] = struct{}{}
		}
	}
	for _, code := range detectionOrder {
		if _, done := seen[code]; done {
			continue
		}
		if _, ok := fields[code]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func truthy(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
