package sitecode

import (
	"strings"
)

// Code identifies a categorized metadata fragment embedded in free-text
// comment or content fields.
type Code string

// Scope names the free-text field a code belongs to.
type Scope int

const (
	ScopeComments Scope = iota
	ScopeContents
)

// Info describes how a code is detected and rendered.
type Info struct {
	Short string
	Long  string
	Scope Scope
	// MultiLine codes absorb following lines until a blank line or another tag.
	MultiLine bool
	// Boolean codes render as the bare tag when set.
	Boolean bool
	// LocalOnly codes are produced from the local dump; remote values are discarded.
	LocalOnly bool
}

// ShortName returns the tag string written into free text, such as "[T:ISBN]".
func (c Code) ShortName() string { return table[c].Short }

// LongName returns the human readable label of the code.
func (c Code) LongName() string { return table[c].Long }

// Info returns the table entry for c and whether c is known.
func (c Code) Info() (Info, bool) {
	info, ok := table[c]
	return info, ok
}

// MultiLine reports whether c accepts continuation lines.
func (c Code) MultiLine() bool { return table[c].MultiLine }

// Boolean reports whether c is a flag tag.
func (c Code) Boolean() bool { return table[c].Boolean }

// All returns every known code in detection order.
func All() []Code {
	out := make([]Code, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

// Lookup finds the first known code whose tag occurs in line.
func Lookup(line string) (Code, bool) {
	for _, code := range detectionOrder {
		if strings.Contains(line, table[code].Short) {
			return code, true
		}
	}
	return "", false
}

// LookupIn is Lookup restricted to codes owned by scope.
func LookupIn(line string, scope Scope) (Code, bool) {
	for _, code := range detectionOrder {
		info := table[code]
		if info.Scope == scope && strings.Contains(line, info.Short) {
			return code, true
		}
	}
	return "", false
}

// ReplaceMarkup rewrites "<b>Long Name</b>:" labels into their short tags.
func ReplaceMarkup(text string) string {
	if !strings.Contains(text, "<b>") {
		return text
	}
	return markupReplacer.Replace(text)
}

var markupReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(detectionOrder)*2)
	for _, code := range detectionOrder {
		info := table[code]
		pairs = append(pairs, "<b>"+info.Long+"</b>:", info.Short)
	}
	return strings.NewReplacer(pairs...)
}()

// Fields maps codes to their accumulated text fragments.
type Fields map[Code]string
