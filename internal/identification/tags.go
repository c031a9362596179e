package identification

import (
	"html"
	"regexp"
	"strings"

	"discsub/internal/sitecode"
)

var divOpenPattern = regexp.MustCompile(`<div .*?>`)

// cleanFreeText decodes entities and strips the markup the catalog wraps
// around comment and content blocks.
func cleanFreeText(raw string) string {
	text := html.UnescapeString(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "<br />\n", "\n")
	text = strings.ReplaceAll(text, "<br />", "\n")
	text = strings.ReplaceAll(text, "</div>", "")
	text = strings.ReplaceAll(text, "[+]", "")
	text = divOpenPattern.ReplaceAllString(text, "")
	return sitecode.ReplaceMarkup(text)
}

type tagState int

const (
	stateIdle tagState = iota
	stateAccumulating
	stateDiscarding
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineTagged
	lineText
)

// tagParser splits free text into plain lines and tagged fragments.
//
//	idle         + tagged(multi)  -> accumulating
//	idle         + tagged(local)  -> discarding if multi, else idle
//	accumulating + text           -> accumulating (appends)
//	discarding   + text           -> discarding (drops)
//	any          + blank          -> idle
//	any          + tagged         -> as from idle
//	any          + repeated tag   -> idle (line kept as plain text)
//	idle         + text           -> idle (plain text)
type tagParser struct {
	scope   sitecode.Scope
	state   tagState
	current sitecode.Code
	plain   []string
	fields  sitecode.Fields
}

func newTagParser(scope sitecode.Scope) *tagParser {
	return &tagParser{scope: scope, fields: sitecode.Fields{}}
}

func (p *tagParser) classify(line string) (lineKind, sitecode.Code) {
	if strings.TrimSpace(line) == "" {
		return lineBlank, ""
	}
	if code, ok := sitecode.LookupIn(line, p.scope); ok {
		return lineTagged, code
	}
	return lineText, ""
}

func (p *tagParser) feed(line string) {
	kind, code := p.classify(line)
	switch kind {
	case lineBlank:
		p.state = stateIdle
		p.current = ""
	case lineTagged:
		p.startTag(code, line)
	case lineText:
		switch p.state {
		case stateAccumulating:
			p.appendLine(p.current, strings.TrimSpace(line))
		case stateDiscarding:
		default:
			p.plain = append(p.plain, line)
		}
	}
}

func (p *tagParser) startTag(code sitecode.Code, line string) {
	info, _ := code.Info()
	p.current = code
	if info.LocalOnly {
		p.state = stateIdle
		if info.MultiLine {
			p.state = stateDiscarding
		}
		return
	}

	// Only the first occurrence of a tag becomes a fragment. Later ones stay
	// in the plain text along with any continuation lines.
	if _, seen := p.fields[code]; seen {
		p.plain = append(p.plain, line)
		p.state = stateIdle
		p.current = ""
		return
	}

	value := strings.TrimSpace(strings.Replace(line, info.Short, "", 1))
	if info.Boolean {
		if value != "" {
			p.plain = append(p.plain, value)
		}
		value = "Yes"
	}
	p.fields[code] = value

	p.state = stateIdle
	if info.MultiLine {
		p.state = stateAccumulating
	}
}

func (p *tagParser) appendLine(code sitecode.Code, line string) {
	if existing := p.fields[code]; existing != "" {
		p.fields[code] = existing + "\n" + line
		return
	}
	p.fields[code] = line
}

// parseTagged runs the tag state machine over cleaned free text.
func parseTagged(text string, scope sitecode.Scope) (string, sitecode.Fields) {
	p := newTagParser(scope)
	for _, line := range strings.Split(text, "\n") {
		p.feed(line)
	}
	for code, value := range p.fields {
		if strings.TrimSpace(value) == "" {
			delete(p.fields, code)
		}
	}
	return strings.TrimSpace(strings.Join(p.plain, "\n")), p.fields
}
