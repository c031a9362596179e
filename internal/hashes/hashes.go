package hashes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"discsub/internal/services"
)

// Track is the hash record for one dumped track.
type Track struct {
	Name  string
	Size  int64
	CRC32 string
	MD5   string
	SHA1  string
}

// ParseError reports a manifest line that does not have the expected
// <rom .../> shape.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed hash line %q", e.Line)
	}
	return fmt.Sprintf("malformed hash line %q: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is match services.ErrParse.
func (e *ParseError) Unwrap() error { return services.ErrParse }

var romPattern = regexp.MustCompile(`<rom name="(.*?)" size="(.*?)" crc="(.*?)" md5="(.*?)" sha1="(.*?)"`)

// ParseLine parses a single manifest line into a Track.
func ParseLine(line string) (Track, error) {
	trimmed := strings.TrimSpace(line)
	match := romPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return Track{}, &ParseError{Line: trimmed}
	}
	size, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil || size < 0 {
		return Track{}, &ParseError{Line: trimmed, Reason: "invalid size"}
	}
	sha1 := strings.ToLower(match[5])
	if sha1 == "" {
		return Track{}, &ParseError{Line: trimmed, Reason: "missing sha1"}
	}
	return Track{
		Name:  match[1],
		Size:  size,
		CRC32: strings.ToLower(match[3]),
		MD5:   strings.ToLower(match[4]),
		SHA1:  sha1,
	}, nil
}

// Lines splits a manifest into its non-blank lines.
func Lines(manifest string) []string {
	manifest = strings.ReplaceAll(manifest, "\r\n", "\n")
	raw := strings.Split(manifest, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseManifest parses every line of manifest. The first malformed line aborts
// parsing.
func ParseManifest(manifest string) ([]Track, error) {
	lines := Lines(manifest)
	tracks := make([]Track, 0, len(lines))
	for i, line := range lines {
		track, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// IsParseError reports whether err originates from a malformed line.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
