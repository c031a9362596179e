package sitecode_test

import (
	"testing"

	"discsub/internal/sitecode"
)

func TestMergeOrdersCommentFragments(t *testing.T) {
	fields := sitecode.Fields{
		sitecode.Genre:            "Action",
		sitecode.ISBN:             "978-3-16-148410-0",
		sitecode.AlternativeTitle: "Other Name",
	}
	got := sitecode.Merge("Original comment", fields, sitecode.CommentsOrder)
	want := "[T:ALT] Other Name\n[T:ISBN] 978-3-16-148410-0\n[T:GENRE] Action\nOriginal comment"
	if got != want {
		t.Fatalf("Merge = %q, want %q", got, want)
	}
	if len(fields) != 0 {
		t.Fatalf("expected fields to be consumed, %d left", len(fields))
	}
}

func TestMergeTwiceIsNoop(t *testing.T) {
	fields := sitecode.Fields{sitecode.ISBN: "123"}
	once := sitecode.Merge("", fields, sitecode.CommentsOrder)
	twice := sitecode.Merge(once, fields, sitecode.CommentsOrder)
	if once != "[T:ISBN] 123" {
		t.Fatalf("first merge = %q", once)
	}
	if twice != once {
		t.Fatalf("second merge changed text: %q", twice)
	}
}

func TestMergeEmptyFieldsKeepsText(t *testing.T) {
	text := "  untouched\r\n"
	if got := sitecode.Merge(text, nil, sitecode.CommentsOrder); got != text {
		t.Fatalf("Merge with nil fields = %q", got)
	}
}

func TestMergeContentsMultiLine(t *testing.T) {
	fields := sitecode.Fields{
		sitecode.Videos: "Intro\nOutro",
		sitecode.Games:  "Game A\nGame B",
	}
	got := sitecode.Merge("", fields, sitecode.ContentsOrder)
	want := "[T:G]\nGame A\nGame B\n\n[T:V]\nIntro\nOutro"
	if got != want {
		t.Fatalf("Merge = %q, want %q", got, want)
	}
}

func TestFormatBoolean(t *testing.T) {
	if got := sitecode.Format(sitecode.VCD, "Yes"); got != "[T:VCD]" {
		t.Fatalf("Format(VCD, Yes) = %q", got)
	}
	if got := sitecode.Format(sitecode.VCD, "no"); got != "" {
		t.Fatalf("Format(VCD, no) = %q", got)
	}
}

func TestLookupDistinguishesPrefixes(t *testing.T) {
	cases := map[string]sitecode.Code{
		"[T:ALTF] Foreign":     sitecode.AlternativeForeignTitle,
		"[T:ALT] Plain":        sitecode.AlternativeTitle,
		"[T:GENRE] Puzzle":     sitecode.Genre,
		"[T:G]":                sitecode.Games,
		"see [T:ISBN] 1234 ok": sitecode.ISBN,
	}
	for line, want := range cases {
		got, ok := sitecode.Lookup(line)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %q, %v; want %q", line, got, ok, want)
		}
	}
	if _, ok := sitecode.Lookup("no tag here"); ok {
		t.Fatal("expected no tag")
	}
}

func TestReplaceMarkup(t *testing.T) {
	got := sitecode.ReplaceMarkup("<b>ISBN</b>: 12345")
	if got != "[T:ISBN] 12345" {
		t.Fatalf("ReplaceMarkup = %q", got)
	}
}

func TestCodeMetadata(t *testing.T) {
	info, ok := sitecode.Filename.Info()
	if !ok || !info.MultiLine || !info.LocalOnly {
		t.Fatalf("unexpected filename info: %+v", info)
	}
	if sitecode.Games.ShortName() != "[T:G]" {
		t.Fatalf("unexpected short name %q", sitecode.Games.ShortName())
	}
}

func TestLookupInScope(t *testing.T) {
	if _, ok := sitecode.LookupIn("[T:G]", sitecode.ScopeComments); ok {
		t.Fatal("content code matched in comments scope")
	}
	if code, ok := sitecode.LookupIn("[T:G]", sitecode.ScopeContents); !ok || code != sitecode.Games {
		t.Fatalf("LookupIn = %q, %v", code, ok)
	}
}
