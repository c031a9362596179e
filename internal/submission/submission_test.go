package submission

import (
	"encoding/json"
	"strings"
	"testing"

	"discsub/internal/sitecode"
)

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"English": LanguageEnglish,
		"german":  LanguageGerman,
		"fr":      LanguageFrench,
		"spa":     LanguageSpanish,
		"ja":      LanguageJapanese,
	}
	for input, want := range cases {
		got, ok := ParseLanguage(input)
		if !ok || got != want {
			t.Fatalf("ParseLanguage(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}
	if _, ok := ParseLanguage("Klingon"); ok {
		t.Fatal("expected unknown language to fail")
	}
}

func TestParseRegionAndCategory(t *testing.T) {
	if r, ok := ParseRegion("U"); !ok || r.LongName() != "USA" {
		t.Fatalf("ParseRegion(U) = %q, %v", r, ok)
	}
	if r, ok := ParseRegion("europe"); !ok || r != "E" {
		t.Fatalf("ParseRegion(europe) = %q, %v", r, ok)
	}
	if c, ok := ParseCategory("bonus discs"); !ok || c != CategoryBonusDiscs {
		t.Fatalf("ParseCategory = %q, %v", c, ok)
	}
}

func TestSystemInfo(t *testing.T) {
	if !SystemSonyPlayStation2.Info().ReversedRingcodes {
		t.Fatal("expected PS2 to use reversed ringcodes")
	}
	if !SystemSonyPlayStation.Info().PlayStation {
		t.Fatal("expected PSX to be flagged as PlayStation")
	}
	if got := System("unknown").LongName(); got != "unknown" {
		t.Fatalf("unexpected long name %q", got)
	}
	if sys, ok := ParseSystem("Sony PlayStation 2"); !ok || sys != SystemSonyPlayStation2 {
		t.Fatalf("ParseSystem = %q, %v", sys, ok)
	}
}

func TestLayerCount(t *testing.T) {
	cases := []struct {
		sizes SizeAndChecksums
		want  int
	}{
		{SizeAndChecksums{}, 1},
		{SizeAndChecksums{Layerbreak: 1}, 2},
		{SizeAndChecksums{Layerbreak: 1, Layerbreak2: 2}, 3},
		{SizeAndChecksums{Layerbreak: 1, Layerbreak2: 2, Layerbreak3: 3}, 4},
	}
	for _, tc := range cases {
		if got := tc.sizes.LayerCount(); got != tc.want {
			t.Fatalf("LayerCount(%+v) = %d, want %d", tc.sizes, got, tc.want)
		}
	}
}

func TestProcessSpecialFieldsConsumesFragments(t *testing.T) {
	rec := New()
	rec.CommonDiscInfo.Comments = "Dumped twice"
	rec.SetCommentField(sitecode.ISBN, "12345")
	rec.SetContentField(sitecode.Games, "Game A")

	rec.ProcessSpecialFields()
	rec.ProcessSpecialFields()

	if rec.CommonDiscInfo.Comments != "[T:ISBN] 12345\nDumped twice" {
		t.Fatalf("unexpected comments %q", rec.CommonDiscInfo.Comments)
	}
	if rec.CommonDiscInfo.Contents != "[T:G]\nGame A" {
		t.Fatalf("unexpected contents %q", rec.CommonDiscInfo.Contents)
	}
}

func TestRecordJSONUsesShortCodes(t *testing.T) {
	rec := New()
	rec.CommonDiscInfo.System = SystemSonyPlayStation
	rec.CommonDiscInfo.Languages = []Language{LanguageEnglish}
	rec.SetCommentField(sitecode.Genre, "Puzzle")

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"system":"psx"`, `"languages":["eng"]`, `"genre":"Puzzle"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in %s", want, text)
		}
	}
}
