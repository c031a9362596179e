package report

import (
	"regexp"
	"strconv"
	"strings"

	sub "discsub/internal/submission"
)

const (
	// RegionPlaceholder stands in for a region nobody has filled in.
	RegionPlaceholder = "SPACE! (CHANGE THIS)"
	// LanguagePlaceholder stands in for missing languages.
	LanguagePlaceholder = "SILENCE! (CHANGE THIS)"
)

// Options controls report rendering.
type Options struct {
	// RedumpCompatibility omits layerbreaks for Blu-ray and Xbox discs, which
	// the catalog derives itself.
	RedumpCompatibility bool
}

var tabRunPattern = regexp.MustCompile(`[ \t]*\t[ \t]*`)

// Fields whose values keep their original whitespace.
var rawFields = map[string]bool{
	"Primary Volume Descriptor (PVD)": true,
	"Header":                          true,
	"Cuesheet":                        true,
}

type lines []string

func (l *lines) section(title string) {
	*l = append(*l, title)
}

func (l *lines) blank() {
	*l = append(*l, "")
}

// add renders "key: value" at indent tabs. Empty values are skipped and
// multi-line values are set off by blank lines.
func (l *lines) add(key, value string, indent int) {
	if value == "" {
		return
	}
	if !rawFields[key] {
		value = strings.ReplaceAll(value, "<tab>", "\t")
		value = strings.ReplaceAll(value, "   ", "\t")
		value = tabRunPattern.ReplaceAllString(value, "\t")
	}

	prefix := strings.Repeat("\t", indent)
	if strings.Contains(value, "\n") {
		*l = append(*l, prefix+key+":", "")
		*l = append(*l, strings.Split(value, "\n")...)
		*l = append(*l, "")
		return
	}
	*l = append(*l, prefix+key+": "+value)
}

func (l *lines) addInt(key string, value int64, indent int) {
	if value == 0 {
		return
	}
	l.add(key, strconv.FormatInt(value, 10), indent)
}

func (l *lines) addBool(key string, value *bool, indent int) {
	if value == nil {
		return
	}
	if *value {
		l.add(key, "Yes", indent)
		return
	}
	l.add(key, "No", indent)
}

// Format renders rec as the ordered lines of the submission report.
func Format(rec *sub.Record, opts Options) []string {
	if rec == nil {
		return nil
	}
	var out lines
	info := rec.CommonDiscInfo
	system := info.System.Info()

	out.section("Common Disc Info:")
	out.add("Title", info.Title, 1)
	out.add("Foreign Title (Non-latin)", info.ForeignTitleNonLatin, 1)
	out.add("Disc Number / Letter", info.DiscNumberLetter, 1)
	out.add("Disc Title", info.DiscTitle, 1)
	if info.System != "" {
		out.add("System", info.System.LongName(), 1)
	}
	out.add("Media Type", string(info.Media), 1)
	out.add("Category", string(info.Category), 1)
	if rec.FullyMatchedID != nil {
		out.add("Fully Matching ID", strconv.Itoa(*rec.FullyMatchedID), 1)
	}
	out.add("Partially Matching IDs", joinInts(rec.PartiallyMatchedIDs), 1)
	out.add("Region", regionText(info.Region), 1)
	out.add("Languages", languageText(info.Languages), 1)
	out.add("Language Selection", strings.Join(info.LanguageSelection, ", "), 1)
	out.add("Disc Serial", info.Serial, 1)
	out.blank()

	out.section("\tRingcode Information:")
	out.blank()
	formatRings(&out, rec, system)
	out.blank()

	out.add("Barcode", info.Barcode, 1)
	out.add("EXE/Build Date", info.EXEDateBuildDate, 1)
	out.add("Error Count", info.ErrorsCount, 1)
	out.add("Comments", strings.TrimSpace(info.Comments), 1)
	out.add("Contents", strings.TrimSpace(info.Contents), 1)
	out.blank()

	out.section("Version and Editions:")
	out.add("Version", rec.VersionAndEditions.Version, 1)
	out.add("Edition/Release", joinNonEmpty(rec.VersionAndEditions.CommonEditions, rec.VersionAndEditions.OtherEditions), 1)
	out.blank()

	if system.PlayStation {
		out.section("EDC:")
		out.addBool("EDC", rec.EDC.EDC, 1)
		out.blank()
	}

	if !rec.Extras.Empty() {
		extras := rec.Extras
		out.section("Extras:")
		out.add("Primary Volume Descriptor (PVD)", extras.PVD, 1)
		out.add("Disc Key", extras.DiscKey, 1)
		out.add("Disc ID", extras.DiscID, 1)
		out.add("Permanent Information & Control (PIC)", extras.PIC, 1)
		out.add("Header", extras.Header, 1)
		out.add("BCA", extras.BCA, 1)
		out.add("Security Sector Ranges", extras.SecuritySectorRanges, 1)
		out.blank()
	}

	if !rec.CopyProtection.Empty() {
		cp := rec.CopyProtection
		out.section("Copy Protection:")
		if system.PlayStation {
			out.addBool("Anti-modchip", cp.AntiModchip, 1)
			out.addBool("LibCrypt", cp.LibCrypt, 1)
			out.add("LibCrypt Data", cp.LibCryptData, 1)
		}
		out.add("Copy Protection", cp.Protection, 1)
		out.add("SecuROM Data", cp.SecuROMData, 1)
		out.blank()
	}

	if dat := rec.TracksAndWriteOffsets.ClrMameProData; dat != "" {
		tw := rec.TracksAndWriteOffsets
		out.section("Tracks and Write Offsets:")
		out.add("DAT", dat+"\n", 1)
		out.add("Cuesheet", tw.Cuesheet, 1)
		if tw.CommonWriteOffset != nil {
			out.add("Write Offset", SignedOffset(*tw.CommonWriteOffset), 1)
		}
		out.add("Other Write Offsets", tw.OtherWriteOffsets, 1)
		out.blank()
	} else {
		sizes := rec.SizeAndChecksums
		out.section("Size & Checksum:")
		hideLayerbreaks := opts.RedumpCompatibility &&
			(info.Media.Family() == sub.FamilyBluRay || system.XGD)
		if !hideLayerbreaks {
			out.addInt("Layerbreak", sizes.Layerbreak, 1)
			out.addInt("Layerbreak 2", sizes.Layerbreak2, 1)
			out.addInt("Layerbreak 3", sizes.Layerbreak3, 1)
		}
		out.add("PIC Identifier", sizes.PICIdentifier, 1)
		out.addInt("Size", sizes.Size, 1)
		out.add("CRC32", sizes.CRC32, 1)
		out.add("MD5", sizes.MD5, 1)
		out.add("SHA1", sizes.SHA1, 1)
		out.blank()
	}

	dump := rec.DumpingInfo
	out.section("Dumping Info:")
	out.add("Frontend Version", dump.FrontendVersion, 1)
	out.add("Dumping Program", dump.DumpingProgram, 1)
	out.add("Date", dump.DumpingDate, 1)
	out.add("Parameters", dump.DumpingParameters, 1)
	out.add("Manufacturer", dump.Manufacturer, 1)
	out.add("Model", dump.Model, 1)
	out.add("Firmware", dump.Firmware, 1)
	out.add("Reported Disc Type", dump.ReportedDiscType, 1)
	out.add("C2 Error Count", dump.C2ErrorsCount, 1)
	out.blank()

	return collapseBlank(out)
}

func formatRings(out *lines, rec *sub.Record, system sub.SystemInfo) {
	rings := rec.CommonDiscInfo.Rings
	layers := rec.SizeAndChecksums.LayerCount()
	family := rec.CommonDiscInfo.Media.Family()
	if family == sub.FamilyCD || layers == 1 {
		ringBlock(out, "Data Side", rings[0], false)
		ringBlock(out, "Label Side", rings[1], true)
		return
	}

	for i := 0; i < layers; i++ {
		ringBlock(out, layerLabel(i, layers, system.ReversedRingcodes), rings[i], false)
	}
}

// layerLabel names layer i of a multi-layer disc. The first and last layers
// carry their ring position, swapped for systems whose codes read outward in.
func layerLabel(i, layers int, reversed bool) string {
	inner, outer := "(Inner)", "(Outer)"
	if reversed {
		inner, outer = outer, inner
	}
	switch i {
	case 0:
		return "Layer 0 " + inner
	case layers - 1:
		return "Layer " + strconv.Itoa(i) + " " + outer
	default:
		return "Layer " + strconv.Itoa(i)
	}
}

func ringBlock(out *lines, label string, ring sub.Ringcode, labelSide bool) {
	if ring.Empty() {
		return
	}
	out.section("\t\t" + label + ":")
	if !labelSide {
		out.add("Mastering Code (laser branded/etched)", ring.MasteringRing, 3)
		out.add("Mastering SID Code", ring.MasteringSID, 3)
		out.add("Toolstamp or Mastering Code (engraved/stamped)", ring.Toolstamp, 3)
	}
	out.add("Mould SID Code", ring.MouldSID, 3)
	out.add("Additional Mould", ring.AdditionalMould, 3)
}

// SignedOffset formats a write offset with an explicit sign.
func SignedOffset(offset int) string {
	if offset > 0 {
		return "+" + strconv.Itoa(offset)
	}
	return strconv.Itoa(offset)
}

func regionText(region sub.Region) string {
	if region == "" {
		return RegionPlaceholder
	}
	return region.LongName()
}

func languageText(langs []sub.Language) string {
	if len(langs) == 0 {
		return LanguagePlaceholder
	}
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, lang.LongName())
	}
	return strings.Join(names, ", ")
}

func joinInts(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func collapseBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if line == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
