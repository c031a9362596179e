package submission

import (
	"time"

	"discsub/internal/sitecode"
)

// Record is the structured description of one physical disc, filled from the
// local dump and enriched from the catalog.
type Record struct {
	SchemaVersion int `json:"schema_version"`

	FullyMatchedID      *int  `json:"fully_matched_id,omitempty"`
	PartiallyMatchedIDs []int `json:"partially_matched_ids,omitempty"`

	Added        *time.Time `json:"added,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`

	CommonDiscInfo        CommonInfo            `json:"common_disc_info"`
	VersionAndEditions    VersionAndEditions    `json:"versions_and_editions"`
	EDC                   EDC                   `json:"edc"`
	CopyProtection        CopyProtection        `json:"copy_protection"`
	DumpersAndStatus      DumpersAndStatus      `json:"dumpers_and_status"`
	TracksAndWriteOffsets TracksAndWriteOffsets `json:"tracks_and_write_offsets"`
	SizeAndChecksums      SizeAndChecksums      `json:"size_and_checksums"`
	DumpingInfo           DumpingInfo           `json:"dumping_info"`
	Extras                Extras                `json:"extras"`
}

// SchemaVersion is written into every serialized record.
const SchemaVersion = 1

// New returns an empty record with its nested sections allocated.
func New() *Record {
	return &Record{
		SchemaVersion: SchemaVersion,
		CommonDiscInfo: CommonInfo{
			CommentsSpecialFields: sitecode.Fields{},
			ContentsSpecialFields: sitecode.Fields{},
		},
		CopyProtection: CopyProtection{
			FullProtections: map[string][]string{},
		},
	}
}

// CommonInfo holds identifying information shared by every disc type.
type CommonInfo struct {
	System               System     `json:"system,omitempty"`
	Media                DiscType   `json:"media,omitempty"`
	Title                string     `json:"title,omitempty"`
	ForeignTitleNonLatin string     `json:"foreign_title_non_latin,omitempty"`
	DiscNumberLetter     string     `json:"disc_number_letter,omitempty"`
	DiscTitle            string     `json:"disc_title,omitempty"`
	Category             Category   `json:"category,omitempty"`
	Region               Region     `json:"region,omitempty"`
	Languages            []Language `json:"languages,omitempty"`
	LanguageSelection    []string   `json:"language_selection,omitempty"`
	Serial               string     `json:"serial,omitempty"`

	// Rings holds ring codes for layers 0 to 3. A single-layer disc uses
	// index 0 for the data side and index 1 for the label side.
	Rings [4]Ringcode `json:"rings"`

	Barcode          string `json:"barcode,omitempty"`
	EXEDateBuildDate string `json:"exe_date_build_date,omitempty"`
	ErrorsCount      string `json:"errors_count,omitempty"`

	Comments              string          `json:"comments,omitempty"`
	CommentsSpecialFields sitecode.Fields `json:"comments_special_fields,omitempty"`
	Contents              string          `json:"contents,omitempty"`
	ContentsSpecialFields sitecode.Fields `json:"contents_special_fields,omitempty"`
}

// Ringcode is the set of codes stamped around the inner ring of one layer.
type Ringcode struct {
	MasteringRing   string `json:"mastering_ring,omitempty"`
	MasteringSID    string `json:"mastering_sid,omitempty"`
	Toolstamp       string `json:"toolstamp,omitempty"`
	MouldSID        string `json:"mould_sid,omitempty"`
	AdditionalMould string `json:"additional_mould,omitempty"`
}

// Empty reports whether no code is recorded.
func (r Ringcode) Empty() bool {
	return r == Ringcode{}
}

type VersionAndEditions struct {
	Version        string `json:"version,omitempty"`
	VersionDatfile string `json:"version_datfile,omitempty"`
	CommonEditions string `json:"common_editions,omitempty"`
	OtherEditions  string `json:"other_editions,omitempty"`
}

type EDC struct {
	EDC *bool `json:"edc,omitempty"`
}

type CopyProtection struct {
	AntiModchip  *bool  `json:"anti_modchip,omitempty"`
	LibCrypt     *bool  `json:"libcrypt,omitempty"`
	LibCryptData string `json:"libcrypt_data,omitempty"`
	Protection   string `json:"protection,omitempty"`
	SecuROMData  string `json:"securom_data,omitempty"`

	// FullProtections maps scanned file paths to every protection found in
	// them. The text report leaves it out; it goes to !protectionInfo.txt.
	FullProtections map[string][]string `json:"full_protections,omitempty"`
}

// Empty reports whether any protection detail is present.
func (c CopyProtection) Empty() bool {
	return c.AntiModchip == nil && c.LibCrypt == nil && c.LibCryptData == "" &&
		c.Protection == "" && c.SecuROMData == ""
}

type DumpersAndStatus struct {
	Status       string   `json:"status,omitempty"`
	Dumpers      []string `json:"dumpers,omitempty"`
	OtherDumpers string   `json:"other_dumpers,omitempty"`
}

type TracksAndWriteOffsets struct {
	ClrMameProData    string `json:"clrmamepro_data,omitempty"`
	Cuesheet          string `json:"cuesheet,omitempty"`
	CommonWriteOffset *int   `json:"common_write_offset,omitempty"`
	OtherWriteOffsets string `json:"other_write_offsets,omitempty"`
}

type SizeAndChecksums struct {
	Size          int64  `json:"size,omitempty"`
	Layerbreak    int64  `json:"layerbreak,omitempty"`
	Layerbreak2   int64  `json:"layerbreak2,omitempty"`
	Layerbreak3   int64  `json:"layerbreak3,omitempty"`
	PICIdentifier string `json:"pic_identifier,omitempty"`
	CRC32         string `json:"crc32,omitempty"`
	MD5           string `json:"md5,omitempty"`
	SHA1          string `json:"sha1,omitempty"`
}

// LayerCount derives the number of data layers from the recorded layerbreaks.
func (s SizeAndChecksums) LayerCount() int {
	switch {
	case s.Layerbreak3 != 0:
		return 4
	case s.Layerbreak2 != 0:
		return 3
	case s.Layerbreak != 0:
		return 2
	default:
		return 1
	}
}

type DumpingInfo struct {
	FrontendVersion   string `json:"frontend_version,omitempty"`
	DumpingProgram    string `json:"dumping_program,omitempty"`
	DumpingDate       string `json:"dumping_date,omitempty"`
	DumpingParameters string `json:"dumping_parameters,omitempty"`
	Manufacturer      string `json:"manufacturer,omitempty"`
	Model             string `json:"model,omitempty"`
	Firmware          string `json:"firmware,omitempty"`
	ReportedDiscType  string `json:"reported_disc_type,omitempty"`
	C2ErrorsCount     string `json:"c2_errors_count,omitempty"`
}

type Extras struct {
	PVD                  string `json:"pvd,omitempty"`
	DiscKey              string `json:"disc_key,omitempty"`
	DiscID               string `json:"disc_id,omitempty"`
	PIC                  string `json:"pic,omitempty"`
	Header               string `json:"header,omitempty"`
	BCA                  string `json:"bca,omitempty"`
	SecuritySectorRanges string `json:"security_sector_ranges,omitempty"`
}

// Empty reports whether no extra artifact is recorded.
func (e Extras) Empty() bool {
	return e == Extras{}
}

// ProcessSpecialFields folds pending tagged fragments into the comments and
// contents text. The fragment maps are consumed, so repeated calls leave the
// text unchanged.
func (r *Record) ProcessSpecialFields() {
	info := &r.CommonDiscInfo
	info.Comments = sitecode.Merge(info.Comments, info.CommentsSpecialFields, sitecode.CommentsOrder)
	info.Contents = sitecode.Merge(info.Contents, info.ContentsSpecialFields, sitecode.ContentsOrder)
}

// SetCommentField stores a comment fragment, allocating the map on demand.
func (r *Record) SetCommentField(code sitecode.Code, value string) {
	if r.CommonDiscInfo.CommentsSpecialFields == nil {
		r.CommonDiscInfo.CommentsSpecialFields = sitecode.Fields{}
	}
	r.CommonDiscInfo.CommentsSpecialFields[code] = value
}

// SetContentField stores a content fragment, allocating the map on demand.
func (r *Record) SetContentField(code sitecode.Code, value string) {
	if r.CommonDiscInfo.ContentsSpecialFields == nil {
		r.CommonDiscInfo.ContentsSpecialFields = sitecode.Fields{}
	}
	r.CommonDiscInfo.ContentsSpecialFields[code] = value
}
