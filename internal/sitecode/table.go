package sitecode

const (
	AlternativeTitle        Code = "alternative_title"
	AlternativeForeignTitle Code = "alternative_foreign_title"
	DiscTitleNonLatin       Code = "disc_title_non_latin"
	EditionNonLatin         Code = "edition_non_latin"
	InternalName            Code = "internal_name"
	InternalSerialName      Code = "internal_serial_name"
	VolumeLabel             Code = "volume_label"
	Multisession            Code = "multisession"
	DiscHologramID          Code = "disc_hologram_id"

	AcclaimID        Code = "acclaim_id"
	ActivisionID     Code = "activision_id"
	BandaiID         Code = "bandai_id"
	ElectronicArtsID Code = "electronic_arts_id"
	KoeiID           Code = "koei_id"
	KonamiID         Code = "konami_id"
	NamcoID          Code = "namco_id"
	SegaID           Code = "sega_id"
	TaitoID          Code = "taito_id"
	UbisoftID        Code = "ubisoft_id"
	ValveID          Code = "valve_id"

	UniversalHash          Code = "universal_hash"
	RingNonZeroDataStart   Code = "ring_non_zero_data_start"
	RingPerfectAudioOffset Code = "ring_perfect_audio_offset"
	DMIHash                Code = "dmi_hash"
	PFIHash                Code = "pfi_hash"
	SSHash                 Code = "ss_hash"
	SSVersion              Code = "ss_version"
	XMID                   Code = "xmid"
	XeMID                  Code = "xemid"

	Filename Code = "filename"

	BBFCRegistrationNumber Code = "bbfc_registration_number"
	CDProjektID            Code = "cd_projekt_id"
	DNASDiscID             Code = "dnas_disc_id"
	ISBN                   Code = "isbn"
	ISSN                   Code = "issn"
	PPN                    Code = "ppn"
	VFCCode                Code = "vfc_code"

	Genre        Code = "genre"
	Series       Code = "series"
	CompatibleOS Code = "compatible_os"
	PostgapType  Code = "postgap_type"
	VCD          Code = "vcd"
	PCMacHybrid  Code = "pc_mac_hybrid"

	Games          Code = "games"
	NetYarozeGames Code = "net_yaroze_games"
	PlayableDemos  Code = "playable_demos"
	RollingDemos   Code = "rolling_demos"
	TechDemos      Code = "tech_demos"
	GameFootage    Code = "game_footage"
	Videos         Code = "videos"
	Patches        Code = "patches"
	Savegames      Code = "savegames"
	Extras         Code = "extras"
)

var table = map[Code]Info{
	AlternativeTitle:        {Short: "[T:ALT]", Long: "Alternative Title"},
	AlternativeForeignTitle: {Short: "[T:ALTF]", Long: "Alternative Foreign Title"},
	DiscTitleNonLatin:       {Short: "[T:DTNL]", Long: "Disc Title (non-Latin)"},
	EditionNonLatin:         {Short: "[T:ENL]", Long: "Edition (non-Latin)"},
	InternalName:            {Short: "[T:IN]", Long: "Internal Name", LocalOnly: true},
	InternalSerialName:      {Short: "[T:ISN]", Long: "Internal Serial", LocalOnly: true},
	VolumeLabel:             {Short: "[T:VOL]", Long: "Volume Label", LocalOnly: true},
	Multisession:            {Short: "[T:MULTISESSION]", Long: "Multisession", MultiLine: true, LocalOnly: true},
	DiscHologramID:          {Short: "[T:DHOLO]", Long: "Disc Hologram ID"},

	AcclaimID:        {Short: "[T:AID]", Long: "Acclaim ID"},
	ActivisionID:     {Short: "[T:ACT]", Long: "Activision ID"},
	BandaiID:         {Short: "[T:BID]", Long: "Bandai ID"},
	ElectronicArtsID: {Short: "[T:EAID]", Long: "Electronic Arts ID"},
	KoeiID:           {Short: "[T:KOEI]", Long: "Koei ID"},
	KonamiID:         {Short: "[T:KID]", Long: "Konami ID"},
	NamcoID:          {Short: "[T:NID]", Long: "Namco ID"},
	SegaID:           {Short: "[T:SID]", Long: "Sega ID"},
	TaitoID:          {Short: "[T:TID]", Long: "Taito ID"},
	UbisoftID:        {Short: "[T:UID]", Long: "Ubisoft ID"},
	ValveID:          {Short: "[T:VID]", Long: "Valve ID"},

	UniversalHash:          {Short: "[T:UHASH]", Long: "Universal Hash (SHA-1)", LocalOnly: true},
	RingNonZeroDataStart:   {Short: "[T:RNZDS]", Long: "Ring non-zero data start", LocalOnly: true},
	RingPerfectAudioOffset: {Short: "[T:RPAO]", Long: "Ring Perfect Audio Offset"},
	DMIHash:                {Short: "[T:DMIHASH]", Long: "DMI Hash", LocalOnly: true},
	PFIHash:                {Short: "[T:PFIHASH]", Long: "PFI Hash", LocalOnly: true},
	SSHash:                 {Short: "[T:SSHASH]", Long: "SS Hash", LocalOnly: true},
	SSVersion:              {Short: "[T:SSVERSION]", Long: "SS Version", LocalOnly: true},
	XMID:                   {Short: "[T:XMID]", Long: "XMID", LocalOnly: true},
	XeMID:                  {Short: "[T:XEMID]", Long: "XeMID", LocalOnly: true},

	Filename: {Short: "[T:FILENAME]", Long: "Filename", MultiLine: true, LocalOnly: true},

	BBFCRegistrationNumber: {Short: "[T:BBFC]", Long: "BBFC Reg. No."},
	CDProjektID:            {Short: "[T:CDP]", Long: "CD Projekt ID"},
	DNASDiscID:             {Short: "[T:DNAS]", Long: "DNAS Disc ID"},
	ISBN:                   {Short: "[T:ISBN]", Long: "ISBN"},
	ISSN:                   {Short: "[T:ISSN]", Long: "ISSN"},
	PPN:                    {Short: "[T:PPN]", Long: "PPN"},
	VFCCode:                {Short: "[T:VFC]", Long: "VFC code"},

	Genre:        {Short: "[T:GENRE]", Long: "Genre"},
	Series:       {Short: "[T:SERIES]", Long: "Series"},
	CompatibleOS: {Short: "[T:COS]", Long: "Compatible OS"},
	PostgapType:  {Short: "[T:PT2]", Long: "Postgap type", Boolean: true},
	VCD:          {Short: "[T:VCD]", Long: "Video CD", Boolean: true},
	PCMacHybrid:  {Short: "[T:PCMACHYBRID]", Long: "PC/Mac Hybrid", Boolean: true},

	Games:          {Short: "[T:G]", Long: "Games", Scope: ScopeContents, MultiLine: true},
	NetYarozeGames: {Short: "[T:NYG]", Long: "Net Yaroze Games", Scope: ScopeContents, MultiLine: true},
	PlayableDemos:  {Short: "[T:PD]", Long: "Playable Demos", Scope: ScopeContents, MultiLine: true},
	RollingDemos:   {Short: "[T:RD]", Long: "Rolling Demos", Scope: ScopeContents, MultiLine: true},
	TechDemos:      {Short: "[T:TD]", Long: "Tech Demos", Scope: ScopeContents, MultiLine: true},
	GameFootage:    {Short: "[T:GF]", Long: "Game Footage", Scope: ScopeContents, MultiLine: true},
	Videos:         {Short: "[T:V]", Long: "Videos", Scope: ScopeContents, MultiLine: true},
	Patches:        {Short: "[T:P]", Long: "Patches", Scope: ScopeContents, MultiLine: true},
	Savegames:      {Short: "[T:SG]", Long: "Savegames", Scope: ScopeContents, MultiLine: true},
	Extras:         {Short: "[T:EX]", Long: "Extras", Scope: ScopeContents, MultiLine: true},
}

// CommentsOrder is the rendering priority for comment fragments:
// identifying info, disc and ring hashes, filenames, registration numbers,
// then genre, series and flags.
var CommentsOrder = []Code{
	AlternativeTitle, AlternativeForeignTitle, DiscTitleNonLatin, EditionNonLatin,
	InternalName, InternalSerialName, VolumeLabel, Multisession, DiscHologramID,
	AcclaimID, ActivisionID, BandaiID, ElectronicArtsID, KoeiID, KonamiID,
	NamcoID, SegaID, TaitoID, UbisoftID, ValveID,

	UniversalHash, RingNonZeroDataStart, RingPerfectAudioOffset,
	DMIHash, PFIHash, SSHash, SSVersion, XMID, XeMID,

	Filename,

	BBFCRegistrationNumber, CDProjektID, DNASDiscID, ISBN, ISSN, PPN, VFCCode,

	Genre, Series, CompatibleOS, PostgapType, VCD, PCMacHybrid,
}

// ContentsOrder is the rendering priority for content fragments.
var ContentsOrder = []Code{
	Games, NetYarozeGames,
	PlayableDemos, RollingDemos, TechDemos,
	GameFootage, Videos,
	Patches, Savegames, Extras,
}

var detectionOrder = append(append([]Code{}, CommentsOrder...), ContentsOrder...)
